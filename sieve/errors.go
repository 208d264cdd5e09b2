// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

import (
	"fmt"
	"strings"
)

// A ParseError reports a field of the input that could not be
// interpreted as a number.
type ParseError struct {
	// Row is the 1-based data row of the error, or 0 if the
	// error is not about a particular row.
	Row int

	// Field names the offending field: "size", "weight",
	// "header" or "record".
	Field string

	// Value is the raw text of the field, if any.
	Value string

	// Err is the underlying error, if any.
	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("sieve: ")
	if e.Row > 0 {
		fmt.Fprintf(&b, "row %d: ", e.Row)
	}
	fmt.Fprintf(&b, "invalid %s", e.Field)
	if e.Value != "" {
		fmt.Fprintf(&b, " %q", e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// A ValidationError reports a table that is empty, has negative
// values, or has repeated sieve sizes.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "sieve: invalid table: " + e.Reason
}

// A DegenerateInputError reports input that is well formed but on
// which a quantity of the analysis is undefined, such as a zero total
// weight or a zero D10.
type DegenerateInputError struct {
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return "sieve: degenerate input: " + e.Reason
}
