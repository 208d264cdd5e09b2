// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Conventional column names of the input and report tables.
const (
	ColumnSize   = "Sieve Size (mm)"
	ColumnWeight = "Weight Retained (g)"
)

// ExpectedCSV is an example of the input accepted by ReadCSV.
const ExpectedCSV = ColumnSize + "," + ColumnWeight + "\n4.75,100\n2.36,150\n...\n" + PanLabel + ",5\n"

// ReadCSV reads a two-column sieve table: a header row followed by
// one row per sieve giving its size (or PanLabel) and the weight
// retained. The header names are not interpreted. Blank lines are
// skipped.
//
// ReadCSV only splits the input; the fields are parsed by Normalize.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Field: "header", Err: errors.New("empty input")}
	} else if err != nil {
		return nil, &ParseError{Field: "header", Err: err}
	}
	if len(header) != 2 {
		return nil, &ParseError{Field: "header", Value: strings.Join(header, ","), Err: fmt.Errorf("want 2 columns, got %d", len(header))}
	}

	var rows []RawRow
	for n := 1; ; n++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &ParseError{Row: n, Field: "record", Err: err}
		}
		if len(rec) != 2 {
			return nil, &ParseError{Row: n, Field: "record", Value: strings.Join(rec, ","), Err: fmt.Errorf("want 2 columns, got %d", len(rec))}
		}
		rows = append(rows, RawRow{Size: rec[0], Weight: rec[1]})
	}
	return rows, nil
}
