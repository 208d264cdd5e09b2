// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// PanLabel is the size label of the catch pan, which is treated as a
// sieve of size 0.
const PanLabel = "Pan"

// RawRow is one row of the input table as text.
type RawRow struct {
	// Size is the sieve opening in millimeters, or PanLabel.
	Size string

	// Weight is the weight retained on the sieve in grams.
	Weight string
}

// Record is the weight retained on one sieve.
type Record struct {
	// Size is the sieve opening in millimeters. 0 is the pan.
	Size float64

	// Weight is the weight retained in grams.
	Weight float64
}

// Table is a validated sequence of Records, ordered by strictly
// decreasing Size (coarsest sieve first). A Table is never empty and
// all of its sizes and weights are finite and non-negative.
type Table []Record

var errNotFinite = errors.New("not a finite number")

// Normalize parses, validates and orders raw sieve rows.
//
// A size equal to PanLabel maps to 0. Fields that are not numbers
// produce a *ParseError. An empty input, negative values, or two rows
// with the same size produce a *ValidationError. The result does not
// depend on the order of rows.
func Normalize(rows []RawRow) (Table, error) {
	if len(rows) == 0 {
		return nil, &ValidationError{Reason: "no sieve rows"}
	}
	recs := make([]Record, len(rows))
	for i, r := range rows {
		size, err := parseSize(r.Size)
		if err != nil {
			return nil, &ParseError{Row: i + 1, Field: "size", Value: r.Size, Err: err}
		}
		weight, err := parseNumber(r.Weight)
		if err != nil {
			return nil, &ParseError{Row: i + 1, Field: "weight", Value: r.Weight, Err: err}
		}
		recs[i] = Record{Size: size, Weight: weight}
	}
	return NewTable(recs)
}

// NewTable validates recs and returns them as a Table sorted by
// decreasing size. recs is not modified.
func NewTable(recs []Record) (Table, error) {
	t := make(Table, len(recs))
	copy(t, recs)
	sort.SliceStable(t, func(i, j int) bool { return t[i].Size > t[j].Size })
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate checks the Table invariants.
func (t Table) validate() error {
	if len(t) == 0 {
		return &ValidationError{Reason: "no sieve rows"}
	}
	for i, r := range t {
		switch {
		case math.IsNaN(r.Size) || math.IsInf(r.Size, 0):
			return &ValidationError{Reason: fmt.Sprintf("sieve size %v is not finite", r.Size)}
		case math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0):
			return &ValidationError{Reason: fmt.Sprintf("weight %v on sieve %s is not finite", r.Weight, formatSize(r.Size))}
		case r.Size < 0:
			return &ValidationError{Reason: fmt.Sprintf("negative sieve size %v", r.Size)}
		case r.Weight < 0:
			return &ValidationError{Reason: fmt.Sprintf("negative weight %v on sieve %s", r.Weight, formatSize(r.Size))}
		}
		if i == 0 {
			continue
		}
		if prev := t[i-1].Size; r.Size == prev {
			return &ValidationError{Reason: fmt.Sprintf("duplicate sieve size %s", formatSize(r.Size))}
		} else if r.Size > prev {
			return &ValidationError{Reason: "sieve sizes are not in decreasing order"}
		}
	}
	return nil
}

// Sizes returns the sieve sizes of t in table order.
func (t Table) Sizes() []float64 {
	xs := make([]float64, len(t))
	for i, r := range t {
		xs[i] = r.Size
	}
	return xs
}

// Weights returns the retained weights of t in table order.
func (t Table) Weights() []float64 {
	xs := make([]float64, len(t))
	for i, r := range t {
		xs[i] = r.Weight
	}
	return xs
}

func parseSize(s string) (float64, error) {
	if strings.TrimSpace(s) == PanLabel {
		return 0, nil
	}
	return parseNumber(s)
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			return 0, ne.Err
		}
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// formatSize formats a sieve size for display.
func formatSize(size float64) string {
	if size == 0 {
		return PanLabel
	}
	return strconv.FormatFloat(size, 'g', -1, 64)
}
