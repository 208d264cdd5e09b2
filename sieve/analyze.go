// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

// Analysis is the complete result of analyzing one sample.
type Analysis struct {
	*Distribution
	Gradation Gradation
	Shape     ShapeResult
}

// Analyze normalizes rows and runs the full analysis on them.
// It returns the first error of any stage and no partial result.
func Analyze(rows []RawRow) (*Analysis, error) {
	t, err := Normalize(rows)
	if err != nil {
		return nil, err
	}
	return AnalyzeTable(t)
}

// AnalyzeTable runs the full analysis on a normalized table.
func AnalyzeTable(t Table) (*Analysis, error) {
	d, err := Distribute(t)
	if err != nil {
		return nil, err
	}
	g, err := Grade(d)
	if err != nil {
		return nil, err
	}
	s, err := Shape(d)
	if err != nil {
		return nil, err
	}
	return &Analysis{Distribution: d, Gradation: g, Shape: s}, nil
}
