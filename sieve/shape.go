// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

import "github.com/aclements/go-geosieve/stats"

// ShapeResult describes the shape of the percent passing series.
type ShapeResult struct {
	// Skewness is the population skewness.
	Skewness float64

	// Kurtosis is the population excess kurtosis.
	Kurtosis float64
}

// Shape computes the skewness and kurtosis of the percent passing
// values of d, treated as an unweighted population.
//
// Shape returns a *DegenerateInputError if d has fewer than two rows
// or if every row has the same percent passing.
func Shape(d *Distribution) (ShapeResult, error) {
	s := stats.Sample{Xs: d.PercentPassing()}
	if len(s.Xs) < 2 {
		return ShapeResult{}, &DegenerateInputError{Reason: "shape statistics need at least two sieves"}
	}
	if s.Moment(2) == 0 {
		return ShapeResult{}, &DegenerateInputError{Reason: "percent passing has zero variance"}
	}
	return ShapeResult{Skewness: s.Skewness(), Kurtosis: s.Kurtosis()}, nil
}
