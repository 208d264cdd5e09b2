// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/aclements/go-geosieve/stats"
)

// Row is a Record with its share of the total sample weight.
type Row struct {
	Record

	// PercentRetained is Weight as a percentage of the total
	// weight.
	PercentRetained float64

	// CumulativePercentRetained is the sum of PercentRetained
	// over this row and all coarser rows.
	CumulativePercentRetained float64

	// PercentPassing is 100 - CumulativePercentRetained: the
	// percentage of the sample finer than this sieve.
	PercentPassing float64
}

// Distribution is the grain-size distribution of a sample.
type Distribution struct {
	// Rows are in Table order, coarsest sieve first.
	// PercentPassing is non-increasing along Rows and is 0 at the
	// last row.
	Rows []Row

	// TotalWeight is the sum of the retained weights.
	TotalWeight float64
}

// Distribute computes the distribution of t.
//
// Distribute returns a *ValidationError if t does not satisfy the
// Table invariants and a *DegenerateInputError if the total weight is
// zero.
func Distribute(t Table) (*Distribution, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	// Running sums over the weights, coarsest first. The total is
	// the last of them, so the cumulative percentage of the last
	// row is exactly 100.
	weights := t.Weights()
	cum := floats.CumSum(make([]float64, len(weights)), weights)
	total := cum[len(cum)-1]
	switch {
	case total == 0:
		return nil, &DegenerateInputError{Reason: "total weight retained is zero"}
	case math.IsInf(total, 0):
		return nil, &DegenerateInputError{Reason: "total weight retained overflows"}
	}

	rows := make([]Row, len(t))
	for i, r := range t {
		cumPct := cum[i] / total * 100
		rows[i] = Row{
			Record:                    r,
			PercentRetained:           r.Weight / total * 100,
			CumulativePercentRetained: cumPct,
			PercentPassing:            100 - cumPct,
		}
	}
	return &Distribution{Rows: rows, TotalWeight: total}, nil
}

// Sizes returns the sieve sizes of d, coarsest first.
func (d *Distribution) Sizes() []float64 {
	xs := make([]float64, len(d.Rows))
	for i, r := range d.Rows {
		xs[i] = r.Size
	}
	return xs
}

// PercentPassing returns the percent passing of each row of d,
// coarsest first.
func (d *Distribution) PercentPassing() []float64 {
	xs := make([]float64, len(d.Rows))
	for i, r := range d.Rows {
		xs[i] = r.PercentPassing
	}
	return xs
}

// ascending returns the percent passing and size columns of d in
// increasing order of percent passing. The slices are fresh copies.
func (d *Distribution) ascending() (passing, sizes []float64) {
	passing, sizes = d.PercentPassing(), d.Sizes()
	floats.Reverse(passing)
	floats.Reverse(sizes)
	return
}

// D returns the particle size in millimeters at which p percent of
// the sample passes, by linear interpolation between sieves.
//
// If p is below the smallest tabulated percent passing, D returns the
// size of the finest sieve; if it is at or above the largest, D
// returns the size of the coarsest sieve.
func (d *Distribution) D(p float64) float64 {
	passing, sizes := d.ascending()
	return stats.Interp(passing, sizes, p)
}
