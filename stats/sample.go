// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted data points.
//
// All moments of a Sample are population moments: no degrees of
// freedom correction is applied.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length of Xs and all values must be non-negative.
	Weights []float64
}

func (s Sample) check() {
	if s.Weights != nil && len(s.Xs) != len(s.Weights) {
		panic("len(xs) != len(weights)")
	}
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Weight returns the total weight of the Sample.
func (s Sample) Weight() float64 {
	s.check()
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Sum returns the (possibly weighted) sum of the Sample.
func (s Sample) Sum() float64 {
	s.check()
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	return floats.Dot(s.Xs, s.Weights)
}

// Mean returns the arithmetic mean of the Sample.
//
// If the Sample is empty or has zero weight, Mean returns NaN.
func (s Sample) Mean() float64 {
	s.check()
	if len(s.Xs) == 0 || s.Weight() == 0 {
		return nan
	}
	return stat.Mean(s.Xs, s.Weights)
}

// Moment returns the k'th central moment of the Sample, E[(x - μ)^k].
func (s Sample) Moment(k float64) float64 {
	mean := s.Mean()
	if math.IsNaN(mean) {
		return nan
	}
	return stat.MomentAbout(k, s.Xs, mean, s.Weights)
}

// Skewness returns the population skewness of the Sample, m₃/m₂^(3/2).
//
// If the Sample has zero variance, Skewness returns NaN.
func (s Sample) Skewness() float64 {
	m2 := s.Moment(2)
	if m2 == 0 || math.IsNaN(m2) {
		return nan
	}
	return s.Moment(3) / math.Pow(m2, 1.5)
}

// Kurtosis returns the population excess kurtosis of the Sample,
// m₄/m₂² - 3. A normal distribution has excess kurtosis 0.
//
// If the Sample has zero variance, Kurtosis returns NaN.
func (s Sample) Kurtosis() float64 {
	m2 := s.Moment(2)
	if m2 == 0 || math.IsNaN(m2) {
		return nan
	}
	return s.Moment(4)/(m2*m2) - 3
}
