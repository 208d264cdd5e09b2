// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Interp returns the piecewise-linear interpolant through the points
// (xs[i], ys[i]) evaluated at x.
//
// xs must be sorted in increasing order; repeated values are
// permitted, in which case the last of them is used as the left end
// of the bracketing segment. Outside the range of xs, Interp does not
// extrapolate: for x < xs[0] it returns ys[0] and for
// x >= xs[len(xs)-1] it returns ys[len(ys)-1].
//
// Interp panics if xs is empty or len(xs) != len(ys).
func Interp(xs, ys []float64, x float64) float64 {
	if len(xs) != len(ys) {
		panic("len(xs) != len(ys)")
	}
	n := len(xs)
	if n == 0 {
		panic("Interp: empty table")
	}

	switch {
	case math.IsNaN(x):
		return nan
	case x < xs[0]:
		return ys[0]
	case x >= xs[n-1]:
		return ys[n-1]
	}

	// xs[j] <= x < xs[j+1].
	j := sort.Search(n, func(i int) bool { return xs[i] > x }) - 1
	slope := (ys[j+1] - ys[j]) / (xs[j+1] - xs[j])
	return slope*(x-xs[j]) + ys[j]
}

// InterpEach returns Interp(xs, ys, x[i]) for each i.
func InterpEach(xs, ys []float64, x []float64) []float64 {
	res := make([]float64, len(x))
	for i, xi := range x {
		res[i] = Interp(xs, ys, xi)
	}
	return res
}
