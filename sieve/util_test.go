// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// samplePassing is the percent passing of SampleRows, coarsest first.
var samplePassing = []float64{
	85.61151079136691,
	64.02877697841727,
	38.12949640287769,
	20.863309352517987,
	7.913669064748191,
	2.1582733812949613,
	0.7194244604316538,
	0,
}

func mustDistribute(t *testing.T, rows []RawRow) *Distribution {
	t.Helper()
	tab, err := Normalize(rows)
	if err != nil {
		t.Fatal(err)
	}
	d, err := Distribute(tab)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
