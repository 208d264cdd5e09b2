// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

import (
	"fmt"

	"github.com/aclements/go-geosieve/stats"
)

// Classification labels.
const (
	ClassWellGradedGravel = "Well-graded gravel (GW)"
	ClassWellGradedSand   = "Well-graded sand (SW)"
	ClassPoorlyGraded     = "Poorly graded (GP/SP)"
)

// Classes lists every label Classify can return.
var Classes = []string{ClassWellGradedGravel, ClassWellGradedSand, ClassPoorlyGraded}

// Gradation holds the grading parameters of a distribution.
type Gradation struct {
	// D10, D30 and D60 are the particle sizes in millimeters at
	// which 10%, 30% and 60% of the sample passes.
	D10, D30, D60 float64

	// Cu is the coefficient of uniformity, D60/D10.
	Cu float64

	// Cc is the coefficient of curvature, D30²/(D10·D60).
	Cc float64

	// Class is one of Classes.
	Class string
}

// characteristicPercents are the percent passing values of D10, D30
// and D60.
var characteristicPercents = []float64{10, 30, 60}

// Grade computes the grading parameters of d and classifies it.
//
// If D10 is zero, Cu and Cc are undefined and Grade returns a
// *DegenerateInputError.
func Grade(d *Distribution) (Gradation, error) {
	passing, sizes := d.ascending()
	ds := stats.InterpEach(passing, sizes, characteristicPercents)
	g := Gradation{D10: ds[0], D30: ds[1], D60: ds[2]}
	if g.D10 == 0 {
		return Gradation{}, &DegenerateInputError{Reason: "D10 is zero"}
	}
	if g.D60 == 0 {
		return Gradation{}, &DegenerateInputError{Reason: "D60 is zero"}
	}
	g.Cu = g.D60 / g.D10
	g.Cc = g.D30 * g.D30 / (g.D10 * g.D60)
	g.Class = Classify(g.Cu, g.Cc)
	return g, nil
}

func (g Gradation) String() string {
	return fmt.Sprintf("D10=%.3f D30=%.3f D60=%.3f Cu=%.2f Cc=%.2f %s", g.D10, g.D30, g.D60, g.Cu, g.Cc, g.Class)
}

type classRule struct {
	class string
	match func(cu, cc float64) bool
}

// classRules is evaluated in order and the first match wins. Any
// (cu, cc) matching the SW rule also matches the GW rule before it.
var classRules = []classRule{
	{ClassWellGradedGravel, func(cu, cc float64) bool { return cu > 4 && 1 < cc && cc < 3 }},
	{ClassWellGradedSand, func(cu, cc float64) bool { return cu > 6 && 1 < cc && cc < 3 }},
	{ClassPoorlyGraded, func(cu, cc float64) bool { return true }},
}

// Classify returns the soil classification for a coefficient of
// uniformity cu and a coefficient of curvature cc.
//
// Classify does not distinguish gravel from sand by grain size.
func Classify(cu, cc float64) string {
	for _, r := range classRules {
		if r.match(cu, cc) {
			return r.class
		}
	}
	return ClassPoorlyGraded
}
