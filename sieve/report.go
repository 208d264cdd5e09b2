// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// Fprint writes a text report of a to w: the distribution table
// followed by the grading parameters, shape statistics and
// classification.
func (a *Analysis) Fprint(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%% Retained\tCumulative %% Retained\t%% Passing\t\n", ColumnSize, ColumnWeight)
	for _, r := range a.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\t\n",
			formatSize(r.Size), strconv.FormatFloat(r.Weight, 'g', -1, 64),
			r.PercentRetained, r.CumulativePercentRetained, r.PercentPassing)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	g, s := a.Gradation, a.Shape
	_, err := fmt.Fprintf(w, `
D10: %.3f mm
D30: %.3f mm
D60: %.3f mm
Cu (Uniformity Coefficient): %.2f
Cc (Coefficient of Gradation): %.2f
Skewness: %.2f
Kurtosis: %.2f
Soil Classification: %s
`, g.D10, g.D30, g.D60, g.Cu, g.Cc, s.Skewness, s.Kurtosis, g.Class)
	return err
}
