// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

// SampleRows returns a sample sieve analysis of a sandy gravel: eight
// sieves from 4.75 mm down to the pan, 695 g in total.
func SampleRows() []RawRow {
	return []RawRow{
		{"4.75", "100"},
		{"2.36", "150"},
		{"1.18", "180"},
		{"0.6", "120"},
		{"0.3", "90"},
		{"0.15", "40"},
		{"0.075", "10"},
		{PanLabel, "5"},
	}
}
