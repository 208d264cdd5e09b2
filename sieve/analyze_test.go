// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

import (
	"errors"
	"reflect"
	"testing"
)

func TestAnalyzeSample(t *testing.T) {
	a, err := Analyze(SampleRows())
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Rows) != 8 || a.TotalWeight != 695 {
		t.Errorf("got %d rows totalling %v", len(a.Rows), a.TotalWeight)
	}
	if a.Gradation.Class != ClassWellGradedGravel {
		t.Errorf("want class %q, got %q", ClassWellGradedGravel, a.Gradation.Class)
	}
	if !aeq(0.8215623073626172, a.Shape.Skewness) {
		t.Errorf("want skewness 0.82156, got %v", a.Shape.Skewness)
	}
}

func TestAnalyzeOrderIndependent(t *testing.T) {
	want, err := Analyze(SampleRows())
	if err != nil {
		t.Fatal(err)
	}
	rows := SampleRows()
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	got, err := Analyze(rows)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("reordering input changed the analysis:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	var (
		pe *ParseError
		ve *ValidationError
		de *DegenerateInputError
	)
	for _, test := range []struct {
		name   string
		rows   []RawRow
		target any
	}{
		{"bad size", []RawRow{{"4.75", "1"}, {"#4", "1"}}, &pe},
		{"empty", nil, &ve},
		{"duplicate", []RawRow{{"4.75", "1"}, {"4.75", "2"}}, &ve},
		{"zero weight", []RawRow{{"4.75", "0"}, {"2.36", "0"}, {"Pan", "0"}}, &de},
		{"pan only", []RawRow{{"Pan", "3"}}, &de},
		{"one sieve", []RawRow{{"2", "3"}}, &de},
	} {
		a, err := Analyze(test.rows)
		if a != nil {
			t.Errorf("%s: want no result, got %+v", test.name, a)
		}
		if !errors.As(err, test.target) {
			t.Errorf("%s: want %T, got %v", test.name, test.target, err)
		}
	}
}
