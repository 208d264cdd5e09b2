// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sieve

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	in := "Sieve,Retained\n4.75,100\n2.36, 150\n\nPan,5\n"
	rows, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []RawRow{{"4.75", "100"}, {"2.36", "150"}, {"Pan", "5"}}
	if !reflect.DeepEqual(want, rows) {
		t.Errorf("want %v, got %v", want, rows)
	}
}

func TestReadCSVAnalyze(t *testing.T) {
	var b strings.Builder
	b.WriteString(ColumnSize + "," + ColumnWeight + "\n")
	for _, r := range SampleRows() {
		b.WriteString(r.Size + "," + r.Weight + "\n")
	}
	rows, err := ReadCSV(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(SampleRows(), rows) {
		t.Errorf("want %v, got %v", SampleRows(), rows)
	}
}

func TestReadCSVErrors(t *testing.T) {
	for _, test := range []struct {
		in    string
		row   int
		field string
	}{
		{"", 0, "header"},
		{"a,b,c\n1,2,3\n", 0, "header"},
		{"a,b\n1,2\n3\n", 2, "record"},
		{"a,b\n1,2,3\n", 1, "record"},
		{"a,b\n1,2\"\n", 1, "record"},
	} {
		_, err := ReadCSV(strings.NewReader(test.in))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%q: want *ParseError, got %v", test.in, err)
			continue
		}
		if pe.Row != test.row || pe.Field != test.field {
			t.Errorf("%q: want row %d field %s, got %v", test.in, test.row, test.field, err)
		}
	}
}

func TestExpectedCSV(t *testing.T) {
	if !strings.HasPrefix(ExpectedCSV, "Sieve Size (mm),Weight Retained (g)\n") {
		t.Errorf("unexpected header in %q", ExpectedCSV)
	}
}
