// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// geosieve reads a sieve analysis CSV and reports the grain-size
// distribution, grading coefficients, shape statistics and soil
// classification of the sample.
//
// Usage:
//
//	geosieve [-sample] [-debug] [file.csv]
//
// With no file, geosieve reads standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/aclements/go-geosieve/sieve"
)

func main() {
	var (
		useSample = flag.Bool("sample", false, "analyze the built-in sample data instead of reading a CSV")
		debug     = flag.Bool("debug", false, "enable development logging")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := newLogger(*debug)
	defer log.Sync()

	rows, err := readRows(*useSample, flag.Arg(0), os.Stdin)
	if err != nil {
		log.Fatalw("reading sieve data", "error", err, "kind", errorKind(err))
	}
	log.Debugw("read sieve data", "rows", len(rows), "sample", *useSample)

	a, err := sieve.Analyze(rows)
	if err != nil {
		log.Fatalw("analyzing sieve data", "error", err, "kind", errorKind(err))
	}
	log.Debugw("analysis complete", "total_weight", a.TotalWeight, "class", a.Gradation.Class)

	if err := a.Fprint(os.Stdout); err != nil {
		log.Fatalw("writing report", "error", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [file.csv]\n\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExpected CSV format:\n\n%s", sieve.ExpectedCSV)
}

func newLogger(debug bool) *zap.SugaredLogger {
	var l *zap.Logger
	var err error
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "can't initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	return l.Sugar()
}

// readRows returns the sample rows if useSample is set, and otherwise
// the rows of the CSV file path, or of stdin if path is empty.
func readRows(useSample bool, path string, stdin io.Reader) ([]sieve.RawRow, error) {
	if useSample {
		return sieve.SampleRows(), nil
	}
	if path == "" {
		return sieve.ReadCSV(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sieve.ReadCSV(f)
}

// errorKind classifies err for logging.
func errorKind(err error) string {
	var (
		pe *sieve.ParseError
		ve *sieve.ValidationError
		de *sieve.DegenerateInputError
	)
	switch {
	case errors.As(err, &pe):
		return "parse"
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &de):
		return "degenerate"
	}
	return "io"
}
