// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sieve analyzes the particle-size distribution of a soil or
// aggregate sample from the weights retained on a stack of sieves.
//
// The analysis is a pipeline over a single table:
//
//	Normalize   raw (size, weight) text -> Table, sorted coarsest first
//	Distribute  Table -> Distribution (% retained, cumulative, % passing)
//	Grade       Distribution -> D10, D30, D60, Cu, Cc, classification
//	Shape       Distribution -> skewness and kurtosis of % passing
//
// Analyze runs all stages. Every stage is a pure function of its
// input; nothing in this package logs or keeps state between calls.
package sieve // import "github.com/aclements/go-geosieve/sieve"
