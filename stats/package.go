// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats is a small collection of numeric routines used by the sieve
// analysis: moments of a sample and table interpolation.
package stats // import "github.com/aclements/go-geosieve/stats"

import "math"

var nan = math.NaN()
