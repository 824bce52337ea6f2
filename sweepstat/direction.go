// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweepstat computes and compares statistics over the results
// of a parameter-sweep experiment.
//
// The input is a table of runs (see package sweepfmt). The analyzers
// group runs by configuration identity and by strategy, derive
// quality, robustness, and efficiency measures, and rank the groups.
// Robustness warnings are captured as []error values: they don't
// prevent analysis, but should be presented to the user along with
// the results.
package sweepstat

import "fmt"

// A Direction says whether lower or higher objective values are
// better. It is a fixed property of the analysis, threaded through
// every ranking and derived metric, not a per-call choice.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// ParseDirection maps a flag value to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "min", "minimize":
		return Minimize, nil
	case "max", "maximize":
		return Maximize, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want min or max)", s)
}

func (d Direction) String() string {
	if d == Maximize {
		return "max"
	}
	return "min"
}

// Better reports whether objective value a is better than b under d.
func (d Direction) Better(a, b float64) bool {
	if d == Maximize {
		return a > b
	}
	return a < b
}

// PerfMetric combines solution quality and computation time into one
// score. Minimizing analyses use obj*time, where lower is better;
// maximizing analyses use obj/time, where higher is better.
func (d Direction) PerfMetric(obj, time float64) float64 {
	if d == Maximize {
		return obj / time
	}
	return obj * time
}

// BetterMetric reports whether performance metric a beats b under d.
// The comparison direction matches PerfMetric: the product form wins
// low, the ratio form wins high.
func (d Direction) BetterMetric(a, b float64) bool {
	if d == Maximize {
		return a > b
	}
	return a < b
}
