// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import "github.com/aclements/go-gg/table"

// Options configures the analysis. Presentation settings live here,
// passed explicitly to the formatters, not in process-wide state.
type Options struct {
	// Dir is the optimization direction of the experiment.
	Dir Direction

	// Baseline and Reference name the two strategies compared by
	// the headline tradeoff: a cheap baseline and a thorough
	// reference.
	Baseline  string
	Reference string

	// TopN is how many quality rows the report shows.
	TopN int
}

// DefaultOptions returns the conventional analysis settings: a
// minimizing sweep comparing the "first" and "best" strategies,
// reporting the top 15 configurations.
func DefaultOptions() *Options {
	return &Options{
		Dir:       Minimize,
		Baseline:  "first",
		Reference: "best",
		TopN:      15,
	}
}

// A Report is the complete analysis of one results table. Both
// summaries are freshly computed from the table; running Analyze
// twice over the same table yields identical reports.
type Report struct {
	Path    string
	NumRuns int
	Dir     Direction
	TopN    int

	Quality    *QualityTable
	Efficiency *EfficiencyTable
}

// Analyze runs both analyzers over the loaded table. path is used
// only for display. A nil opts means DefaultOptions.
func Analyze(path string, t *table.Table, opts *Options) *Report {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Report{
		Path:       path,
		NumRuns:    t.Len(),
		Dir:        opts.Dir,
		TopN:       opts.TopN,
		Quality:    Quality(t, opts.Dir),
		Efficiency: Efficiency(t, opts.Dir, opts.Baseline, opts.Reference),
	}
}
