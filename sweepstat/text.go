// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sweeplab/sweepstat/internal/texttab"
)

// fnum formats a statistic to two decimal places. Undefined values
// (NaN, ±Inf) render as "?" so they can't be mistaken for zeros.
func fnum(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "?"
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// fval formats a grouping key value such as alpha.
func fval(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// FormatText writes the report to w as fixed-width text: the ranked
// quality table, the headline configuration, the strategy and
// operator-set efficiency tables, and the tradeoff narrative when it
// applies.
func FormatText(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "Loaded %d runs from %s (direction: %s)\n", r.NumRuns, r.Path, r.Dir); err != nil {
		return err
	}

	better := "lower is better"
	if r.Dir == Maximize {
		better = "higher is better"
	}

	fmt.Fprintf(w, "\nQuality and robustness, ranked by mean objective (%s)\n", better)
	tab := new(texttab.Table)
	tab.Row().
		Cell("strategy").
		Cell("alpha", texttab.Right).
		Cell("op_set").
		Cell("mean_obj", texttab.Right).
		Cell("std_obj", texttab.Right).
		Cell("mean_time", texttab.Right).
		Cell("runs", texttab.Right).
		Cell("CV%", texttab.Right)
	for _, row := range r.Quality.Top(r.TopN) {
		tab.Row().
			Cell(row.Strategy).
			Cell(fval(row.Alpha), texttab.Right).
			Cell(row.OpSet).
			Cell(fnum(row.MeanObj), texttab.Right).
			Cell(fnum(row.StdObj), texttab.Right).
			Cell(fnum(row.MeanTime), texttab.Right).
			Cell(strconv.Itoa(row.NumRuns), texttab.Right).
			Cell(fnum(row.CV), texttab.Right)
	}
	if err := tab.Format(w); err != nil {
		return err
	}

	if best := r.Quality.Best(); best != nil {
		fmt.Fprintf(w, "\nBest configuration on average: %s\n", best.Config())
		fmt.Fprintf(w, "It achieved a mean objective of %s with robustness (CV) of %s%%.\n",
			fnum(best.MeanObj), fnum(best.CV))
	}
	for _, warn := range r.Quality.Warnings {
		fmt.Fprintf(w, "warning: %v\n", warn)
	}

	fmt.Fprintf(w, "\nStrategy efficiency (best performance metric first)\n")
	tab = new(texttab.Table)
	tab.Row().
		Cell("strategy").
		Cell("mean_obj", texttab.Right).
		Cell("mean_time", texttab.Right).
		Cell("mean_iterations", texttab.Right).
		Cell("performance_metric", texttab.Right)
	for _, row := range r.Efficiency.Strategies {
		tab.Row().
			Cell(row.Strategy).
			Cell(fnum(row.MeanObj), texttab.Right).
			Cell(fnum(row.MeanTime), texttab.Right).
			Cell(fnum(row.MeanIters), texttab.Right).
			Cell(fnum(row.PerfMetric), texttab.Right)
	}
	if err := tab.Format(w); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nOperator set efficiency (fastest first)\n")
	tab = new(texttab.Table)
	tab.Row().
		Cell("op_set").
		Cell("mean_obj", texttab.Right).
		Cell("mean_time", texttab.Right)
	for _, row := range r.Efficiency.OpSets {
		tab.Row().
			Cell(row.OpSet).
			Cell(fnum(row.MeanObj), texttab.Right).
			Cell(fnum(row.MeanTime), texttab.Right)
	}
	if err := tab.Format(w); err != nil {
		return err
	}

	if td := r.Efficiency.Tradeoff; td != nil {
		fmt.Fprintf(w, "\nThe %q strategy is %.1f times faster on average than %q.\n",
			td.Baseline, td.TimeRatio, td.Reference)
		fmt.Fprintf(w, "It sacrifices %s%% in solution quality. Decide if the speed gain is worth it.\n",
			fnum(td.QualityDiff))
	}

	_, err := fmt.Fprintf(w, "\nAnalysis complete.\n")
	return err
}
