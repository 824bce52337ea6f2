// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/sweeplab/sweepstat/sweepfmt"
)

// A QualityRow summarizes the repeated runs of one configuration: a
// distinct (strategy, alpha, op_set_str) combination.
type QualityRow struct {
	Strategy string
	Alpha    float64
	OpSet    string

	MeanObj  float64
	StdObj   float64 // NaN when the group has a single run
	MeanTime float64
	NumRuns  int

	// CV is the coefficient of variation of the objective,
	// std/|mean| as a percentage. NaN when StdObj is undefined or
	// the mean objective is zero.
	CV float64
}

// Config renders the configuration identity of r.
func (r *QualityRow) Config() string {
	return fmt.Sprintf("%s alpha=%v %s", r.Strategy, r.Alpha, r.OpSet)
}

// A QualityTable holds one row per configuration, ranked by mean
// objective.
type QualityTable struct {
	Dir  Direction
	Rows []*QualityRow // best first

	// Warnings records configurations whose robustness measures
	// are undefined.
	Warnings []error
}

// Quality groups the results table by configuration identity and
// summarizes solution quality (mean objective) and robustness (std
// dev and CV of the objective) per configuration, along with mean
// time and run count. Rows come back best first according to dir.
func Quality(t *table.Table, dir Direction) *QualityTable {
	q := &QualityTable{Dir: dir}
	if t == nil || t.Len() == 0 {
		return q
	}

	g := ggstat.Agg(sweepfmt.ColStrategy, sweepfmt.ColAlpha, sweepfmt.ColOpSetStr)(
		ggstat.AggMean(sweepfmt.ColFinalObj, sweepfmt.ColTotalTime),
		aggStdDev(sweepfmt.ColFinalObj),
		ggstat.AggCount("num_runs"),
	).F(t)
	flat := table.Flatten(g)
	if flat == nil || flat.Len() == 0 {
		return q
	}

	strategies := stringColumn(flat, sweepfmt.ColStrategy)
	alphas := floatColumn(flat, sweepfmt.ColAlpha)
	opSets := stringColumn(flat, sweepfmt.ColOpSetStr)
	meanObj := floatColumn(flat, "mean "+sweepfmt.ColFinalObj)
	meanTime := floatColumn(flat, "mean "+sweepfmt.ColTotalTime)
	stdObj := floatColumn(flat, "std "+sweepfmt.ColFinalObj)
	numRuns := intColumn(flat, "num_runs")

	for i := range strategies {
		r := &QualityRow{
			Strategy: strategies[i],
			Alpha:    alphas[i],
			OpSet:    opSets[i],
			MeanObj:  meanObj[i],
			StdObj:   stdObj[i],
			MeanTime: meanTime[i],
			NumRuns:  numRuns[i],
		}
		switch {
		case r.NumRuns < 2:
			r.CV = math.NaN()
			q.Warnings = append(q.Warnings, fmt.Errorf("%s: single run, robustness undefined", r.Config()))
		case r.MeanObj == 0:
			r.CV = math.NaN()
			q.Warnings = append(q.Warnings, fmt.Errorf("%s: zero mean objective, CV undefined", r.Config()))
		default:
			r.CV = r.StdObj / math.Abs(r.MeanObj) * 100
		}
		q.Rows = append(q.Rows, r)
	}

	SortQuality(q, ByMeanObj(dir))
	return q
}

// Best returns the headline (rank-0) configuration, or nil for an
// empty table.
func (q *QualityTable) Best() *QualityRow {
	if len(q.Rows) == 0 {
		return nil
	}
	return q.Rows[0]
}

// Top returns the first n rows, or all rows if the table is smaller.
func (q *QualityTable) Top(n int) []*QualityRow {
	if n > len(q.Rows) {
		n = len(q.Rows)
	}
	return q.Rows[:n]
}
