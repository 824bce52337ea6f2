// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"sort"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/sweeplab/sweepstat/sweepfmt"
)

// A StrategyRow summarizes one strategy across the whole sweep.
type StrategyRow struct {
	Strategy  string
	MeanObj   float64
	MeanTime  float64
	MeanIters float64

	// PerfMetric is Direction.PerfMetric of the mean objective and
	// mean time.
	PerfMetric float64
}

// An OpSetRow summarizes one operator set across the whole sweep.
type OpSetRow struct {
	OpSet    string
	MeanObj  float64
	MeanTime float64
}

// A Tradeoff compares a cheap baseline strategy against a thorough
// reference strategy.
type Tradeoff struct {
	Baseline, Reference string

	// TimeRatio is the reference's mean time over the baseline's.
	TimeRatio float64

	// QualityDiff is the relative quality gap, as a percentage,
	// paid for running the baseline instead of the reference.
	QualityDiff float64
}

// An EfficiencyTable holds the per-strategy and per-operator-set
// summaries and, when the data allows it, the headline tradeoff.
type EfficiencyTable struct {
	Dir        Direction
	Strategies []*StrategyRow // best performance metric first
	OpSets     []*OpSetRow    // fastest first, regardless of Dir

	// Tradeoff is nil when either named strategy is absent from
	// the data or the baseline is not strictly faster than the
	// reference. That's an expected state of the data, not an
	// error.
	Tradeoff *Tradeoff
}

// Efficiency groups the results table by strategy and by operator
// set, derives the combined quality/time performance metric per
// strategy, and compares the named baseline and reference strategies.
func Efficiency(t *table.Table, dir Direction, baseline, reference string) *EfficiencyTable {
	e := &EfficiencyTable{Dir: dir}
	if t == nil || t.Len() == 0 {
		return e
	}

	g := ggstat.Agg(sweepfmt.ColStrategy)(
		ggstat.AggMean(sweepfmt.ColFinalObj, sweepfmt.ColTotalTime, sweepfmt.ColIterations),
	).F(t)
	if flat := table.Flatten(g); flat != nil && flat.Len() > 0 {
		names := stringColumn(flat, sweepfmt.ColStrategy)
		meanObj := floatColumn(flat, "mean "+sweepfmt.ColFinalObj)
		meanTime := floatColumn(flat, "mean "+sweepfmt.ColTotalTime)
		meanIters := floatColumn(flat, "mean "+sweepfmt.ColIterations)
		for i := range names {
			e.Strategies = append(e.Strategies, &StrategyRow{
				Strategy:   names[i],
				MeanObj:    meanObj[i],
				MeanTime:   meanTime[i],
				MeanIters:  meanIters[i],
				PerfMetric: dir.PerfMetric(meanObj[i], meanTime[i]),
			})
		}
		sort.SliceStable(e.Strategies, func(i, j int) bool {
			return dir.BetterMetric(e.Strategies[i].PerfMetric, e.Strategies[j].PerfMetric)
		})
	}

	og := ggstat.Agg(sweepfmt.ColOpSetStr)(
		ggstat.AggMean(sweepfmt.ColFinalObj, sweepfmt.ColTotalTime),
	).F(t)
	if flat := table.Flatten(og); flat != nil && flat.Len() > 0 {
		opSets := stringColumn(flat, sweepfmt.ColOpSetStr)
		meanObj := floatColumn(flat, "mean "+sweepfmt.ColFinalObj)
		meanTime := floatColumn(flat, "mean "+sweepfmt.ColTotalTime)
		for i := range opSets {
			e.OpSets = append(e.OpSets, &OpSetRow{
				OpSet:    opSets[i],
				MeanObj:  meanObj[i],
				MeanTime: meanTime[i],
			})
		}
		// Fastest first, whatever the optimization direction.
		sort.SliceStable(e.OpSets, func(i, j int) bool {
			return e.OpSets[i].MeanTime < e.OpSets[j].MeanTime
		})
	}

	e.Tradeoff = tradeoff(e.Strategies, dir, baseline, reference)
	return e
}

// tradeoff computes the baseline-vs-reference comparison, or nil when
// the comparison doesn't apply.
func tradeoff(rows []*StrategyRow, dir Direction, baseline, reference string) *Tradeoff {
	var base, ref *StrategyRow
	for _, r := range rows {
		switch r.Strategy {
		case baseline:
			base = r
		case reference:
			ref = r
		}
	}
	if base == nil || ref == nil || !(base.MeanTime < ref.MeanTime) {
		return nil
	}
	td := &Tradeoff{
		Baseline:  baseline,
		Reference: reference,
		TimeRatio: ref.MeanTime / base.MeanTime,
	}
	if dir == Maximize {
		td.QualityDiff = (ref.MeanObj/base.MeanObj - 1) * 100
	} else {
		td.QualityDiff = (base.MeanObj/ref.MeanObj - 1) * 100
	}
	return td
}
