// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweepchart renders comparison charts for parameter-sweep
// results.
//
// The charts re-aggregate the loaded table at (strategy, alpha)
// granularity and draw grouped bar charts: mean objective and mean
// time per alpha, one bar color per strategy, plus (for maximizing
// sweeps) a ranked horizontal chart of the performance metric.
package sweepchart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"

	"github.com/sweeplab/sweepstat/sweepfmt"
	"github.com/sweeplab/sweepstat/sweepstat"
)

// File names of the rendered charts.
const (
	ObjChart  = "mean_obj.png"
	TimeChart = "mean_time.png"
	PerfChart = "perf_metric.png"
)

// A cell is one (strategy, alpha) aggregate.
type cell struct {
	strategy string
	alpha    float64
}

// Chart aggregates t by (strategy, alpha) and writes the comparison
// charts as PNG files into outDir, creating it if needed. The
// performance-metric chart is only rendered for maximizing sweeps,
// where the metric's ranking reads naturally left to right.
func Chart(t *table.Table, dir sweepstat.Direction, outDir string) error {
	if t == nil || t.Len() == 0 {
		return fmt.Errorf("no runs to chart")
	}
	if err := os.MkdirAll(outDir, 0777); err != nil {
		return err
	}

	g := ggstat.Agg(sweepfmt.ColStrategy, sweepfmt.ColAlpha)(
		ggstat.AggMean(sweepfmt.ColFinalObj, sweepfmt.ColTotalTime),
	).F(t)
	flat := table.Flatten(g)

	strategies := flat.MustColumn(sweepfmt.ColStrategy).([]string)
	alphas := flat.MustColumn(sweepfmt.ColAlpha).([]float64)
	meanObj := flat.MustColumn("mean " + sweepfmt.ColFinalObj).([]float64)
	meanTime := flat.MustColumn("mean " + sweepfmt.ColTotalTime).([]float64)

	objOf := make(map[cell]float64)
	timeOf := make(map[cell]float64)
	var sAll []string
	var aAll []float64
	for i := range strategies {
		c := cell{strategies[i], alphas[i]}
		if _, ok := objOf[c]; !ok {
			if !containsString(sAll, c.strategy) {
				sAll = append(sAll, c.strategy)
			}
			if !containsFloat(aAll, c.alpha) {
				aAll = append(aAll, c.alpha)
			}
		}
		objOf[c] = meanObj[i]
		timeOf[c] = meanTime[i]
	}
	sort.Float64s(aAll)

	err := groupedBars(filepath.Join(outDir, ObjChart),
		"Mean final objective by alpha and strategy", "mean objective",
		sAll, aAll, objOf)
	if err != nil {
		return err
	}
	err = groupedBars(filepath.Join(outDir, TimeChart),
		"Mean total time by alpha and strategy", "mean time (s)",
		sAll, aAll, timeOf)
	if err != nil {
		return err
	}

	if dir == sweepstat.Maximize {
		metricOf := make(map[cell]float64)
		for c, obj := range objOf {
			metricOf[c] = dir.PerfMetric(obj, timeOf[c])
		}
		err = rankedBars(filepath.Join(outDir, PerfChart),
			"Performance metric (objective / time)",
			sAll, aAll, metricOf)
		if err != nil {
			return err
		}
	}
	return nil
}

// groupedBars draws one vertical bar per (strategy, alpha) cell,
// alphas along the X axis and strategies distinguished by color.
// Missing cells draw as zero-height bars.
func groupedBars(file, title, yLabel string, strategies []string, alphas []float64, valOf map[cell]float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "alpha"
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	w := vg.Points(18)
	for i, s := range strategies {
		vals := make(plotter.Values, len(alphas))
		for j, a := range alphas {
			vals[j] = valOf[cell{s, a}]
		}
		b, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return err
		}
		b.Color = plotutil.Color(i)
		b.Offset = w * (vg.Length(i) - vg.Length(len(strategies)-1)/2)
		p.Add(b)
		p.Legend.Add(s, b)
	}

	labels := make([]string, len(alphas))
	for j, a := range alphas {
		labels[j] = fmt.Sprintf("%v", a)
	}
	p.NominalX(labels...)

	return writePNG(p, file)
}

// rankedBars draws the performance metric as horizontal bars,
// strategies on the Y axis ranked best first, alphas distinguished by
// color.
func rankedBars(file, title string, strategies []string, alphas []float64, valOf map[cell]float64) error {
	// Rank strategies by their best metric.
	ranked := append([]string(nil), strategies...)
	best := make(map[string]float64)
	for _, s := range ranked {
		for _, a := range alphas {
			if v, ok := valOf[cell{s, a}]; ok && v > best[s] {
				best[s] = v
			}
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return best[ranked[i]] > best[ranked[j]]
	})

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "mean objective / mean time"
	p.Legend.Top = true

	w := vg.Points(12)
	for j, a := range alphas {
		vals := make(plotter.Values, len(ranked))
		for i, s := range ranked {
			vals[i] = valOf[cell{s, a}]
		}
		b, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return err
		}
		b.Horizontal = true
		b.Color = plotutil.Color(j)
		b.Offset = w * (vg.Length(j) - vg.Length(len(alphas)-1)/2)
		p.Add(b)
		p.Legend.Add(fmt.Sprintf("alpha=%v", a), b)
	}
	p.NominalY(ranked...)

	return writePNG(p, file)
}

// writePNG renders p onto a white PNG canvas and writes it to file.
func writePNG(p *plot.Plot, file string) error {
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(20*vg.Centimeter, 10*vg.Centimeter),
		vgimg.UseDPI(150),
		vgimg.UseBackgroundColor(color.White),
	)}
	p.Draw(draw.New(can))

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsFloat(haystack []float64, needle float64) bool {
	for _, x := range haystack {
		if x == needle {
			return true
		}
	}
	return false
}
