// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
)

// strof renders a statistic for CSV output at full precision.
// Undefined values become empty fields.
func strof(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// FormatCSV writes the three summary tables to w in CSV form, each
// with its own header row, separated by blank records.
func FormatCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)

	cw.Write([]string{"strategy", "alpha", "op_set", "mean_obj", "std_obj", "mean_time", "num_runs", "cv_obj"})
	for _, row := range r.Quality.Rows {
		cw.Write([]string{
			row.Strategy,
			strof(row.Alpha),
			row.OpSet,
			strof(row.MeanObj),
			strof(row.StdObj),
			strof(row.MeanTime),
			strconv.Itoa(row.NumRuns),
			strof(row.CV),
		})
	}

	cw.Write([]string{})
	cw.Write([]string{"strategy", "mean_obj", "mean_time", "mean_iterations", "performance_metric"})
	for _, row := range r.Efficiency.Strategies {
		cw.Write([]string{
			row.Strategy,
			strof(row.MeanObj),
			strof(row.MeanTime),
			strof(row.MeanIters),
			strof(row.PerfMetric),
		})
	}

	cw.Write([]string{})
	cw.Write([]string{"op_set", "mean_obj", "mean_time"})
	for _, row := range r.Efficiency.OpSets {
		cw.Write([]string{row.OpSet, strof(row.MeanObj), strof(row.MeanTime)})
	}

	cw.Flush()
	return cw.Error()
}
