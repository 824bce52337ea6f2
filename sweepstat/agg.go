// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// aggStdDev returns an aggregate function that computes the sample
// standard deviation of each of cols. The resulting columns are named
// "std <col>". A group with fewer than two rows has no variance
// estimate; its entry is NaN rather than zero, so a single run can't
// masquerade as perfectly robust.
func aggStdDev(cols ...string) ggstat.Aggregator {
	return func(input table.Grouping, b *table.Builder) {
		for _, col := range cols {
			devs := make([]float64, 0, len(input.Tables()))
			var xs []float64
			for _, gid := range input.Tables() {
				slice.Convert(&xs, input.Table(gid).MustColumn(col))
				if len(xs) < 2 {
					devs = append(devs, math.NaN())
					continue
				}
				devs = append(devs, stats.StdDev(xs))
			}
			b.Add("std "+col, devs)
		}
	}
}

// floatColumn returns the named column as []float64, converting
// integer columns as needed.
func floatColumn(t *table.Table, col string) []float64 {
	var xs []float64
	slice.Convert(&xs, t.MustColumn(col))
	return xs
}

// intColumn returns the named column as []int.
func intColumn(t *table.Table, col string) []int {
	var xs []int
	slice.Convert(&xs, t.MustColumn(col))
	return xs
}

// stringColumn returns the named column rendered as strings.
func stringColumn(t *table.Table, col string) []string {
	v := reflect.ValueOf(t.MustColumn(col))
	xs := make([]string, v.Len())
	for i := range xs {
		xs[i] = fmt.Sprint(v.Index(i).Interface())
	}
	return xs
}
