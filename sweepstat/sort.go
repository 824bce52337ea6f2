// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import "sort"

// An Order defines a sort order for the rows of a QualityTable.
type Order func(a, b *QualityRow) bool

// ByMeanObj orders configurations best mean objective first under
// dir: ascending when minimizing, descending when maximizing.
func ByMeanObj(dir Direction) Order {
	return func(a, b *QualityRow) bool {
		return dir.Better(a.MeanObj, b.MeanObj)
	}
}

// ByTime orders configurations fastest first.
func ByTime(a, b *QualityRow) bool {
	return a.MeanTime < b.MeanTime
}

// Reverse returns the reverse of order.
func Reverse(order Order) Order {
	return func(a, b *QualityRow) bool { return order(b, a) }
}

// SortQuality stably sorts q.Rows in place by order.
func SortQuality(q *QualityTable, order Order) {
	sort.SliceStable(q.Rows, func(i, j int) bool {
		return order(q.Rows[i], q.Rows[j])
	})
}
