// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab does layout of simple column-aligned text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// A Table accumulates rows of cells and lays them out in aligned
// columns. Methods return the Table so callers can chain them to
// build up a row at a time.
type Table struct {
	rows [][]cell
}

type cell struct {
	value string
	right bool
}

// A CellOption adjusts the formatting of a single cell.
type CellOption func(c *cell)

// Right aligns the cell to the right edge of its column. Use it for
// numeric columns.
var Right CellOption = func(c *cell) { c.right = true }

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell appends a cell to the current row, starting the first row if
// none has been started.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	row := len(t.rows) - 1
	t.rows[row] = append(t.rows[row], c)
	return t
}

// Format lays out table t and writes it to w. Columns are separated
// by two spaces and sized to their widest cell; trailing spaces are
// not emitted.
func (t *Table) Format(w io.Writer) error {
	var widths []int
	for _, row := range t.rows {
		for i, c := range row {
			for len(widths) <= i {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(c.value); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for i, c := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			pad := widths[i] - utf8.RuneCountInString(c.value)
			if c.right {
				fmt.Fprintf(&line, "%*s%s", pad, "", c.value)
			} else {
				fmt.Fprintf(&line, "%s%*s", c.value, pad, "")
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n", strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
