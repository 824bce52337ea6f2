// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweepfmt reads parameter-sweep experiment results.
//
// The on-disk format is a CSV file with one row per run. All rows
// sharing a (strategy, alpha, op_set) combination are repeated trials
// of one configuration, differing only by seed. The reader produces a
// go-gg table so the analyzers can use its grouping and aggregation
// machinery directly.
package sweepfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Column names of the results table. All but ColOpSetStr must appear
// in the input header.
const (
	ColStrategy   = "strategy"
	ColAlpha      = "alpha"
	ColOpSet      = "op_set"
	ColSeed       = "seed"
	ColFinalObj   = "final_obj"
	ColTotalTime  = "total_time"
	ColIterations = "iterations"

	// ColOpSetStr is derived by the reader: the string rendering
	// of op_set, used as the grouping discriminant so that
	// inconsistently typed op_set values still land in the same
	// group.
	ColOpSetStr = "op_set_str"
)

// RequiredColumns lists the columns an input file must declare in its
// header row.
var RequiredColumns = []string{
	ColStrategy, ColAlpha, ColOpSet, ColSeed,
	ColFinalObj, ColTotalTime, ColIterations,
}

// numericColumns are the columns the analyzers aggregate over. The
// reader widens these to float64 when the CSV coercion produces
// integers, so that means keep their fractional parts.
var numericColumns = []string{ColAlpha, ColFinalObj, ColTotalTime, ColIterations}

// A SyntaxError reports a problem with the structure of a results
// file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads a results file into a table.
//
// To construct a Reader, call NewReader. The fileName is used in
// error messages; it is purely diagnostic.
type Reader struct {
	c        *csv.Reader
	fileName string
}

// NewReader constructs a reader parsing CSV results from r.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{c: csv.NewReader(r), fileName: fileName}
}

// Read consumes the whole input and returns it as a table with one
// row per run. Columns whose values all parse as numbers become
// numeric columns; anything else stays a string column, and
// aggregating over such a column is the caller's type error to hit.
// The returned table carries the derived ColOpSetStr column.
func (r *Reader) Read() (*table.Table, error) {
	header, err := r.c.Read()
	if err == io.EOF {
		return nil, &SyntaxError{r.fileName, 1, "empty results file"}
	}
	if err != nil {
		return nil, err
	}
	for _, col := range RequiredColumns {
		if !containsString(header, col) {
			return nil, &SyntaxError{r.fileName, 1, fmt.Sprintf("missing required column %q", col)}
		}
	}

	rows, err := r.c.ReadAll()
	if err != nil {
		return nil, err
	}

	t := table.TableFromStrings(header, rows, true)

	for _, col := range numericColumns {
		if ints, ok := t.Column(col).([]int); ok {
			var fs []float64
			slice.Convert(&fs, ints)
			t = table.NewBuilder(t).Add(col, fs).Done()
		}
	}

	// Derive the canonical grouping key from op_set, whatever type
	// the coercion gave it.
	ops := reflect.ValueOf(t.MustColumn(ColOpSet))
	strs := make([]string, t.Len())
	for i := range strs {
		strs[i] = fmt.Sprint(ops.Index(i).Interface())
	}
	return table.NewBuilder(t).Add(ColOpSetStr, strs).Done(), nil
}

// ReadFile reads the results table from the named file. A missing
// file is reported as an error satisfying
// errors.Is(err, fs.ErrNotExist); callers abort the analysis on it
// rather than treating it as fatal.
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewReader(f, path).Read()
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
