// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepfmt

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
)

const sampleCSV = `strategy,alpha,op_set,seed,final_obj,total_time,iterations
first,0.3,"('swap', 'insert')",1,10.5,1.25,100
first,0.3,"('swap', 'insert')",2,11,1.5,120
best,0.7,"('swap',)",1,9,60.25,4000
`

func readString(t *testing.T, data string) *table.Table {
	t.Helper()
	tab, err := NewReader(strings.NewReader(data), "test.csv").Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tab
}

func TestRead(t *testing.T) {
	tab := readString(t, sampleCSV)

	if got, want := tab.Len(), 3; got != want {
		t.Fatalf("got %d rows, want %d", got, want)
	}

	// The grouping key is derived from op_set verbatim.
	wantOps := []string{"('swap', 'insert')", "('swap', 'insert')", "('swap',)"}
	if got := tab.MustColumn(ColOpSetStr).([]string); !reflect.DeepEqual(got, wantOps) {
		t.Errorf("op_set_str: got %q, want %q", got, wantOps)
	}

	// Numeric columns coerce to float64.
	wantObj := []float64{10.5, 11, 9}
	if got := tab.MustColumn(ColFinalObj).([]float64); !reflect.DeepEqual(got, wantObj) {
		t.Errorf("final_obj: got %v, want %v", got, wantObj)
	}
	wantAlpha := []float64{0.3, 0.3, 0.7}
	if got := tab.MustColumn(ColAlpha).([]float64); !reflect.DeepEqual(got, wantAlpha) {
		t.Errorf("alpha: got %v, want %v", got, wantAlpha)
	}
}

func TestReadWidensIntegerColumns(t *testing.T) {
	// All-integer numeric columns must still aggregate with
	// fractional means, so the reader widens them to float64.
	tab := readString(t, `strategy,alpha,op_set,seed,final_obj,total_time,iterations
x,1,[a],1,10,1,100
x,1,[a],2,20,2,120
`)
	wantObj := []float64{10, 20}
	if got := tab.MustColumn(ColFinalObj).([]float64); !reflect.DeepEqual(got, wantObj) {
		t.Errorf("final_obj: got %v (%T), want %v", got, tab.MustColumn(ColFinalObj), wantObj)
	}
	wantIters := []float64{100, 120}
	if got := tab.MustColumn(ColIterations).([]float64); !reflect.DeepEqual(got, wantIters) {
		t.Errorf("iterations: got %v, want %v", got, wantIters)
	}
}

func TestReadNumericOpSet(t *testing.T) {
	// op_set_str is the string rendering even when op_set happens
	// to be numeric.
	tab := readString(t, `strategy,alpha,op_set,seed,final_obj,total_time,iterations
x,1,3,1,10,1,100
x,1,4,1,20,2,120
`)
	want := []string{"3", "4"}
	if got := tab.MustColumn(ColOpSetStr).([]string); !reflect.DeepEqual(got, want) {
		t.Errorf("op_set_str: got %q, want %q", got, want)
	}
}

func TestReadHeaderOnly(t *testing.T) {
	tab := readString(t, "strategy,alpha,op_set,seed,final_obj,total_time,iterations\n")
	if tab.Len() != 0 {
		t.Errorf("got %d rows, want 0", tab.Len())
	}
}

func TestReadMissingColumn(t *testing.T) {
	_, err := NewReader(strings.NewReader("strategy,alpha,op_set,seed,final_obj,total_time\n"), "test.csv").Read()
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got error %v, want *SyntaxError", err)
	}
	if want := `missing required column "iterations"`; !strings.Contains(serr.Msg, want) {
		t.Errorf("got message %q, want %q", serr.Msg, want)
	}
	if serr.FileName != "test.csv" || serr.Line != 1 {
		t.Errorf("got position %s:%d, want test.csv:1", serr.FileName, serr.Line)
	}
}

func TestReadEmpty(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), "test.csv").Read()
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got error %v, want *SyntaxError", err)
	}
	if want := "empty results file"; serr.Msg != want {
		t.Errorf("got message %q, want %q", serr.Msg, want)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0666); err != nil {
		t.Fatal(err)
	}
	tab, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := tab.Len(), 3; got != want {
		t.Errorf("got %d rows, want %d", got, want)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want fs.ErrNotExist", err)
	}
}
