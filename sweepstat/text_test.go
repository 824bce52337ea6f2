// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

// tradeoffReport analyzes a small sweep where the "first" strategy is
// five times faster and 1/9 worse than "best".
func tradeoffReport(t *testing.T) *Report {
	t.Helper()
	tab := loadTable(t,
		"first,0.3,[x],1,99,1,10",
		"first,0.3,[x],2,101,1,10",
		"best,0.3,[x],1,89,5,50",
		"best,0.3,[x],2,91,5,50",
	)
	return Analyze("results.csv", tab, nil)
}

func TestFormatText(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatText(&buf, tradeoffReport(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Loaded 4 runs from results.csv (direction: min)",
		"ranked by mean objective (lower is better)",
		"Best configuration on average: best alpha=0.3 [x]",
		"mean objective of 90.00",
		`The "first" strategy is 5.0 times faster on average than "best".`,
		"It sacrifices 11.11% in solution quality.",
		"Analysis complete.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestFormatTextUndefined(t *testing.T) {
	// Undefined robustness renders as "?", never as a number.
	tab := loadTable(t, "solo,0.3,[x],1,10,1,10")
	var buf bytes.Buffer
	if err := FormatText(&buf, Analyze("results.csv", tab, nil)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "?") {
		t.Errorf("output does not mark undefined statistics:\n%s", out)
	}
	if !strings.Contains(out, "warning:") || !strings.Contains(out, "single run") {
		t.Errorf("output does not surface the single-run warning:\n%s", out)
	}
	if strings.Contains(out, "CV) of 0.00") {
		t.Errorf("undefined CV rendered as zero:\n%s", out)
	}
}

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatCSV(&buf, tradeoffReport(t)); err != nil {
		t.Fatal(err)
	}

	// Three sections separated by blank lines, each with a header.
	sections := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3:\n%s", len(sections), buf.String())
	}

	quality, err := csv.NewReader(strings.NewReader(sections[0])).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := strings.Join(quality[0], ","), "strategy,alpha,op_set,mean_obj,std_obj,mean_time,num_runs,cv_obj"; got != want {
		t.Errorf("quality header: got %s, want %s", got, want)
	}
	// best ranks first when minimizing.
	if len(quality) != 3 || quality[1][0] != "best" || quality[1][3] != "90" {
		t.Errorf("quality rows: got %v", quality[1:])
	}

	strat, err := csv.NewReader(strings.NewReader(sections[1])).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// first wins the minimizing metric: 100*1 vs 90*5.
	if len(strat) != 3 || strat[1][0] != "first" {
		t.Errorf("strategy rows: got %v", strat[1:])
	}
}

func TestFormatCSVUndefined(t *testing.T) {
	tab := loadTable(t, "solo,0.3,[x],1,10,1,10")
	var buf bytes.Buffer
	if err := FormatCSV(&buf, Analyze("results.csv", tab, nil)); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(strings.NewReader(strings.SplitN(buf.String(), "\n\n", 2)[0])).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	// std_obj and cv_obj are empty fields, not zeros.
	if got := rows[1]; got[4] != "" || got[7] != "" {
		t.Errorf("undefined statistics not empty: %v", got)
	}
}

func TestFormatHTML(t *testing.T) {
	var buf bytes.Buffer
	FormatHTML(&buf, tradeoffReport(t))
	out := buf.String()

	for _, want := range []string{
		"<table class='sweepstat'>",
		"Best configuration on average",
		"5.0 times faster",
		"11.11",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}
