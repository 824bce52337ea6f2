// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var tab Table
	tab.Row().Cell("strategy").Cell("mean_obj", Right)
	tab.Row().Cell("first").Cell("100.00", Right)
	tab.Row().Cell("best").Cell("90.00", Right)

	var buf strings.Builder
	if err := tab.Format(&buf); err != nil {
		t.Fatal(err)
	}
	want := "strategy  mean_obj\n" +
		"first       100.00\n" +
		"best         90.00\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestTableRaggedRows(t *testing.T) {
	var tab Table
	tab.Row().Cell("a").Cell("bb").Cell("c")
	tab.Row().Cell("dddd")

	var buf strings.Builder
	if err := tab.Format(&buf); err != nil {
		t.Fatal(err)
	}
	// Trailing spaces are trimmed, so the short row has no padding.
	want := "a     bb  c\ndddd\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTableEmpty(t *testing.T) {
	var buf strings.Builder
	if err := new(Table).Format(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty table produced output %q", buf.String())
	}
}
