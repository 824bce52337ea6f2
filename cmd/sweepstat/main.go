// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Sweepstat analyzes the results of a parameter-sweep experiment.
//
// Usage:
//
//	sweepstat [-dir min|max] [-baseline strategy] [-reference strategy]
//	          [-top n] [-csv] [-html] [-png dir] [results.csv]
//
// The input is a CSV file with one row per run and columns strategy,
// alpha, op_set, seed, final_obj, total_time, and iterations. All
// runs sharing a (strategy, alpha, op_set) combination are repeated
// trials of one configuration. With no file argument, sweepstat reads
// experiment_results_detailed.csv in the current directory.
//
// Sweepstat ranks configurations by mean final objective, reports
// robustness as the coefficient of variation of the objective,
// compares strategies on a combined quality/time performance metric,
// and contrasts a cheap baseline strategy against a thorough
// reference (by convention "first" and "best").
//
// The -dir option states whether lower or higher objective values are
// better; it flips every ranking and the form of the performance
// metric (objective*time when minimizing, objective/time when
// maximizing).
//
// The -png option additionally renders grouped bar charts of the
// (strategy, alpha) aggregates into the named directory.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/sweeplab/sweepstat/sweepchart"
	"github.com/sweeplab/sweepstat/sweepfmt"
	"github.com/sweeplab/sweepstat/sweepstat"
)

// defaultPath is where sweep drivers conventionally leave their
// results.
const defaultPath = "experiment_results_detailed.csv"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: sweepstat [options] [results.csv]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagDir       = flag.String("dir", "min", "optimization `direction`: min or max")
	flagBaseline  = flag.String("baseline", "first", "cheap baseline `strategy` for the tradeoff comparison")
	flagReference = flag.String("reference", "best", "thorough reference `strategy` for the tradeoff comparison")
	flagTop       = flag.Int("top", 15, "report the top `n` configurations")
	flagCSV       = flag.Bool("csv", false, "print the report in CSV form")
	flagHTML      = flag.Bool("html", false, "print the report as an HTML page")
	flagPNG       = flag.String("png", "", "`directory` to write comparison charts into")
)

func main() {
	log.SetPrefix("sweepstat: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
	}

	dir, err := sweepstat.ParseDirection(*flagDir)
	if err != nil {
		log.Print(err)
		flag.Usage()
	}

	path := defaultPath
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}

	t, err := sweepfmt.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// A missing results file aborts the analysis, but it is
		// not a failure of the analyzer itself.
		fmt.Fprintf(os.Stderr, "sweepstat: results file not found at %s\n", path)
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	opts := &sweepstat.Options{
		Dir:       dir,
		Baseline:  *flagBaseline,
		Reference: *flagReference,
		TopN:      *flagTop,
	}
	report := sweepstat.Analyze(path, t, opts)

	switch {
	case *flagHTML:
		var buf bytes.Buffer
		buf.WriteString(htmlHeader)
		sweepstat.FormatHTML(&buf, report)
		buf.WriteString(htmlFooter)
		os.Stdout.Write(buf.Bytes())
	case *flagCSV:
		if err := sweepstat.FormatCSV(os.Stdout, report); err != nil {
			log.Fatal(err)
		}
	default:
		if err := sweepstat.FormatText(os.Stdout, report); err != nil {
			log.Fatal(err)
		}
	}

	if *flagPNG != "" {
		if err := sweepchart.Chart(t, dir, *flagPNG); err != nil {
			log.Fatal(err)
		}
	}
}

var htmlHeader = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Sweep Result Comparison</title>
<style>
.sweepstat { border-collapse: collapse; }
.sweepstat th:nth-child(1) { text-align: left; }
.sweepstat tbody td:nth-child(1n+2) { text-align: right; padding: 0em 1em; }
.sweepstat tr th { border-top: 1px solid #666; border-bottom: 1px solid #ccc; }
</style>
</head>
<body>
`
var htmlFooter = `</body>
</html>
`
