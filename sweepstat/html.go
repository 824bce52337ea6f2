// Copyright 2026 The Sweepstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweepstat

import (
	"bytes"
	"html/template"
)

var htmlTemplate = template.Must(template.New("").Funcs(template.FuncMap{
	"fnum": fnum,
	"fval": fval,
}).Parse(`
<p>Loaded {{.NumRuns}} runs from {{.Path}} (direction: {{.Dir}}).</p>
<table class='sweepstat'>
<tbody>
<tr><th>strategy<th>alpha<th>op_set<th>mean_obj<th>std_obj<th>mean_time<th>runs<th>CV%
{{range .Quality.Top .TopN -}}
<tr><td>{{.Strategy}}<td>{{fval .Alpha}}<td>{{.OpSet}}<td>{{fnum .MeanObj}}<td>{{fnum .StdObj}}<td>{{fnum .MeanTime}}<td>{{.NumRuns}}<td>{{fnum .CV}}
{{end -}}
</tbody>
</table>
{{with .Quality.Best}}
<p>Best configuration on average: <b>{{.Config}}</b>,
mean objective {{fnum .MeanObj}}, robustness (CV) {{fnum .CV}}%.</p>
{{end}}
<table class='sweepstat'>
<tbody>
<tr><th>strategy<th>mean_obj<th>mean_time<th>mean_iterations<th>performance_metric
{{range .Efficiency.Strategies -}}
<tr><td>{{.Strategy}}<td>{{fnum .MeanObj}}<td>{{fnum .MeanTime}}<td>{{fnum .MeanIters}}<td>{{fnum .PerfMetric}}
{{end -}}
</tbody>
</table>
<table class='sweepstat'>
<tbody>
<tr><th>op_set<th>mean_obj<th>mean_time
{{range .Efficiency.OpSets -}}
<tr><td>{{.OpSet}}<td>{{fnum .MeanObj}}<td>{{fnum .MeanTime}}
{{end -}}
</tbody>
</table>
{{with .Efficiency.Tradeoff}}
<p>The <b>{{.Baseline}}</b> strategy is <b>{{printf "%.1f" .TimeRatio}} times faster</b>
on average than {{.Reference}}, sacrificing <b>{{fnum .QualityDiff}}%</b> in solution quality.</p>
{{end}}
`))

// FormatHTML appends an HTML formatting of the report to buf.
func FormatHTML(buf *bytes.Buffer, r *Report) {
	err := htmlTemplate.Execute(buf, r)
	if err != nil {
		// Only possible errors here are template not matching
		// the data structure. Don't make the caller check -
		// it's our fault.
		panic(err)
	}
}
