package reporter

import (
	"html/template"
	"io"

	"recobench/pkg/core"
)

type HTMLReporter struct {
	Writer io.Writer
	Title  string
}

func (r HTMLReporter) Report(report core.RunReport) error {
	title := r.Title
	if title == "" {
		title = "Recobench Comparison"
	}

	rows := make([][]string, 0, len(report.Table))
	for _, row := range report.Table {
		rows = append(rows, rowStrings(row))
	}

	data := struct {
		Title  string
		Report core.RunReport
		Header []string
		Rows   [][]string
	}{
		Title:  title,
		Report: report,
		Header: Header,
		Rows:   rows,
	}

	tpl := template.Must(template.New("report").Parse(htmlTemplate))
	return tpl.Execute(r.Writer, data)
}

const htmlTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 24px; }
    table { border-collapse: collapse; width: 100%; margin-top: 16px; }
    th, td { border: 1px solid #ddd; padding: 8px; }
    th { background: #f5f5f5; text-align: left; }
    .meta { margin-bottom: 12px; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <div class="meta">
    <div><strong>Top-K:</strong> {{ .Report.TopK }}</div>
    <div><strong>Started:</strong> {{ .Report.StartedAt }}</div>
    <div><strong>Finished:</strong> {{ .Report.FinishedAt }}</div>
  </div>
  <h2>Comparison</h2>
  <table>
    <tr>{{ range .Header }}<th>{{ . }}</th>{{ end }}</tr>
    {{ range .Rows }}
    <tr>{{ range . }}<td>{{ . }}</td>{{ end }}</tr>
    {{ end }}
  </table>
</body>
</html>
`
