package reporter

import (
	"io"

	"recobench/pkg/core"

	"github.com/olekukonko/tablewriter"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(report core.RunReport) error {
	table := tablewriter.NewWriter(r.Writer)
	table.Header(Header)
	for _, row := range report.Table {
		table.Append(rowStrings(row))
	}
	table.Render()
	return nil
}
