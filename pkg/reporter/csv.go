package reporter

import (
	"encoding/csv"
	"io"

	"recobench/pkg/core"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(report core.RunReport) error {
	writer := csv.NewWriter(r.Writer)
	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, row := range report.Table {
		if err := writer.Write(rowStrings(row)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
