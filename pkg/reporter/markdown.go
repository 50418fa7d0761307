package reporter

import (
	"fmt"
	"io"
	"strings"

	"recobench/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(report core.RunReport) error {
	if _, err := fmt.Fprintf(r.Writer, "# Recobench Comparison\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(
		r.Writer,
		"- Sizes: %s\n- Algorithms: %s\n- Top-K: %d\n\n",
		joinSizes(report.Sizes),
		strings.Join(report.Algorithms, ", "),
		report.TopK,
	); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.Writer, "| %s |\n", strings.Join(Header, " | ")); err != nil {
		return err
	}
	separator := make([]string, len(Header))
	for i := range separator {
		separator[i] = "---"
	}
	if _, err := fmt.Fprintf(r.Writer, "| %s |\n", strings.Join(separator, " | ")); err != nil {
		return err
	}
	for _, row := range report.Table {
		if _, err := fmt.Fprintf(r.Writer, "| %s |\n", strings.Join(rowStrings(row), " | ")); err != nil {
			return err
		}
	}
	return nil
}

func joinSizes(sizes []core.DatasetSize) string {
	names := make([]string, 0, len(sizes))
	for _, size := range sizes {
		names = append(names, string(size))
	}
	return strings.Join(names, ", ")
}
