package reporter

import (
	"strconv"

	"recobench/pkg/core"
)

// Reporter writes a benchmark run report.
type Reporter interface {
	Report(report core.RunReport) error
}

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// NotApplicable marks a metric the algorithm does not produce, as opposed
// to one that failed to compute. Non-applicable cells render this value,
// never the numeral zero.
const NotApplicable = "N/A"

// Header is the fixed column order of the comparison table.
var Header = []string{
	"Data", "Algo", "K",
	"MAP", "nDCG@k", "Precision@k", "Recall@k",
	"RMSE", "MAE", "R2", "Explained Variance",
	"Train time (s)", "Test time (s)",
}

func formatMetric(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}

func formatOptional(value *float64) string {
	if value == nil {
		return NotApplicable
	}
	return formatMetric(*value)
}

func rowStrings(row core.MetricRow) []string {
	return []string{
		string(row.Data),
		row.Algo,
		strconv.Itoa(row.K),
		formatMetric(row.MAP),
		formatMetric(row.NDCG),
		formatMetric(row.Precision),
		formatMetric(row.Recall),
		formatOptional(row.RMSE),
		formatOptional(row.MAE),
		formatOptional(row.RSquared),
		formatOptional(row.ExplainedVariance),
		formatMetric(row.TrainTime),
		formatMetric(row.TestTime),
	}
}
