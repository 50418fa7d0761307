package core

import (
	"math"
	"strings"
	"time"
)

// DatasetSize selects which MovieLens split an experiment unit trains on.
type DatasetSize string

const (
	Size100K DatasetSize = "100k"
	Size1M   DatasetSize = "1m"
	Size10M  DatasetSize = "10m"
	Size20M  DatasetSize = "20m"
)

// KnownSizes returns the supported dataset sizes in ascending order.
func KnownSizes() []DatasetSize {
	return []DatasetSize{Size100K, Size1M, Size10M, Size20M}
}

// ParseSize resolves a dataset size string.
func ParseSize(value string) (DatasetSize, error) {
	size := DatasetSize(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range KnownSizes() {
		if size == known {
			return size, nil
		}
	}
	return "", &ConfigurationError{Subject: value, Reason: "unknown dataset size"}
}

// RunParams are the inputs handed to an experiment unit for one run.
type RunParams struct {
	TopK int
	Size DatasetSize
}

// MatrixEntry is one cell of the experiment matrix.
type MatrixEntry struct {
	Size      DatasetSize `json:"size" yaml:"size"`
	Algorithm string      `json:"algorithm" yaml:"algorithm"`
	TopK      int         `json:"top_k" yaml:"top_k"`
}

// Matrix expands the cross product of sizes and algorithms in a fixed
// nested order: dataset size outermost, algorithm innermost.
func Matrix(sizes []DatasetSize, algorithms []string, topK int) []MatrixEntry {
	entries := make([]MatrixEntry, 0, len(sizes)*len(algorithms))
	for _, size := range sizes {
		for _, algo := range algorithms {
			entries = append(entries, MatrixEntry{Size: size, Algorithm: algo, TopK: topK})
		}
	}
	return entries
}

// RawResult is the named scalar output exposed by one experiment unit run.
// Names are matched case-insensitively at lookup time.
type RawResult map[string]float64

// Lookup resolves a single value for name. Exactly one case-folded match
// must exist and it must be finite; anything else violates the unit's
// named-output contract.
func (r RawResult) Lookup(name string) (float64, error) {
	var (
		value float64
		found int
	)
	for key, v := range r {
		if strings.EqualFold(key, name) {
			value = v
			found++
		}
	}
	switch {
	case found == 0:
		return 0, &SchemaError{Name: name, Reason: "missing result"}
	case found > 1:
		return 0, &SchemaError{Name: name, Reason: "multiple results for one name"}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &SchemaError{Name: name, Reason: "non-finite value"}
	}
	return value, nil
}

// MetricRow is the canonical, algorithm-independent result schema.
// Rating fields are nil when the algorithm does not predict explicit
// rating scores; nil means "not applicable", never "failed to compute".
type MetricRow struct {
	Data              DatasetSize `json:"data" yaml:"data"`
	Algo              string      `json:"algo" yaml:"algo"`
	K                 int         `json:"k" yaml:"k"`
	MAP               float64     `json:"map" yaml:"map"`
	NDCG              float64     `json:"ndcg" yaml:"ndcg"`
	Precision         float64     `json:"precision" yaml:"precision"`
	Recall            float64     `json:"recall" yaml:"recall"`
	RMSE              *float64    `json:"rmse" yaml:"rmse"`
	MAE               *float64    `json:"mae" yaml:"mae"`
	RSquared          *float64    `json:"rsquared" yaml:"rsquared"`
	ExplainedVariance *float64    `json:"exp_var" yaml:"exp_var"`
	TrainTime         float64     `json:"train_time" yaml:"train_time"`
	TestTime          float64     `json:"test_time" yaml:"test_time"`
}

// ComparisonTable is the ordered sequence of canonical rows, one per
// matrix cell, in matrix-iteration order.
type ComparisonTable []MetricRow

// RunReport is a completed benchmark run plus basic telemetry.
type RunReport struct {
	Sizes      []DatasetSize     `json:"sizes" yaml:"sizes"`
	Algorithms []string          `json:"algorithms" yaml:"algorithms"`
	TopK       int               `json:"top_k" yaml:"top_k"`
	Table      ComparisonTable   `json:"table" yaml:"table"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	StartedAt  time.Time         `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time         `json:"finished_at" yaml:"finished_at"`
}
