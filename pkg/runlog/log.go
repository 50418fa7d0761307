// Package runlog persists benchmark runs as timestamped JSON logs.
package runlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"recobench/pkg/core"
)

const Version = 1

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// RunLog is the persisted record of one benchmark run.
type RunLog struct {
	Version    int                  `json:"version"`
	Status     string               `json:"status"`
	Sizes      []core.DatasetSize   `json:"sizes"`
	Algorithms []string             `json:"algorithms"`
	TopK       int                  `json:"top_k"`
	Rows       core.ComparisonTable `json:"rows,omitempty"`
	Metadata   map[string]string    `json:"metadata,omitempty"`
	StartedAt  string               `json:"started_at"`
	FinishedAt string               `json:"finished_at"`
	Error      string               `json:"error,omitempty"`
}

// FromReport builds the log record for a successful run.
func FromReport(report core.RunReport) RunLog {
	return RunLog{
		Version:    Version,
		Status:     StatusSuccess,
		Sizes:      report.Sizes,
		Algorithms: report.Algorithms,
		TopK:       report.TopK,
		Rows:       report.Table,
		Metadata:   report.Metadata,
		StartedAt:  report.StartedAt.Format(time.RFC3339),
		FinishedAt: report.FinishedAt.Format(time.RFC3339),
	}
}

// WriteJSON writes the log as a timestamped file under dir, creating the
// directory when needed. It returns the written path.
func WriteJSON(dir string, log RunLog) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, buildLogFileName(log))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return "", err
	}
	return path, nil
}

func buildLogFileName(log RunLog) string {
	timestamp := time.Now().Format("2006-01-02T15-04-05")
	return fmt.Sprintf("%s_recobench_%dx%d.json", timestamp, len(log.Sizes), len(log.Algorithms))
}
