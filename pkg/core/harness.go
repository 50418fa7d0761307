package core

import (
	"context"
	"errors"
	"time"

	"recobench/pkg/workspace"

	"go.uber.org/zap"
)

// Harness drives the experiment matrix: one strictly sequential pass over
// {dataset size} x {algorithm}. Each cell is trained, evaluated, and
// normalized to completion before the next begins; all cells share one
// workspace whose contents are overwritten per run.
type Harness struct {
	Sizes      []DatasetSize
	Algorithms []string
	TopK       int
	Units      map[string]ExperimentUnit
	Progress   func(completed, total int)
	Logger     *zap.Logger
}

// Run executes the full matrix and returns the comparison table. A single
// failing cell aborts the batch and no partial table is returned. The
// workspace is released on every exit path; a release failure on an
// otherwise successful run is itself fatal.
func (h *Harness) Run(ctx context.Context) (report RunReport, err error) {
	if len(h.Sizes) == 0 || len(h.Algorithms) == 0 {
		return RunReport{}, errors.New("harness: at least one dataset size and one algorithm are required")
	}
	logger := h.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	entries := Matrix(h.Sizes, h.Algorithms, h.TopK)

	ws, err := workspace.Acquire("")
	if err != nil {
		return RunReport{}, err
	}
	defer func() {
		if cerr := ws.Release(); cerr != nil && err == nil {
			report = RunReport{}
			err = cerr
		}
	}()

	started := time.Now()
	var agg Aggregator
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return RunReport{}, ctx.Err()
		default:
		}

		row, rerr := h.runCell(ctx, entry, ws.Path(), logger)
		if rerr != nil {
			return RunReport{}, rerr
		}
		agg.Append(row)
		if h.Progress != nil {
			h.Progress(agg.Len(), len(entries))
		}
	}

	return RunReport{
		Sizes:      h.Sizes,
		Algorithms: h.Algorithms,
		TopK:       h.TopK,
		Table:      agg.Finalize(),
		StartedAt:  started,
		FinishedAt: time.Now(),
	}, nil
}

func (h *Harness) runCell(ctx context.Context, entry MatrixEntry, dir string, logger *zap.Logger) (MetricRow, error) {
	// Fail fast on unknown algorithms before any training starts.
	if _, err := CapabilityFor(entry.Algorithm); err != nil {
		return MetricRow{}, err
	}
	u, ok := h.Units[entry.Algorithm]
	if !ok {
		return MetricRow{}, &ConfigurationError{Subject: entry.Algorithm, Reason: "no experiment unit registered"}
	}

	logger.Info("running experiment",
		zap.String("algo", entry.Algorithm),
		zap.String("size", string(entry.Size)),
		zap.Int("top_k", entry.TopK),
	)

	cellStart := time.Now()
	raw, err := u.Run(ctx, RunParams{TopK: entry.TopK, Size: entry.Size}, dir)
	if err != nil {
		return MetricRow{}, &ExecutionError{Entry: entry, Err: err}
	}

	row, err := Normalize(entry, raw)
	if err != nil {
		return MetricRow{}, err
	}

	logger.Info("experiment finished",
		zap.String("algo", entry.Algorithm),
		zap.String("size", string(entry.Size)),
		zap.Duration("elapsed", time.Since(cellStart)),
	)
	return row, nil
}
