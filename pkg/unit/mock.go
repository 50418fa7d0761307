package unit

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"recobench/pkg/core"
)

// MockUnit exposes canned metrics without training anything. Results are
// deterministic per (algorithm, size) pair and respect the algorithm's
// rating capability, so the harness behaves exactly as it would with real
// experiment units.
type MockUnit struct {
	Algorithm string
	Results   core.RawResult
}

func (m MockUnit) Name() string {
	if m.Algorithm == "" {
		return "mock"
	}
	return m.Algorithm
}

func (m MockUnit) Run(_ context.Context, params core.RunParams, workspaceDir string) (core.RawResult, error) {
	artifact := filepath.Join(workspaceDir, ArtifactName)
	note := fmt.Sprintf("mock run: algo=%s size=%s top_k=%d\n", m.Name(), params.Size, params.TopK)
	if err := os.WriteFile(artifact, []byte(note), 0o600); err != nil {
		return nil, err
	}

	if m.Results != nil {
		return m.Results, nil
	}
	return cannedResults(m.Algorithm, params), nil
}

func cannedResults(algorithm string, params core.RunParams) core.RawResult {
	base := jitter(algorithm + string(params.Size))
	results := core.RawResult{
		"map":        0.02 + 0.1*base,
		"ndcg":       0.10 + 0.3*base,
		"precision":  0.08 + 0.25*base,
		"recall":     0.05 + 0.2*base,
		"train_time": 1 + 30*base,
		"test_time":  0.5 + 10*base,
	}
	if capability, err := core.CapabilityFor(algorithm); err == nil && capability.SupportsRatingMetrics {
		results["rmse"] = 0.85 + 0.3*base
		results["mae"] = 0.65 + 0.25*base
		results["rsquared"] = 0.2 + 0.2*base
		results["exp_var"] = 0.2 + 0.2*base
	}
	return results
}

// jitter maps a seed string onto [0, 1) so canned metrics differ per cell
// but stay stable across runs.
func jitter(seed string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return float64(h.Sum32()%1000) / 1000
}
