package unit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"recobench/pkg/core"
)

// ArtifactName is the single-slot execution artifact inside the workspace.
// Every run overwrites it; artifacts are not retained per cell.
const ArtifactName = "run_output.log"

// resultName is the JSON side channel a command writes its named scalar
// results to.
const resultName = "results.json"

// Environment variables forming the parameter contract with external
// training/evaluation commands.
const (
	EnvTopK       = "RECO_TOP_K"
	EnvDataSize   = "RECO_DATA_SIZE"
	EnvResultPath = "RECO_RESULT_PATH"
	EnvWorkspace  = "RECO_WORKSPACE"
)

// ExecUnit runs an external training/evaluation command, typically a
// script driving one recommender implementation. Parameters are passed
// through the environment; the command writes a JSON object of named
// scalars to RECO_RESULT_PATH, which is read back on completion. Combined
// stdout and stderr are captured into the workspace artifact file.
type ExecUnit struct {
	Algorithm string
	Command   string
	Args      []string
	Env       []string
}

func (u ExecUnit) Name() string {
	return u.Algorithm
}

func (u ExecUnit) Run(ctx context.Context, params core.RunParams, workspaceDir string) (core.RawResult, error) {
	resultPath := filepath.Join(workspaceDir, resultName)
	artifactPath := filepath.Join(workspaceDir, ArtifactName)

	// Stale results from the previous cell must not be mistaken for this
	// run's output.
	if err := os.Remove(resultPath); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	artifact, err := os.Create(artifactPath)
	if err != nil {
		return nil, err
	}
	defer artifact.Close()

	cmd := exec.CommandContext(ctx, u.Command, u.Args...)
	cmd.Dir = workspaceDir
	cmd.Stdout = artifact
	cmd.Stderr = artifact
	cmd.Env = append(os.Environ(), u.Env...)
	cmd.Env = append(cmd.Env,
		fmt.Sprintf("%s=%d", EnvTopK, params.TopK),
		fmt.Sprintf("%s=%s", EnvDataSize, params.Size),
		fmt.Sprintf("%s=%s", EnvResultPath, resultPath),
		fmt.Sprintf("%s=%s", EnvWorkspace, workspaceDir),
	)

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("unit %s: %w", u.Algorithm, err)
	}

	return readResults(resultPath)
}

func readResults(path string) (core.RawResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unit results: %w", err)
	}
	var raw core.RawResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unit results: %w", err)
	}
	return raw, nil
}
