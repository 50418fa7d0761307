package core

import "context"

// ExperimentUnit trains and evaluates one algorithm for a given dataset
// size. It writes its execution artifacts into the supplied workspace
// directory and exposes its metrics as named scalars on completion.
type ExperimentUnit interface {
	Name() string
	Run(ctx context.Context, params RunParams, workspaceDir string) (RawResult, error)
}
