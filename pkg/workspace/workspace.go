// Package workspace manages the scratch directory shared by every cell of
// a benchmark run.
package workspace

import (
	"errors"
	"io/fs"
	"os"
)

// Workspace is a uniquely named scratch directory. One workspace is reused
// across all matrix cells, with each run overwriting the previous cell's
// artifacts, and removed when released.
type Workspace struct {
	dir string
}

// Acquire creates a fresh scratch directory under parent, or under the
// system temp directory when parent is empty.
func Acquire(parent string) (*Workspace, error) {
	dir, err := os.MkdirTemp(parent, "recobench-*")
	if err != nil {
		return nil, err
	}
	return &Workspace{dir: dir}, nil
}

// Path returns the scratch directory location.
func (w *Workspace) Path() string {
	return w.dir
}

// Release removes the scratch directory. A workspace that is already gone
// counts as released; any other removal failure is returned as fatal since
// it indicates an unexpected filesystem state.
func (w *Workspace) Release() error {
	if _, err := os.Stat(w.dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(w.dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
