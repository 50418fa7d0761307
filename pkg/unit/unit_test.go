package unit_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"recobench/pkg/core"
	"recobench/pkg/unit"

	"github.com/stretchr/testify/require"
)

func TestMockUnitRespectsCapability(t *testing.T) {
	dir := t.TempDir()
	params := core.RunParams{TopK: 10, Size: core.Size100K}

	raw, err := unit.MockUnit{Algorithm: "sar"}.Run(context.Background(), params, dir)
	require.NoError(t, err)
	for _, name := range []string{"map", "ndcg", "precision", "recall", "train_time", "test_time"} {
		_, err := raw.Lookup(name)
		require.NoError(t, err, "missing %s", name)
	}
	_, err = raw.Lookup("rmse")
	require.Error(t, err)

	raw, err = unit.MockUnit{Algorithm: "svd"}.Run(context.Background(), params, dir)
	require.NoError(t, err)
	for _, name := range []string{"rmse", "mae", "rsquared", "exp_var"} {
		_, err := raw.Lookup(name)
		require.NoError(t, err, "missing %s", name)
	}
}

func TestMockUnitWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	_, err := unit.MockUnit{Algorithm: "sar"}.Run(context.Background(), core.RunParams{TopK: 10, Size: core.Size1M}, dir)
	require.NoError(t, err)

	artifact := filepath.Join(dir, unit.ArtifactName)
	data, err := os.ReadFile(artifact)
	require.NoError(t, err)
	require.Contains(t, string(data), "size=1m")
}

func TestMockUnitDeterministic(t *testing.T) {
	dir := t.TempDir()
	params := core.RunParams{TopK: 10, Size: core.Size100K}

	first, err := unit.MockUnit{Algorithm: "als"}.Run(context.Background(), params, dir)
	require.NoError(t, err)
	second, err := unit.MockUnit{Algorithm: "als"}.Run(context.Background(), params, dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestExecUnitRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()

	u := unit.ExecUnit{
		Algorithm: "svd",
		Command:   "/bin/sh",
		Args: []string{"-c", `echo "training $RECO_DATA_SIZE at k=$RECO_TOP_K"
printf '{"map":0.1,"ndcg":0.2,"precision":0.3,"recall":0.4,"rmse":0.9,"mae":0.7,"rsquared":0.3,"exp_var":0.3,"train_time":1.5,"test_time":0.5}' > "$RECO_RESULT_PATH"`},
	}

	raw, err := u.Run(context.Background(), core.RunParams{TopK: 10, Size: core.Size100K}, dir)
	require.NoError(t, err)

	value, err := raw.Lookup("rmse")
	require.NoError(t, err)
	require.Equal(t, 0.9, value)

	artifact, err := os.ReadFile(filepath.Join(dir, unit.ArtifactName))
	require.NoError(t, err)
	require.Contains(t, string(artifact), "training 100k at k=10")
}

func TestExecUnitCommandFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()

	u := unit.ExecUnit{
		Algorithm: "sar",
		Command:   "/bin/sh",
		Args:      []string{"-c", "exit 3"},
	}

	_, err := u.Run(context.Background(), core.RunParams{TopK: 10, Size: core.Size100K}, dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unit sar")
}

func TestExecUnitMissingResults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()

	u := unit.ExecUnit{
		Algorithm: "sar",
		Command:   "/bin/sh",
		Args:      []string{"-c", "true"},
	}

	_, err := u.Run(context.Background(), core.RunParams{TopK: 10, Size: core.Size100K}, dir)
	require.Error(t, err)
}

func TestBuildRegistry(t *testing.T) {
	units, err := unit.Build("mock", []string{"sar", "svd"}, nil)
	require.NoError(t, err)
	require.Len(t, units, 2)

	_, err = unit.Build("exec", []string{"sar"}, nil)
	require.Error(t, err)

	units, err = unit.Build("exec", []string{"sar"}, map[string]unit.Config{
		"sar": {Command: "python", Args: []string{"run_sar.py"}},
	})
	require.NoError(t, err)
	require.Equal(t, "sar", units["sar"].Name())

	_, err = unit.Build("grid", []string{"sar"}, nil)
	require.Error(t, err)
}
