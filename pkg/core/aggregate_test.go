package core_test

import (
	"testing"

	"recobench/pkg/core"

	"github.com/stretchr/testify/require"
)

func TestAggregatorPreservesOrder(t *testing.T) {
	var agg core.Aggregator
	require.Equal(t, 0, agg.Len())

	agg.Append(core.MetricRow{Data: core.Size100K, Algo: "sar", K: 10})
	agg.Append(core.MetricRow{Data: core.Size100K, Algo: "svd", K: 10})
	agg.Append(core.MetricRow{Data: core.Size1M, Algo: "sar", K: 10})
	require.Equal(t, 3, agg.Len())

	table := agg.Finalize()
	require.Len(t, table, 3)
	require.Equal(t, "sar", table[0].Algo)
	require.Equal(t, "svd", table[1].Algo)
	require.Equal(t, core.Size1M, table[2].Data)
}
