package core_test

import (
	"math"
	"testing"

	"recobench/pkg/core"

	"github.com/stretchr/testify/require"
)

func rankingResults() core.RawResult {
	return core.RawResult{
		"map":        0.11,
		"ndcg":       0.38,
		"precision":  0.33,
		"recall":     0.18,
		"train_time": 12.5,
		"test_time":  3.2,
	}
}

func ratingResults() core.RawResult {
	raw := rankingResults()
	raw["rmse"] = 0.95
	raw["mae"] = 0.75
	raw["rsquared"] = 0.28
	raw["exp_var"] = 0.29
	return raw
}

func entryFor(algo string) core.MatrixEntry {
	return core.MatrixEntry{Size: core.Size100K, Algorithm: algo, TopK: 10}
}

func TestNormalizeRankingOnly(t *testing.T) {
	// Stray rating keys must be ignored for a non-rating algorithm.
	raw := rankingResults()
	raw["rmse"] = 1.5

	row, err := core.Normalize(entryFor("sar"), raw)
	require.NoError(t, err)

	require.Equal(t, core.Size100K, row.Data)
	require.Equal(t, "sar", row.Algo)
	require.Equal(t, 10, row.K)
	require.Equal(t, 0.11, row.MAP)
	require.Equal(t, 0.38, row.NDCG)
	require.Equal(t, 0.33, row.Precision)
	require.Equal(t, 0.18, row.Recall)
	require.Equal(t, 12.5, row.TrainTime)
	require.Equal(t, 3.2, row.TestTime)

	require.Nil(t, row.RMSE)
	require.Nil(t, row.MAE)
	require.Nil(t, row.RSquared)
	require.Nil(t, row.ExplainedVariance)
}

func TestNormalizeRatingCapable(t *testing.T) {
	row, err := core.Normalize(entryFor("svd"), ratingResults())
	require.NoError(t, err)

	require.NotNil(t, row.RMSE)
	require.NotNil(t, row.MAE)
	require.NotNil(t, row.RSquared)
	require.NotNil(t, row.ExplainedVariance)
	require.Equal(t, 0.95, *row.RMSE)
	require.Equal(t, 0.75, *row.MAE)
	require.Equal(t, 0.28, *row.RSquared)
	require.Equal(t, 0.29, *row.ExplainedVariance)
}

func TestNormalizeMissingRatingMetric(t *testing.T) {
	raw := ratingResults()
	delete(raw, "mae")

	_, err := core.Normalize(entryFor("svd"), raw)
	var schemaErr *core.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "mae", schemaErr.Name)
}

func TestNormalizeMissingRankingMetric(t *testing.T) {
	raw := rankingResults()
	delete(raw, "ndcg")

	_, err := core.Normalize(entryFor("sar"), raw)
	var schemaErr *core.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "ndcg", schemaErr.Name)
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	raw := core.RawResult{
		"MAP":        0.1,
		"nDCG":       0.2,
		"Precision":  0.3,
		"RECALL":     0.4,
		"Train_Time": 1.0,
		"Test_Time":  2.0,
	}

	row, err := core.Normalize(entryFor("bpr"), raw)
	require.NoError(t, err)
	require.Equal(t, 0.1, row.MAP)
	require.Equal(t, 0.4, row.Recall)
}

func TestNormalizeDuplicateKey(t *testing.T) {
	raw := rankingResults()
	raw["MAP"] = 0.99

	_, err := core.Normalize(entryFor("sar"), raw)
	var schemaErr *core.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "map", schemaErr.Name)
}

func TestNormalizeNonFinite(t *testing.T) {
	raw := rankingResults()
	raw["recall"] = math.NaN()

	_, err := core.Normalize(entryFor("sar"), raw)
	var schemaErr *core.SchemaError
	require.ErrorAs(t, err, &schemaErr)
}

func TestNormalizeUnknownAlgorithm(t *testing.T) {
	_, err := core.Normalize(entryFor("word2vec"), rankingResults())
	var confErr *core.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	require.Equal(t, "word2vec", confErr.Subject)
}
