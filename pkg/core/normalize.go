package core

// Normalize maps one raw result set onto the canonical schema. Ranking and
// timing fields are always read. Rating fields are read only when the
// algorithm's capability flag says it predicts ratings; otherwise they stay
// at the not-applicable sentinel and no lookup is attempted, so stray
// rating-like keys in the raw result are ignored.
func Normalize(entry MatrixEntry, raw RawResult) (MetricRow, error) {
	capability, err := CapabilityFor(entry.Algorithm)
	if err != nil {
		return MetricRow{}, err
	}

	row := MetricRow{Data: entry.Size, Algo: entry.Algorithm, K: entry.TopK}

	required := []struct {
		name string
		dst  *float64
	}{
		{"map", &row.MAP},
		{"ndcg", &row.NDCG},
		{"precision", &row.Precision},
		{"recall", &row.Recall},
		{"train_time", &row.TrainTime},
		{"test_time", &row.TestTime},
	}
	for _, field := range required {
		value, err := raw.Lookup(field.name)
		if err != nil {
			return MetricRow{}, err
		}
		*field.dst = value
	}

	if !capability.SupportsRatingMetrics {
		return row, nil
	}

	rating := []struct {
		name string
		dst  **float64
	}{
		{"rmse", &row.RMSE},
		{"mae", &row.MAE},
		{"rsquared", &row.RSquared},
		{"exp_var", &row.ExplainedVariance},
	}
	for _, field := range rating {
		value, err := raw.Lookup(field.name)
		if err != nil {
			return MetricRow{}, err
		}
		v := value
		*field.dst = &v
	}
	return row, nil
}
