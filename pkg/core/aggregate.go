package core

// Aggregator accumulates canonical rows in matrix-iteration order.
// Append-only: no deduplication, no re-sorting.
type Aggregator struct {
	rows ComparisonTable
}

// Append adds one row to the end of the table.
func (a *Aggregator) Append(row MetricRow) {
	a.rows = append(a.rows, row)
}

// Len reports how many rows have been accumulated so far.
func (a *Aggregator) Len() int {
	return len(a.rows)
}

// Finalize returns the accumulated table.
func (a *Aggregator) Finalize() ComparisonTable {
	return a.rows
}
