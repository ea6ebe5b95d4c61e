package queries

// GetGraphStatsQuery requests aggregate statistics for the current graph
type GetGraphStatsQuery struct{}

// Validate validates the query
func (q GetGraphStatsQuery) Validate() error {
	return nil
}
