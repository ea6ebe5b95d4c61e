package queries

// GetAnalysisQuery requests metadata about the analysis currently being served
type GetAnalysisQuery struct{}

// Validate validates the query
func (q GetAnalysisQuery) Validate() error {
	return nil
}

// GetAnalysisResult describes the current analysis snapshot
type GetAnalysisResult struct {
	ID                string `json:"id"`
	AnalyzedAt        string `json:"analyzedAt"`
	RecordCount       int    `json:"recordCount"`
	TotalFeatures     int    `json:"totalFeatures"`
	TotalDependencies int    `json:"totalDependencies"`
}
