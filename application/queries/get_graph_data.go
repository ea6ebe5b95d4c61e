package queries

// GetGraphDataQuery requests the complete dependency graph in
// renderer-ready form: nodes, edges and aggregate statistics.
type GetGraphDataQuery struct{}

// Validate validates the query
func (q GetGraphDataQuery) Validate() error {
	return nil
}

// GraphNode represents a feature node for rendering
type GraphNode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Day         string `json:"day"`
	Date        string `json:"date,omitempty"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

// GraphEdge represents an inferred dependency for rendering
type GraphEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Type     string  `json:"type"`
	Strength float64 `json:"strength"`
	Color    string  `json:"color"`
}

// CategoryCount is one entry of the category distribution
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// GraphStats summarizes the analyzed graph
type GraphStats struct {
	TotalFeatures     int             `json:"totalFeatures"`
	TotalDependencies int             `json:"totalDependencies"`
	AvgDependencies   float64         `json:"avgDependencies"`
	FoundationFeature string          `json:"foundationFeature"`
	MaxDependents     int             `json:"maxDependents"`
	Categories        []CategoryCount `json:"categories"`
}

// GetGraphDataResult contains the full graph data response
type GetGraphDataResult struct {
	AnalysisID string      `json:"analysisId"`
	Nodes      []GraphNode `json:"nodes"`
	Edges      []GraphEdge `json:"edges"`
	Stats      GraphStats  `json:"stats"`
}
