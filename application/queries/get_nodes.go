package queries

import "errors"

// GetNodesQuery requests one page of feature nodes in chronological
// order, optionally filtered by category.
type GetNodesQuery struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Category string `json:"category,omitempty"`
}

// Validate validates the query
func (q GetNodesQuery) Validate() error {
	if q.Page < 1 {
		return errors.New("page must be at least 1")
	}
	if q.PageSize < 1 {
		return errors.New("page size must be at least 1")
	}
	return nil
}

// GetNodesResult contains one page of nodes
type GetNodesResult struct {
	Nodes    []GraphNode `json:"nodes"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Total    int         `json:"total"`
}
