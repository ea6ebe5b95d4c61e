package queries

import (
	"errors"
	"strings"
)

// FindSimilarFeaturesQuery searches the current graph for features
// whose titles and keywords resemble the given title.
type FindSimilarFeaturesQuery struct {
	Title string `json:"title"`
	Limit int    `json:"limit"`
}

// Validate validates the query
func (q FindSimilarFeaturesQuery) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return errors.New("title is required")
	}
	if q.Limit < 0 {
		return errors.New("limit must be non-negative")
	}
	return nil
}

// SimilarFeature is a single fuzzy match
type SimilarFeature struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Similarity float64 `json:"similarity"`
}

// FindSimilarFeaturesResult contains ranked matches for one search
type FindSimilarFeaturesResult struct {
	Query   string           `json:"query"`
	Matches []SimilarFeature `json:"matches"`
}
