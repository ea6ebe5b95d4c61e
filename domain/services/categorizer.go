package services

import (
	"strings"

	"evograph/domain/core/valueobjects"
)

// categoryKeywords binds a category to the keywords that select it.
// Order is part of the contract: the first group with any keyword present
// wins, so a feature mentioning both "graph" and "timeline" classifies as
// Visualization, not Core Features.
type categoryKeywords struct {
	category valueobjects.Category
	keywords []string
}

var categoryTable = []categoryKeywords{
	{valueobjects.CategoryVisualization, []string{"visual", "graph", "chart"}},
	{valueobjects.CategoryUIUX, []string{"ui", "theme", "toggle"}},
	{valueobjects.CategorySearchFilter, []string{"search", "filter"}},
	{valueobjects.CategoryDataExport, []string{"export", "data"}},
	{valueobjects.CategoryAnalytics, []string{"statistic", "metric", "dashboard"}},
	{valueobjects.CategoryGamification, []string{"achievement", "milestone"}},
	{valueobjects.CategoryAI, []string{"prediction", "forecast"}},
	{valueobjects.CategoryCoreFeatures, []string{"timeline", "history"}},
}

// Categorizer assigns a semantic category to a feature change based on
// keyword evidence in its title and description.
type Categorizer struct{}

// NewCategorizer creates a categorizer
func NewCategorizer() *Categorizer {
	return &Categorizer{}
}

// Categorize classifies a feature by its title and description.
// Matching is case-insensitive substring search over title+description;
// anything without keyword evidence falls back to Other. Deterministic
// and total.
func (c *Categorizer) Categorize(title, description string) valueobjects.Category {
	text := strings.ToLower(title + " " + description)

	for _, group := range categoryTable {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.category
			}
		}
	}

	return valueobjects.CategoryOther
}
