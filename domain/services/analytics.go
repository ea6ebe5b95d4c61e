package services

import (
	"math"

	"evograph/domain/core/aggregates"
	"evograph/domain/core/valueobjects"
)

// GraphStats aggregates structural measures over a dependency graph
type GraphStats struct {
	TotalFeatures     int
	TotalDependencies int
	AvgDependencies   float64
	FoundationFeature string
	MaxDependents     int
	Categories        []CategoryCount
}

// CategoryCount is one entry of the category distribution
type CategoryCount struct {
	Category valueobjects.Category
	Count    int
}

// GraphAnalyzer computes statistics over dependency graphs
type GraphAnalyzer struct{}

// NewGraphAnalyzer creates an analyzer
func NewGraphAnalyzer() *GraphAnalyzer {
	return &GraphAnalyzer{}
}

// Stats computes the aggregate measures. An empty graph produces zero
// counts, an empty foundation id and an empty (non-nil) distribution;
// there is no division by zero and no error path.
//
// The foundation feature is the node with the highest in-degree. Targets
// are ranked in first-seen edge order and compared strictly, so on ties
// the earliest-seen target keeps the title.
func (a *GraphAnalyzer) Stats(graph *aggregates.DependencyGraph) GraphStats {
	nodes := graph.Nodes()
	deps := graph.Dependencies()

	stats := GraphStats{
		TotalFeatures:     len(nodes),
		TotalDependencies: len(deps),
		Categories:        []CategoryCount{},
	}
	if len(nodes) == 0 {
		return stats
	}

	stats.AvgDependencies = round1(float64(len(deps)) / float64(len(nodes)))

	inDegree := make(map[string]int)
	targetOrder := make([]string, 0, len(deps))
	for _, dep := range deps {
		id := dep.To.String()
		if _, seen := inDegree[id]; !seen {
			targetOrder = append(targetOrder, id)
		}
		inDegree[id]++
	}
	for _, id := range targetOrder {
		if inDegree[id] > stats.MaxDependents {
			stats.MaxDependents = inDegree[id]
			stats.FoundationFeature = id
		}
	}

	catCounts := make(map[string]int)
	catOrder := make([]valueobjects.Category, 0, len(valueobjects.AllCategories()))
	for _, node := range nodes {
		key := node.Category().String()
		if _, seen := catCounts[key]; !seen {
			catOrder = append(catOrder, node.Category())
		}
		catCounts[key]++
	}
	for _, category := range catOrder {
		stats.Categories = append(stats.Categories, CategoryCount{
			Category: category,
			Count:    catCounts[category.String()],
		})
	}

	return stats
}

// round1 rounds to one decimal place, half away from zero
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
