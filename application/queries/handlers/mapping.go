package handlers

import (
	"evograph/application/queries"
	"evograph/domain/core/entities"
	domainservices "evograph/domain/services"
	"evograph/pkg/palette"
)

// nodeToDTO converts a feature node into its renderer-ready form
func nodeToDTO(node *entities.FeatureNode) queries.GraphNode {
	category := node.Category().String()
	return queries.GraphNode{
		ID:          node.ID().String(),
		Name:        node.Name(),
		Day:         node.Day(),
		Date:        node.Date(),
		Category:    category,
		Color:       palette.CategoryColor(category),
		Description: node.Description(),
	}
}

// depToDTO converts an inferred dependency into its renderer-ready form
func depToDTO(dep entities.FeatureDependency) queries.GraphEdge {
	depType := string(dep.Type)
	return queries.GraphEdge{
		From:     dep.From.String(),
		To:       dep.To.String(),
		Type:     depType,
		Strength: dep.Strength,
		Color:    palette.DependencyColor(depType),
	}
}

// statsToDTO converts graph statistics into their response form
func statsToDTO(stats domainservices.GraphStats) queries.GraphStats {
	categories := make([]queries.CategoryCount, 0, len(stats.Categories))
	for _, c := range stats.Categories {
		categories = append(categories, queries.CategoryCount{
			Category: c.Category.String(),
			Count:    c.Count,
		})
	}
	return queries.GraphStats{
		TotalFeatures:     stats.TotalFeatures,
		TotalDependencies: stats.TotalDependencies,
		AvgDependencies:   stats.AvgDependencies,
		FoundationFeature: stats.FoundationFeature,
		MaxDependents:     stats.MaxDependents,
		Categories:        categories,
	}
}

// emptyStats returns the statistics served before any analysis has run
func emptyStats() queries.GraphStats {
	return queries.GraphStats{
		FoundationFeature: "",
		Categories:        []queries.CategoryCount{},
	}
}
