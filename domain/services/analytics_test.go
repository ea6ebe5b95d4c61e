package services

import (
	"testing"

	"evograph/domain/core/aggregates"
	"evograph/domain/core/entities"
	"evograph/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddNode(t *testing.T, graph *aggregates.DependencyGraph, day, feature string, category valueobjects.Category) {
	t.Helper()
	rec := entities.ChangeRecord{Day: day, Feature: feature}
	require.NoError(t, graph.AddNode(entities.NewFeatureNode(rec, category)))
}

func mustAddDep(t *testing.T, graph *aggregates.DependencyGraph, from, to string, kind entities.DependencyType) {
	t.Helper()
	require.NoError(t, graph.AddDependency(entities.FeatureDependency{
		From:     valueobjects.NewNodeID(from),
		To:       valueobjects.NewNodeID(to),
		Type:     kind,
		Strength: 0.5,
	}))
}

func TestGraphAnalyzer_Stats_EmptyGraph(t *testing.T) {
	analyzer := NewGraphAnalyzer()

	stats := analyzer.Stats(aggregates.NewDependencyGraph())

	assert.Zero(t, stats.TotalFeatures)
	assert.Zero(t, stats.TotalDependencies)
	assert.Zero(t, stats.AvgDependencies)
	assert.Empty(t, stats.FoundationFeature)
	assert.Zero(t, stats.MaxDependents)
	assert.NotNil(t, stats.Categories)
	assert.Empty(t, stats.Categories)
}

func TestGraphAnalyzer_Stats_Counts(t *testing.T) {
	analyzer := NewGraphAnalyzer()
	graph := aggregates.NewDependencyGraph()

	mustAddNode(t, graph, "1", "Timeline", valueobjects.CategoryCoreFeatures)
	mustAddNode(t, graph, "2", "Stats", valueobjects.CategoryAnalytics)
	mustAddNode(t, graph, "3", "Export", valueobjects.CategoryDataExport)
	mustAddDep(t, graph, "2", "1", entities.DependencyBuildsOn)
	mustAddDep(t, graph, "3", "1", entities.DependencyUses)

	stats := analyzer.Stats(graph)

	assert.Equal(t, 3, stats.TotalFeatures)
	assert.Equal(t, 2, stats.TotalDependencies)
	// 2/3 rounds to 0.7
	assert.InDelta(t, 0.7, stats.AvgDependencies, 1e-9)
	assert.Equal(t, "day-1", stats.FoundationFeature)
	assert.Equal(t, 2, stats.MaxDependents)
}

func TestGraphAnalyzer_Stats_FoundationTieBreak(t *testing.T) {
	analyzer := NewGraphAnalyzer()
	graph := aggregates.NewDependencyGraph()

	mustAddNode(t, graph, "1", "Timeline", valueobjects.CategoryCoreFeatures)
	mustAddNode(t, graph, "2", "Display", valueobjects.CategoryUIUX)
	mustAddNode(t, graph, "3", "Stats", valueobjects.CategoryAnalytics)
	mustAddNode(t, graph, "4", "Search", valueobjects.CategorySearchFilter)

	// day-2 reaches in-degree 1 first, day-1 ties later; the earlier seen
	// target keeps the title
	mustAddDep(t, graph, "3", "2", entities.DependencyEnhances)
	mustAddDep(t, graph, "4", "1", entities.DependencyEnhances)

	stats := analyzer.Stats(graph)

	assert.Equal(t, "day-2", stats.FoundationFeature)
	assert.Equal(t, 1, stats.MaxDependents)
}

func TestGraphAnalyzer_Stats_NodesWithoutEdges(t *testing.T) {
	analyzer := NewGraphAnalyzer()
	graph := aggregates.NewDependencyGraph()

	mustAddNode(t, graph, "1", "Timeline", valueobjects.CategoryCoreFeatures)
	mustAddNode(t, graph, "2", "Stats", valueobjects.CategoryAnalytics)

	stats := analyzer.Stats(graph)

	assert.Equal(t, 2, stats.TotalFeatures)
	assert.Zero(t, stats.TotalDependencies)
	assert.Zero(t, stats.AvgDependencies)
	assert.Empty(t, stats.FoundationFeature)
	assert.Zero(t, stats.MaxDependents)
}

func TestGraphAnalyzer_Stats_CategoriesFirstSeenOrder(t *testing.T) {
	analyzer := NewGraphAnalyzer()
	graph := aggregates.NewDependencyGraph()

	mustAddNode(t, graph, "1", "Stats", valueobjects.CategoryAnalytics)
	mustAddNode(t, graph, "2", "Timeline", valueobjects.CategoryCoreFeatures)
	mustAddNode(t, graph, "3", "Metrics", valueobjects.CategoryAnalytics)
	mustAddNode(t, graph, "4", "Cleanup", valueobjects.CategoryOther)

	stats := analyzer.Stats(graph)

	require.Len(t, stats.Categories, 3)
	assert.Equal(t, valueobjects.CategoryAnalytics, stats.Categories[0].Category)
	assert.Equal(t, 2, stats.Categories[0].Count)
	assert.Equal(t, valueobjects.CategoryCoreFeatures, stats.Categories[1].Category)
	assert.Equal(t, 1, stats.Categories[1].Count)
	assert.Equal(t, valueobjects.CategoryOther, stats.Categories[2].Category)
	assert.Equal(t, 1, stats.Categories[2].Count)
}

func TestGraphAnalyzer_Stats_AvgRounding(t *testing.T) {
	analyzer := NewGraphAnalyzer()
	graph := aggregates.NewDependencyGraph()

	// 1 edge over 3 nodes: 0.333... rounds to 0.3
	mustAddNode(t, graph, "1", "Timeline", valueobjects.CategoryCoreFeatures)
	mustAddNode(t, graph, "2", "Stats", valueobjects.CategoryAnalytics)
	mustAddNode(t, graph, "3", "Export", valueobjects.CategoryDataExport)
	mustAddDep(t, graph, "2", "1", entities.DependencyBuildsOn)

	stats := analyzer.Stats(graph)
	assert.InDelta(t, 0.3, stats.AvgDependencies, 1e-9)
}
