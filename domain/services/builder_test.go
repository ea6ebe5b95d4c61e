package services

import (
	"testing"

	"evograph/domain/core/entities"
	"evograph/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder() *GraphBuilder {
	return NewGraphBuilder(NewCategorizer(), NewInferenceEngine())
}

func TestGraphBuilder_Build_EmptyInput(t *testing.T) {
	builder := newTestBuilder()

	assert.True(t, builder.Build(nil).IsEmpty())
	assert.True(t, builder.Build([]entities.ChangeRecord{}).IsEmpty())
}

func TestGraphBuilder_Build_NodesInInputOrder(t *testing.T) {
	builder := newTestBuilder()

	records := []entities.ChangeRecord{
		record("3", "Evolution Timeline", "Timeline tracker"),
		record("7", "Search box", "Search the feature records"),
		record("9", "Statistics Dashboard", "Statistics over timeline history"),
	}

	graph := builder.Build(records)

	nodes := graph.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, "day-3", nodes[0].ID().String())
	assert.Equal(t, "day-7", nodes[1].ID().String())
	assert.Equal(t, "day-9", nodes[2].ID().String())

	// Categories assigned during the build
	assert.Equal(t, valueobjects.CategoryCoreFeatures, nodes[0].Category())
	assert.Equal(t, valueobjects.CategorySearchFilter, nodes[1].Category())
}

func TestGraphBuilder_Build_AttachesInferredEdges(t *testing.T) {
	builder := newTestBuilder()

	records := []entities.ChangeRecord{
		record("1", "Evolution Timeline", "Timeline tracker for evolution"),
		record("2", "Statistics Dashboard", "Dashboard analyzing timeline evolution data"),
	}

	graph := builder.Build(records)

	deps := graph.Dependencies()
	require.Len(t, deps, 1)
	assert.Equal(t, "day-2", deps[0].From.String())
	assert.Equal(t, "day-1", deps[0].To.String())
	assert.Equal(t, 2, graph.NodeCount())
	assert.Equal(t, 1, graph.DependencyCount())
}

func TestGraphBuilder_Build_RecordsWithoutEvidence(t *testing.T) {
	builder := newTestBuilder()

	records := []entities.ChangeRecord{
		record("1", "Initial commit", "Project scaffolding"),
		record("2", "Release scripts", "Makefile targets"),
	}

	graph := builder.Build(records)

	assert.Equal(t, 2, graph.NodeCount())
	assert.Zero(t, graph.DependencyCount())
	for _, node := range graph.Nodes() {
		assert.Equal(t, valueobjects.CategoryOther, node.Category())
	}
}
