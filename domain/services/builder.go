package services

import (
	"evograph/domain/core/aggregates"
	"evograph/domain/core/entities"
)

// GraphBuilder turns a record set into a dependency graph: one node per
// record in input order, plus the inferred edges.
type GraphBuilder struct {
	categorizer *Categorizer
	inference   *InferenceEngine
}

// NewGraphBuilder creates a builder
func NewGraphBuilder(categorizer *Categorizer, inference *InferenceEngine) *GraphBuilder {
	return &GraphBuilder{
		categorizer: categorizer,
		inference:   inference,
	}
}

// Build constructs the graph. An empty record set yields an empty graph,
// never an error. Inferred edges the aggregate rejects (possible only
// when duplicate day labels collapse two nodes onto one id) are skipped
// so the build stays total.
func (b *GraphBuilder) Build(records []entities.ChangeRecord) *aggregates.DependencyGraph {
	graph := aggregates.NewDependencyGraph()

	for _, record := range records {
		category := b.categorizer.Categorize(record.Feature, record.Description)
		if err := graph.AddNode(entities.NewFeatureNode(record, category)); err != nil {
			continue
		}
	}

	for _, dep := range b.inference.Infer(records) {
		if err := graph.AddDependency(dep); err != nil {
			continue
		}
	}

	return graph
}
