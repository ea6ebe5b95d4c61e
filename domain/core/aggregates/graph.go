package aggregates

import (
	"errors"

	"evograph/domain/core/entities"
	"evograph/domain/core/valueobjects"
)

// DependencyGraph is the aggregate root for one analysis result.
// It ensures the consistency rules the rest of the system leans on:
// node order equals input order, and every dependency points backward
// in that order.
type DependencyGraph struct {
	nodes        []*entities.FeatureNode
	dependencies []entities.FeatureDependency

	// position maps node id -> index in nodes. Duplicate day labels are
	// not rejected (the input contract owns uniqueness), so on collision
	// the later node wins lookups while both stay in the sequence.
	position map[string]int
}

// NewDependencyGraph creates an empty graph
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		nodes:        []*entities.FeatureNode{},
		dependencies: []entities.FeatureDependency{},
		position:     make(map[string]int),
	}
}

// AddNode appends a node, preserving input order
func (g *DependencyGraph) AddNode(node *entities.FeatureNode) error {
	if node == nil {
		return errors.New("node cannot be nil")
	}

	g.nodes = append(g.nodes, node)
	g.position[node.ID().String()] = len(g.nodes) - 1
	return nil
}

// AddDependency appends a directed edge after checking the ordering rule.
// Both endpoints must already be in the graph and the target must precede
// the source in input order. Duplicates are allowed.
func (g *DependencyGraph) AddDependency(dep entities.FeatureDependency) error {
	from, ok := g.position[dep.From.String()]
	if !ok {
		return errors.New("dependency source not in graph")
	}
	to, ok := g.position[dep.To.String()]
	if !ok {
		return errors.New("dependency target not in graph")
	}
	if to >= from {
		return errors.New("dependency must point to an earlier feature")
	}
	if !dep.Type.IsValid() {
		return errors.New("unknown dependency type")
	}
	if dep.Strength < 0 || dep.Strength > 1 {
		return errors.New("dependency strength out of range")
	}

	g.dependencies = append(g.dependencies, dep)
	return nil
}

// Nodes returns the nodes in input order
func (g *DependencyGraph) Nodes() []*entities.FeatureNode {
	// Return a copy to maintain encapsulation
	nodes := make([]*entities.FeatureNode, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Dependencies returns the edges in discovery order
func (g *DependencyGraph) Dependencies() []entities.FeatureDependency {
	deps := make([]entities.FeatureDependency, len(g.dependencies))
	copy(deps, g.dependencies)
	return deps
}

// NodeByID looks up a node. With colliding ids the latest node wins.
func (g *DependencyGraph) NodeByID(id valueobjects.NodeID) (*entities.FeatureNode, bool) {
	idx, ok := g.position[id.String()]
	if !ok {
		return nil, false
	}
	return g.nodes[idx], true
}

// NodeCount returns the number of nodes
func (g *DependencyGraph) NodeCount() int {
	return len(g.nodes)
}

// DependencyCount returns the number of edges
func (g *DependencyGraph) DependencyCount() int {
	return len(g.dependencies)
}

// IsEmpty reports whether the graph has no nodes
func (g *DependencyGraph) IsEmpty() bool {
	return len(g.nodes) == 0
}

// Validate re-checks every invariant over the full graph
func (g *DependencyGraph) Validate() error {
	for _, node := range g.nodes {
		if node == nil {
			return errors.New("graph contains a nil node")
		}
	}
	for _, dep := range g.dependencies {
		from, ok := g.position[dep.From.String()]
		if !ok {
			return errors.New("dependency source not in graph")
		}
		to, ok := g.position[dep.To.String()]
		if !ok {
			return errors.New("dependency target not in graph")
		}
		if to >= from {
			return errors.New("dependency must point to an earlier feature")
		}
	}
	return nil
}
