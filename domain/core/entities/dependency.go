package entities

import "evograph/domain/core/valueobjects"

// DependencyType defines the kind of relationship between two features
type DependencyType string

const (
	DependencyBuildsOn DependencyType = "builds-on"
	DependencyEnhances DependencyType = "enhances"
	DependencyUses     DependencyType = "uses"
)

// IsValid reports whether the type is one of the known kinds
func (t DependencyType) IsValid() bool {
	switch t {
	case DependencyBuildsOn, DependencyEnhances, DependencyUses:
		return true
	}
	return false
}

// FeatureDependency is a directed edge between two feature nodes.
// From depends on To; To's record always precedes From's in the input.
// Duplicate edges are meaningful (independent evidence) and never
// deduplicated.
type FeatureDependency struct {
	From     valueobjects.NodeID
	To       valueobjects.NodeID
	Type     DependencyType
	Strength float64
}
