package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"evograph/domain/core/valueobjects"
)

func TestChangeRecord_SearchText(t *testing.T) {
	record := ChangeRecord{
		Feature:     "Evolution Timeline",
		Description: "Tracks FEATURE changes",
	}

	assert.Equal(t, "evolution timeline tracks feature changes", record.SearchText())
}

func TestChangeRecord_ContainsKeyword(t *testing.T) {
	record := ChangeRecord{Feature: "Statistics Dashboard", Description: "Timeline counters"}

	assert.True(t, record.ContainsKeyword("statistics"))
	assert.True(t, record.ContainsKeyword("timeline"))

	// Matching is plain substring, so word fragments count too
	assert.True(t, record.ContainsKeyword("stat"))
	assert.False(t, record.ContainsKeyword("graph"))
}

func TestNewFeatureNode(t *testing.T) {
	record := ChangeRecord{
		Day:         "5",
		Date:        "2024-02-01",
		Feature:     "Search Box",
		Description: "Filters the feature list",
	}

	node := NewFeatureNode(record, valueobjects.CategorySearchFilter)

	assert.Equal(t, "day-5", node.ID().String())
	assert.Equal(t, "Search Box", node.Name())
	assert.Equal(t, "5", node.Day())
	assert.Equal(t, "2024-02-01", node.Date())
	assert.True(t, node.Category().Equals(valueobjects.CategorySearchFilter))
	assert.Equal(t, "Filters the feature list", node.Description())
}

func TestFeatureNode_Keywords(t *testing.T) {
	node := NewFeatureNode(ChangeRecord{
		Day:         "1",
		Feature:     "The Timeline",
		Description: "was tracking timeline-data from 2024!",
	}, valueobjects.CategoryCoreFeatures)

	// Short words, stop words and duplicates are dropped; order is
	// first occurrence
	assert.Equal(t, []string{"timeline", "tracking", "data", "2024"}, node.Keywords())
}

func TestDependencyType_IsValid(t *testing.T) {
	assert.True(t, DependencyBuildsOn.IsValid())
	assert.True(t, DependencyEnhances.IsValid())
	assert.True(t, DependencyUses.IsValid())
	assert.False(t, DependencyType("mystery").IsValid())
	assert.False(t, DependencyType("").IsValid())
}
