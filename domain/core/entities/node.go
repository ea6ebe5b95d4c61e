package entities

import (
	"strings"
	"unicode"

	"evograph/domain/core/valueobjects"
)

// FeatureNode is the main entity representing one analyzed feature change.
// Nodes are immutable after creation; the analysis is a full recompute, so
// there is no update path.
type FeatureNode struct {
	id          valueobjects.NodeID
	name        string
	day         string
	date        string
	category    valueobjects.Category
	description string
}

// NewFeatureNode creates a node from a change record and its category.
// The id is derived from the record's day label.
func NewFeatureNode(record ChangeRecord, category valueobjects.Category) *FeatureNode {
	return &FeatureNode{
		id:          valueobjects.NewNodeID(record.Day),
		name:        record.Feature,
		day:         record.Day,
		date:        record.Date,
		category:    category,
		description: record.Description,
	}
}

// ID returns the node's unique identifier
func (n *FeatureNode) ID() valueobjects.NodeID {
	return n.id
}

// Name returns the feature title
func (n *FeatureNode) Name() string {
	return n.name
}

// Day returns the day label of the source record
func (n *FeatureNode) Day() string {
	return n.day
}

// Date returns the human-readable date of the source record
func (n *FeatureNode) Date() string {
	return n.date
}

// Category returns the semantic category
func (n *FeatureNode) Category() valueobjects.Category {
	return n.category
}

// Description returns the source record's description
func (n *FeatureNode) Description() string {
	return n.description
}

// Keywords extracts significant keywords from the node's text.
// Used by the similarity query, not by dependency inference.
func (n *FeatureNode) Keywords() []string {
	return ExtractKeywords(n.name + " " + n.description)
}

// keywordStopWords are skipped during keyword extraction
var keywordStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true,
	"that": true, "this": true, "from": true, "into": true,
	"are": true, "was": true, "were": true, "been": true,
}

// ExtractKeywords splits text into significant lowercase words: letters
// and digits only, longer than three runes, deduplicated in first-seen
// order, stop words removed.
func ExtractKeywords(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]bool)
	keywords := []string{}
	for _, word := range words {
		if len(word) <= 3 || keywordStopWords[word] || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}

	return keywords
}
