package services

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"evograph/domain/config"
	"evograph/domain/core/aggregates"
	"evograph/domain/core/entities"
)

// SimilarityMatch pairs a node with its similarity to the query title
type SimilarityMatch struct {
	Node       *entities.FeatureNode
	Similarity float64
}

// SimilarityService finds features resembling a given title. Name
// distance dominates; keyword overlap breaks near-ties between renames
// and genuinely related work.
type SimilarityService struct {
	threshold  float64
	maxResults int

	nameWeight    float64
	keywordWeight float64
}

// NewSimilarityService creates a similarity service from the analysis
// configuration
func NewSimilarityService(cfg *config.AnalysisConfig) *SimilarityService {
	return &SimilarityService{
		threshold:     cfg.SimilarityThreshold,
		maxResults:    cfg.MaxSimilarResults,
		nameWeight:    0.7,
		keywordWeight: 0.3,
	}
}

// FindSimilar ranks the graph's nodes by similarity to the title.
// Results below the threshold are dropped; ordering is similarity
// descending with input order breaking ties, capped at limit (or the
// configured maximum when limit is zero or negative).
func (s *SimilarityService) FindSimilar(graph *aggregates.DependencyGraph, title string, limit int) []SimilarityMatch {
	if limit <= 0 || limit > s.maxResults {
		limit = s.maxResults
	}

	queryKeywords := keywordSet(title)
	matches := []SimilarityMatch{}

	for _, node := range graph.Nodes() {
		nameSim := nameSimilarity(title, node.Name())
		kwSim := jaccard(queryKeywords, keywordSet(node.Name()+" "+node.Description()))

		similarity := s.nameWeight*nameSim + s.keywordWeight*kwSim
		if similarity < s.threshold {
			continue
		}
		matches = append(matches, SimilarityMatch{Node: node, Similarity: similarity})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// nameSimilarity is the normalized Levenshtein similarity of the
// lowercased titles: 1 - distance/maxLen.
func nameSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" && b == "" {
		return 0
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

// keywordSet builds a lookup set from the significant words of the text
func keywordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, kw := range entities.ExtractKeywords(text) {
		set[kw] = true
	}
	return set
}

// jaccard computes set overlap: |intersection| / |union|
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for kw := range a {
		if b[kw] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
