package services

import (
	"strings"

	"evograph/domain/core/entities"
	"evograph/domain/core/valueobjects"
)

// InferenceEngine derives directed dependencies between feature changes
// from textual evidence. It is stateless: the same records in the same
// relative order always yield the same edges.
type InferenceEngine struct{}

// NewInferenceEngine creates an inference engine
func NewInferenceEngine() *InferenceEngine {
	return &InferenceEngine{}
}

// Infer scans the records in input order and emits one dependency per
// satisfied (rule, keyword) pair. For every fired keyword the earliest
// preceding record mentioning it wins; later mentions are ignored. Only
// earlier records are ever considered, so every edge points backward.
// There is no failure mode: records without matches simply contribute no
// edges.
func (e *InferenceEngine) Infer(records []entities.ChangeRecord) []entities.FeatureDependency {
	dependencies := []entities.FeatureDependency{}

	for i, record := range records {
		lowered := record.SearchText()

		for _, entry := range dependencyRuleTable {
			if !strings.Contains(lowered, entry.trigger) {
				continue
			}

			for _, rule := range entry.rules {
				if !rule.Pattern.MatchString(record.Feature) &&
					!rule.Pattern.MatchString(record.Description) {
					continue
				}

				for _, keyword := range rule.DependsOn {
					if j, ok := firstMention(records[:i], keyword); ok {
						dependencies = append(dependencies, entities.FeatureDependency{
							From:     valueobjects.NewNodeID(record.Day),
							To:       valueobjects.NewNodeID(records[j].Day),
							Type:     rule.Type,
							Strength: rule.Strength,
						})
					}
				}
			}
		}
	}

	return dependencies
}

// firstMention returns the index of the first record whose title or
// description mentions the keyword.
func firstMention(records []entities.ChangeRecord, keyword string) (int, bool) {
	for j, record := range records {
		if record.ContainsKeyword(keyword) {
			return j, true
		}
	}
	return 0, false
}
