package handlers

import (
	"context"

	"evograph/application/ports"
	"evograph/application/queries"
	domainservices "evograph/domain/services"
	"go.uber.org/zap"
)

// FindSimilarFeaturesHandler handles the FindSimilarFeaturesQuery
type FindSimilarFeaturesHandler struct {
	store      ports.AnalysisStore
	similarity *domainservices.SimilarityService
	logger     *zap.Logger
}

// NewFindSimilarFeaturesHandler creates a new handler instance
func NewFindSimilarFeaturesHandler(
	store ports.AnalysisStore,
	similarity *domainservices.SimilarityService,
	logger *zap.Logger,
) *FindSimilarFeaturesHandler {
	return &FindSimilarFeaturesHandler{
		store:      store,
		similarity: similarity,
		logger:     logger,
	}
}

// Handle executes the find similar features query
func (h *FindSimilarFeaturesHandler) Handle(ctx context.Context, query queries.FindSimilarFeaturesQuery) (*queries.FindSimilarFeaturesResult, error) {
	result := &queries.FindSimilarFeaturesResult{
		Query:   query.Title,
		Matches: []queries.SimilarFeature{},
	}

	snapshot, ok := h.store.Current(ctx)
	if !ok {
		return result, nil
	}

	matches := h.similarity.FindSimilar(snapshot.Graph, query.Title, query.Limit)
	for _, m := range matches {
		result.Matches = append(result.Matches, queries.SimilarFeature{
			ID:         m.Node.ID().String(),
			Name:       m.Node.Name(),
			Category:   m.Node.Category().String(),
			Similarity: m.Similarity,
		})
	}

	return result, nil
}
