package handlers

import (
	"context"

	"evograph/application/ports"
	"evograph/application/queries"
	pkgerrors "evograph/pkg/errors"
	"evograph/pkg/utils"
	"go.uber.org/zap"
)

// GetAnalysisHandler handles the GetAnalysisQuery
type GetAnalysisHandler struct {
	store  ports.AnalysisStore
	logger *zap.Logger
}

// NewGetAnalysisHandler creates a new handler instance
func NewGetAnalysisHandler(store ports.AnalysisStore, logger *zap.Logger) *GetAnalysisHandler {
	return &GetAnalysisHandler{
		store:  store,
		logger: logger,
	}
}

// Handle executes the get analysis query
func (h *GetAnalysisHandler) Handle(ctx context.Context, query queries.GetAnalysisQuery) (*queries.GetAnalysisResult, error) {
	snapshot, ok := h.store.Current(ctx)
	if !ok {
		return nil, pkgerrors.NewNotFoundError("analysis")
	}

	return &queries.GetAnalysisResult{
		ID:                snapshot.ID,
		AnalyzedAt:        utils.FormatRFC3339(snapshot.AnalyzedAt),
		RecordCount:       snapshot.RecordCount,
		TotalFeatures:     snapshot.Stats.TotalFeatures,
		TotalDependencies: snapshot.Stats.TotalDependencies,
	}, nil
}
