package handlers

import (
	"context"

	"evograph/application/ports"
	"evograph/application/queries"
	"go.uber.org/zap"
)

// GetGraphStatsHandler handles the GetGraphStatsQuery
type GetGraphStatsHandler struct {
	store  ports.AnalysisStore
	logger *zap.Logger
}

// NewGetGraphStatsHandler creates a new handler instance
func NewGetGraphStatsHandler(store ports.AnalysisStore, logger *zap.Logger) *GetGraphStatsHandler {
	return &GetGraphStatsHandler{
		store:  store,
		logger: logger,
	}
}

// Handle executes the get graph stats query
func (h *GetGraphStatsHandler) Handle(ctx context.Context, query queries.GetGraphStatsQuery) (*queries.GraphStats, error) {
	snapshot, ok := h.store.Current(ctx)
	if !ok {
		stats := emptyStats()
		return &stats, nil
	}

	stats := statsToDTO(snapshot.Stats)
	return &stats, nil
}
