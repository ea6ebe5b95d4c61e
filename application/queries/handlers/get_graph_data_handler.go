package handlers

import (
	"context"

	"evograph/application/ports"
	"evograph/application/queries"
	"go.uber.org/zap"
)

// GetGraphDataHandler handles the GetGraphDataQuery
type GetGraphDataHandler struct {
	store  ports.AnalysisStore
	logger *zap.Logger
}

// NewGetGraphDataHandler creates a new handler instance
func NewGetGraphDataHandler(store ports.AnalysisStore, logger *zap.Logger) *GetGraphDataHandler {
	return &GetGraphDataHandler{
		store:  store,
		logger: logger,
	}
}

// Handle executes the get graph data query
func (h *GetGraphDataHandler) Handle(ctx context.Context, query queries.GetGraphDataQuery) (*queries.GetGraphDataResult, error) {
	snapshot, ok := h.store.Current(ctx)
	if !ok {
		// No analysis has run yet; serve an empty graph so clients can
		// render a blank canvas instead of failing.
		h.logger.Debug("No analysis snapshot available, returning empty graph")
		return &queries.GetGraphDataResult{
			Nodes: []queries.GraphNode{},
			Edges: []queries.GraphEdge{},
			Stats: emptyStats(),
		}, nil
	}

	nodes := snapshot.Graph.Nodes()
	deps := snapshot.Graph.Dependencies()

	result := &queries.GetGraphDataResult{
		AnalysisID: snapshot.ID,
		Nodes:      make([]queries.GraphNode, 0, len(nodes)),
		Edges:      make([]queries.GraphEdge, 0, len(deps)),
		Stats:      statsToDTO(snapshot.Stats),
	}

	for _, node := range nodes {
		result.Nodes = append(result.Nodes, nodeToDTO(node))
	}
	for _, dep := range deps {
		result.Edges = append(result.Edges, depToDTO(dep))
	}

	return result, nil
}
