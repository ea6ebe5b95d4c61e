package handlers

import (
	"context"

	"evograph/application/ports"
	"evograph/application/queries"
	"evograph/domain/core/entities"
	"go.uber.org/zap"
)

// GetNodesHandler handles the GetNodesQuery
type GetNodesHandler struct {
	store  ports.AnalysisStore
	logger *zap.Logger
}

// NewGetNodesHandler creates a new handler instance
func NewGetNodesHandler(store ports.AnalysisStore, logger *zap.Logger) *GetNodesHandler {
	return &GetNodesHandler{
		store:  store,
		logger: logger,
	}
}

// Handle executes the get nodes query
func (h *GetNodesHandler) Handle(ctx context.Context, query queries.GetNodesQuery) (*queries.GetNodesResult, error) {
	result := &queries.GetNodesResult{
		Nodes:    []queries.GraphNode{},
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	snapshot, ok := h.store.Current(ctx)
	if !ok {
		return result, nil
	}

	nodes := snapshot.Graph.Nodes()
	if query.Category != "" {
		filtered := make([]*entities.FeatureNode, 0, len(nodes))
		for _, node := range nodes {
			if node.Category().String() == query.Category {
				filtered = append(filtered, node)
			}
		}
		nodes = filtered
	}

	result.Total = len(nodes)

	offset := (query.Page - 1) * query.PageSize
	if offset >= len(nodes) {
		return result, nil
	}

	end := offset + query.PageSize
	if end > len(nodes) {
		end = len(nodes)
	}

	for _, node := range nodes[offset:end] {
		result.Nodes = append(result.Nodes, nodeToDTO(node))
	}

	return result, nil
}
