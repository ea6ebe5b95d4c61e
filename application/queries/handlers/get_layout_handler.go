package handlers

import (
	"context"

	"evograph/application/ports"
	"evograph/application/queries"
	"evograph/domain/core/valueobjects"
	domainservices "evograph/domain/services"
	"evograph/pkg/palette"
	"go.uber.org/zap"
)

// GetLayoutHandler handles the GetLayoutQuery
type GetLayoutHandler struct {
	store  ports.AnalysisStore
	layout *domainservices.RingLayout
	logger *zap.Logger
}

// NewGetLayoutHandler creates a new handler instance
func NewGetLayoutHandler(
	store ports.AnalysisStore,
	layout *domainservices.RingLayout,
	logger *zap.Logger,
) *GetLayoutHandler {
	return &GetLayoutHandler{
		store:  store,
		layout: layout,
		logger: logger,
	}
}

// Handle executes the get layout query
func (h *GetLayoutHandler) Handle(ctx context.Context, query queries.GetLayoutQuery) (*queries.GetLayoutResult, error) {
	result := &queries.GetLayoutResult{
		Width:      query.Width,
		Height:     query.Height,
		Nodes:      []queries.LayoutNode{},
		Connectors: []queries.Connector{},
	}

	snapshot, ok := h.store.Current(ctx)
	if !ok {
		return result, nil
	}

	positioned := h.layout.Arrange(snapshot.Graph, query.Width, query.Height)

	positions := make(map[string]valueobjects.Position, len(positioned))
	for _, pn := range positioned {
		id := pn.Node.ID().String()
		category := pn.Node.Category().String()
		positions[id] = pn.Position
		result.Nodes = append(result.Nodes, queries.LayoutNode{
			ID:       id,
			Name:     pn.Node.Name(),
			Category: category,
			Color:    palette.CategoryColor(category),
			X:        pn.Position.X(),
			Y:        pn.Position.Y(),
		})
	}

	for _, dep := range snapshot.Graph.Dependencies() {
		fromPos, fromOK := positions[dep.From.String()]
		toPos, toOK := positions[dep.To.String()]
		if !fromOK || !toOK {
			continue
		}
		depType := string(dep.Type)
		result.Connectors = append(result.Connectors, queries.Connector{
			From:     dep.From.String(),
			To:       dep.To.String(),
			Type:     depType,
			Strength: dep.Strength,
			Color:    palette.DependencyColor(depType),
			Path:     h.layout.ConnectorPath(fromPos, toPos),
		})
	}

	return result, nil
}
