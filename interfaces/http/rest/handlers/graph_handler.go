package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"evograph/application/queries"
	querybus "evograph/application/queries/bus"
	"evograph/infrastructure/config"
	"evograph/pkg/common"
	pkgerrors "evograph/pkg/errors"

	"go.uber.org/zap"
)

// GraphHandler handles dependency graph read requests
type GraphHandler struct {
	queryBus *querybus.QueryBus
	cfg      *config.Config
	logger   *zap.Logger
}

func NewGraphHandler(queryBus *querybus.QueryBus, cfg *config.Config, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		queryBus: queryBus,
		cfg:      cfg,
		logger:   logger,
	}
}

// GetGraphData handles GET /graph-data
func (h *GraphHandler) GetGraphData(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphDataQuery{})
	if err != nil {
		h.logger.Error("Failed to get graph data", zap.Error(err))
		h.respondError(w, h.statusFor(err), "Failed to get graph data")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetStats handles GET /graph/stats
func (h *GraphHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphStatsQuery{})
	if err != nil {
		h.logger.Error("Failed to get graph stats", zap.Error(err))
		h.respondError(w, h.statusFor(err), "Failed to get graph stats")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// GetNodes handles GET /graph/nodes with pagination
func (h *GraphHandler) GetNodes(w http.ResponseWriter, r *http.Request) {
	params := common.ExtractPaginationParams(r)

	query := queries.GetNodesQuery{
		Page:     params.Page,
		PageSize: params.PageSize,
		Category: r.URL.Query().Get("category"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.logger.Error("Failed to get nodes",
			zap.Int("page", query.Page),
			zap.Int("pageSize", query.PageSize),
			zap.Error(err),
		)
		h.respondError(w, h.statusFor(err), "Failed to get nodes")
		return
	}

	nodesResult, ok := result.(*queries.GetNodesResult)
	if !ok {
		h.respondError(w, http.StatusInternalServerError, "Unexpected query result")
		return
	}

	paginated := common.NewPaginatedResult(
		nodesResult.Nodes,
		nodesResult.Page,
		nodesResult.PageSize,
		nodesResult.Total,
	)
	h.respondJSON(w, http.StatusOK, paginated)
}

// GetLayout handles GET /graph/layout
func (h *GraphHandler) GetLayout(w http.ResponseWriter, r *http.Request) {
	width, err := h.parseDimension(r, "width", h.cfg.DefaultCanvasWidth)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid width parameter")
		return
	}

	height, err := h.parseDimension(r, "height", h.cfg.DefaultCanvasHeight)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid height parameter")
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetLayoutQuery{Width: width, Height: height})
	if err != nil {
		if appErr := pkgerrors.GetAppError(err); appErr != nil && appErr.Type == pkgerrors.ErrorTypeValidation {
			h.respondError(w, http.StatusBadRequest, appErr.Message)
			return
		}
		h.logger.Error("Failed to compute layout",
			zap.Float64("width", width),
			zap.Float64("height", height),
			zap.Error(err),
		)
		h.respondError(w, h.statusFor(err), "Failed to compute layout")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// FindSimilar handles GET /graph/similar
func (h *GraphHandler) FindSimilar(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		h.respondError(w, http.StatusBadRequest, "Title parameter is required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	result, err := h.queryBus.Ask(r.Context(), queries.FindSimilarFeaturesQuery{Title: title, Limit: limit})
	if err != nil {
		h.logger.Error("Failed to find similar features",
			zap.String("title", title),
			zap.Error(err),
		)
		h.respondError(w, h.statusFor(err), "Failed to find similar features")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// parseDimension reads a float query parameter, falling back to the
// configured default when absent. Non-positive values are rejected.
func (h *GraphHandler) parseDimension(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, strconv.ErrRange
	}
	return value, nil
}

func (h *GraphHandler) statusFor(err error) int {
	if appErr := pkgerrors.GetAppError(err); appErr != nil {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

func (h *GraphHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *GraphHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
