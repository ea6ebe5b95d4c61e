package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"evograph/application/commands"
	"evograph/application/commands/bus"
	"evograph/application/queries"
	querybus "evograph/application/queries/bus"
	"evograph/domain/core/entities"
	"evograph/pkg/common"
	pkgerrors "evograph/pkg/errors"
	"evograph/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxAnalyzeBodyBytes bounds the accepted request body size
const maxAnalyzeBodyBytes = 10 << 20 // 10 MB

// AnalyzeRequest is the body of POST /analysis
type AnalyzeRequest struct {
	Records []entities.ChangeRecord `json:"records" validate:"omitempty,dive"`
}

// AnalyzeResponse confirms a stored analysis
type AnalyzeResponse struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	RecordCount int    `json:"recordCount"`
	AnalyzedAt  string `json:"analyzedAt"`
}

// AnalysisHandler handles analysis lifecycle HTTP requests
type AnalysisHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// Analyze handles POST /analysis
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := common.ParseJSONBody(r, &req, maxAnalyzeBodyBytes); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// Generate analysis ID
	analysisID := uuid.New().String()

	// Create command
	cmd := commands.AnalyzeRecordsCommand{
		AnalysisID: analysisID,
		Records:    req.Records,
	}

	// Execute command
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Failed to analyze records",
			zap.String("analysisID", analysisID),
			zap.Int("records", len(req.Records)),
			zap.Error(err),
		)
		if appErr := pkgerrors.GetAppError(err); appErr != nil {
			h.respondError(w, appErr.HTTPStatus, appErr.Message)
			return
		}
		if strings.Contains(err.Error(), "validation") {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to analyze records")
		return
	}

	response := AnalyzeResponse{
		ID:          analysisID,
		Message:     "Analysis completed successfully",
		RecordCount: len(req.Records),
		AnalyzedAt:  utils.NowRFC3339(),
	}

	h.respondJSON(w, http.StatusCreated, response)
}

// GetAnalysis handles GET /analysis
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetAnalysisQuery{})
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			h.respondError(w, http.StatusNotFound, "No analysis available")
			return
		}
		h.logger.Error("Failed to get analysis", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Helper methods

func (h *AnalysisHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *AnalysisHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}
