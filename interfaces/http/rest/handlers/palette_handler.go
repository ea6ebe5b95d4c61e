package handlers

import (
	"encoding/json"
	"net/http"

	"evograph/pkg/palette"

	"go.uber.org/zap"
)

// PaletteResponse lists the colors renderers should use
type PaletteResponse struct {
	DependencyTypes   map[string]string `json:"dependencyTypes"`
	Categories        map[string]string `json:"categories"`
	DefaultDependency string            `json:"defaultDependency"`
	DefaultCategory   string            `json:"defaultCategory"`
}

// PaletteHandler serves the static renderer palette
type PaletteHandler struct {
	logger *zap.Logger
}

// NewPaletteHandler creates a new palette handler
func NewPaletteHandler(logger *zap.Logger) *PaletteHandler {
	return &PaletteHandler{logger: logger}
}

// GetPalette handles GET /palette
func (h *PaletteHandler) GetPalette(w http.ResponseWriter, r *http.Request) {
	response := PaletteResponse{
		DependencyTypes:   palette.DependencyColors(),
		Categories:        palette.CategoryColors(),
		DefaultDependency: palette.DefaultDependencyColor,
		DefaultCategory:   palette.DefaultCategoryColor,
	}

	h.respondJSON(w, http.StatusOK, response)
}

func (h *PaletteHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
