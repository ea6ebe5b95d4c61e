package handlers

import (
	"context"

	"evograph/application/commands"
	"evograph/application/services"
	"go.uber.org/zap"
)

// AnalyzeRecordsHandler handles the AnalyzeRecordsCommand
type AnalyzeRecordsHandler struct {
	analysisService *services.AnalysisService
	logger          *zap.Logger
}

// NewAnalyzeRecordsHandler creates a new handler instance
func NewAnalyzeRecordsHandler(
	analysisService *services.AnalysisService,
	logger *zap.Logger,
) *AnalyzeRecordsHandler {
	return &AnalyzeRecordsHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// Handle executes the analyze records command
func (h *AnalyzeRecordsHandler) Handle(ctx context.Context, cmd commands.AnalyzeRecordsCommand) error {
	snapshot, err := h.analysisService.Analyze(ctx, cmd.AnalysisID, cmd.Records)
	if err != nil {
		h.logger.Error("Analysis failed",
			zap.String("analysisID", cmd.AnalysisID),
			zap.Int("records", len(cmd.Records)),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("Analysis stored",
		zap.String("analysisID", snapshot.ID),
		zap.Int("nodes", snapshot.Stats.TotalFeatures),
		zap.Int("dependencies", snapshot.Stats.TotalDependencies),
	)
	return nil
}
