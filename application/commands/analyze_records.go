package commands

import (
	"errors"

	"evograph/domain/core/entities"
)

// AnalyzeRecordsCommand represents the command to analyze a batch of change records
type AnalyzeRecordsCommand struct {
	AnalysisID string                  `json:"analysis_id" validate:"required"`
	Records    []entities.ChangeRecord `json:"records" validate:"dive"`
}

// Validate validates the command
func (cmd AnalyzeRecordsCommand) Validate() error {
	if cmd.AnalysisID == "" {
		return errors.New("analysis ID is required")
	}
	if len(cmd.Records) > MaxRecordsPerAnalysis {
		return errors.New("record batch exceeds maximum size")
	}
	return nil
}

const MaxRecordsPerAnalysis = 50000
