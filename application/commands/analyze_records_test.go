package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"evograph/domain/core/entities"
)

func TestAnalyzeRecordsCommand_Validate(t *testing.T) {
	valid := AnalyzeRecordsCommand{
		AnalysisID: "run-1",
		Records: []entities.ChangeRecord{
			{Day: "1", Feature: "Timeline"},
		},
	}
	assert.NoError(t, valid.Validate())

	assert.EqualError(t, AnalyzeRecordsCommand{}.Validate(), "analysis ID is required")
}

func TestAnalyzeRecordsCommand_Validate_EmptyBatchAllowed(t *testing.T) {
	cmd := AnalyzeRecordsCommand{AnalysisID: "run-empty"}

	assert.NoError(t, cmd.Validate())
}

func TestAnalyzeRecordsCommand_Validate_BatchCap(t *testing.T) {
	cmd := AnalyzeRecordsCommand{
		AnalysisID: "run-huge",
		Records:    make([]entities.ChangeRecord, MaxRecordsPerAnalysis+1),
	}

	assert.EqualError(t, cmd.Validate(), "record batch exceeds maximum size")
}
