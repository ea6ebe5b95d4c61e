package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evograph/domain/core/entities"
	"evograph/pkg/errors"
)

func TestRecordValidator_ValidateBatch_AcceptsWellFormedRecords(t *testing.T) {
	validator := NewRecordValidator()
	records := []entities.ChangeRecord{
		{Day: "1", Date: "2024-01-01", Feature: "Evolution Timeline", Description: "Initial timeline"},
		{Day: "2", Date: "2024-01-02", Feature: "Statistics Dashboard", Description: "Counts and averages"},
	}

	assert.NoError(t, validator.ValidateBatch(records))
}

func TestRecordValidator_ValidateBatch_EmptyBatchIsValid(t *testing.T) {
	validator := NewRecordValidator()

	assert.NoError(t, validator.ValidateBatch(nil))
	assert.NoError(t, validator.ValidateBatch([]entities.ChangeRecord{}))
}

func TestRecordValidator_ValidateBatch_RequiredFields(t *testing.T) {
	validator := NewRecordValidator()
	records := []entities.ChangeRecord{
		{Day: "1", Feature: "Timeline", Description: "ok"},
		{Day: "  ", Feature: "Missing day", Description: "blank day"},
		{Day: "3", Feature: "", Description: "missing feature"},
	}

	err := validator.ValidateBatch(records)

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "invalid change records", appErr.Message)
	assert.Equal(t, "day is required", appErr.Details["records[1]"])
	assert.Equal(t, "feature is required", appErr.Details["records[2]"])
	assert.NotContains(t, appErr.Details, "records[0]")
}

func TestRecordValidator_ValidateBatch_LengthLimits(t *testing.T) {
	validator := NewRecordValidator()
	records := []entities.ChangeRecord{
		{Day: "1", Feature: strings.Repeat("x", 256), Description: "ok"},
		{Day: "2", Feature: "Timeline", Description: strings.Repeat("y", 10001)},
	}

	err := validator.ValidateBatch(records)

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "feature exceeds 255 characters", appErr.Details["records[0]"])
	assert.Equal(t, "description exceeds 10000 characters", appErr.Details["records[1]"])
}

func TestRecordValidator_ValidateBatch_BatchLimit(t *testing.T) {
	validator := NewRecordValidator()
	validator.maxRecords = 3

	records := make([]entities.ChangeRecord, 4)
	for i := range records {
		records[i] = entities.ChangeRecord{Day: "1", Feature: "f"}
	}

	err := validator.ValidateBatch(records)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many records: 4 exceeds limit of 3")
	assert.True(t, errors.IsValidation(err))
}
