package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedRequest struct {
	Day     string `validate:"required"`
	Feature string `validate:"required,max=10"`
	Kind    string `validate:"omitempty,oneof=builds-on enhances uses"`
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, ValidateStruct(validatedRequest{
		Day:     "1",
		Feature: "Timeline",
		Kind:    "uses",
	}))
}

func TestValidateStruct_RequiredField(t *testing.T) {
	err := ValidateStruct(validatedRequest{Feature: "Timeline"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "day is required")
}

func TestValidateStruct_CollectsAllFailures(t *testing.T) {
	err := ValidateStruct(validatedRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "day is required")
	assert.Contains(t, err.Error(), "feature is required")
	assert.Contains(t, err.Error(), "; ")
}

func TestValidateStruct_MaxLength(t *testing.T) {
	err := ValidateStruct(validatedRequest{Day: "1", Feature: "far too long a name"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature must be at most 10 characters")
}

func TestValidateStruct_OneOf(t *testing.T) {
	err := ValidateStruct(validatedRequest{Day: "1", Feature: "Timeline", Kind: "mystery"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind must be one of: builds-on enhances uses")
}

func TestRFC3339RoundTrip(t *testing.T) {
	moment := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

	formatted := FormatRFC3339(moment)
	assert.Equal(t, "2024-01-02T15:04:05Z", formatted)

	parsed, err := ParseRFC3339(formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(moment))
}

func TestParseRFC3339_Invalid(t *testing.T) {
	_, err := ParseRFC3339("January 2nd")
	assert.Error(t, err)
}

func TestNowRFC3339_Parses(t *testing.T) {
	_, err := ParseRFC3339(NowRFC3339())
	assert.NoError(t, err)
}
