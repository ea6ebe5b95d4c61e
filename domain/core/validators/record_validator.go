package validators

import (
	"fmt"
	"strings"

	"evograph/domain/core/entities"
	"evograph/pkg/errors"
)

// RecordValidator validates incoming change records at the analysis
// boundary. It checks shape only; ordering and day uniqueness belong to
// the upstream parser contract and are deliberately not enforced here.
type RecordValidator struct {
	featureMaxLength     int
	descriptionMaxLength int
	maxRecords           int
}

// NewRecordValidator creates a validator with default limits
func NewRecordValidator() *RecordValidator {
	return &RecordValidator{
		featureMaxLength:     255,
		descriptionMaxLength: 10000,
		maxRecords:           50000,
	}
}

// ValidateBatch validates a full record set. All field problems are
// collected into one validation error so the caller sees everything at
// once.
func (v *RecordValidator) ValidateBatch(records []entities.ChangeRecord) error {
	if len(records) > v.maxRecords {
		return errors.NewValidationError(
			fmt.Sprintf("too many records: %d exceeds limit of %d", len(records), v.maxRecords))
	}

	details := make(map[string]interface{})
	for i, record := range records {
		if msg := v.validateRecord(record); msg != "" {
			details[fmt.Sprintf("records[%d]", i)] = msg
		}
	}

	if len(details) > 0 {
		return errors.NewValidationError("invalid change records").WithDetails(details)
	}
	return nil
}

// validateRecord checks a single record's shape
func (v *RecordValidator) validateRecord(record entities.ChangeRecord) string {
	if strings.TrimSpace(record.Day) == "" {
		return "day is required"
	}
	if strings.TrimSpace(record.Feature) == "" {
		return "feature is required"
	}
	if len(record.Feature) > v.featureMaxLength {
		return fmt.Sprintf("feature exceeds %d characters", v.featureMaxLength)
	}
	if len(record.Description) > v.descriptionMaxLength {
		return fmt.Sprintf("description exceeds %d characters", v.descriptionMaxLength)
	}
	return ""
}
