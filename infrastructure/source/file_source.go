package source

import (
	"context"
	"encoding/json"
	"os"

	"evograph/domain/core/entities"
	pkgerrors "evograph/pkg/errors"
	"go.uber.org/zap"
)

// FileSource loads change records from a JSON file on disk. The file
// holds either a bare array of records or an object with a "records" key.
type FileSource struct {
	path   string
	logger *zap.Logger
}

// NewFileSource creates a file-backed record source
func NewFileSource(path string, logger *zap.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: logger,
	}
}

// Load reads and decodes the records file. An unset path yields no records.
func (s *FileSource) Load(ctx context.Context) ([]entities.ChangeRecord, error) {
	if s.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read records file")
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, pkgerrors.NewValidationError("records file is not valid JSON").WithCause(err)
	}

	s.logger.Info("Loaded change records",
		zap.String("path", s.path),
		zap.Int("records", len(records)),
	)

	return records, nil
}

// decodeRecords accepts both a bare array and a wrapped object
func decodeRecords(data []byte) ([]entities.ChangeRecord, error) {
	var records []entities.ChangeRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapped struct {
		Records []entities.ChangeRecord `json:"records"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Records, nil
}
