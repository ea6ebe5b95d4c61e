package ports

import (
	"context"
	"time"

	"evograph/domain/core/aggregates"
	"evograph/domain/core/entities"
	"evograph/domain/services"
)

// AnalysisSnapshot is the complete outcome of analyzing one batch of
// change records. A snapshot is immutable once stored; running a new
// analysis replaces the current one.
type AnalysisSnapshot struct {
	ID          string
	AnalyzedAt  time.Time
	RecordCount int
	Graph       *aggregates.DependencyGraph
	Stats       services.GraphStats
}

// RecordSource loads change records from an external location
type RecordSource interface {
	Load(ctx context.Context) ([]entities.ChangeRecord, error)
}

// AnalysisStore keeps the snapshot currently being served
type AnalysisStore interface {
	Put(ctx context.Context, snapshot *AnalysisSnapshot) error
	Current(ctx context.Context) (*AnalysisSnapshot, bool)
	Clear(ctx context.Context) error
}
