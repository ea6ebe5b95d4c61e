package services

import (
	"context"
	"time"

	"evograph/application/ports"
	"evograph/domain/config"
	"evograph/domain/core/entities"
	"evograph/domain/core/validators"
	domainservices "evograph/domain/services"
	pkgerrors "evograph/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalysisService runs the full analysis pipeline over a record batch
// and stores the resulting snapshot for the query side.
type AnalysisService struct {
	builder   *domainservices.GraphBuilder
	analyzer  *domainservices.GraphAnalyzer
	validator *validators.RecordValidator
	store     ports.AnalysisStore
	cfg       *config.AnalysisConfig
	logger    *zap.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	builder *domainservices.GraphBuilder,
	analyzer *domainservices.GraphAnalyzer,
	validator *validators.RecordValidator,
	store ports.AnalysisStore,
	cfg *config.AnalysisConfig,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		builder:   builder,
		analyzer:  analyzer,
		validator: validator,
		store:     store,
		cfg:       cfg,
		logger:    logger,
	}
}

// Analyze validates the records, builds the graph and stores the snapshot.
// An empty analysisID is replaced with a generated one. An empty record
// batch is valid and produces an empty snapshot.
func (s *AnalysisService) Analyze(ctx context.Context, analysisID string, records []entities.ChangeRecord) (*ports.AnalysisSnapshot, error) {
	start := time.Now()

	if analysisID == "" {
		analysisID = uuid.New().String()
	}

	if len(records) > s.cfg.MaxRecordsPerAnalysis {
		return nil, pkgerrors.NewValidationError("record batch exceeds analysis limit").
			WithDetails(map[string]interface{}{
				"records": len(records),
				"limit":   s.cfg.MaxRecordsPerAnalysis,
			})
	}

	if err := s.validator.ValidateBatch(records); err != nil {
		return nil, err
	}

	graph := s.builder.Build(records)
	stats := s.analyzer.Stats(graph)

	snapshot := &ports.AnalysisSnapshot{
		ID:          analysisID,
		AnalyzedAt:  time.Now().UTC(),
		RecordCount: len(records),
		Graph:       graph,
		Stats:       stats,
	}

	if err := s.store.Put(ctx, snapshot); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to store analysis snapshot")
	}

	s.logger.Info("Analysis completed",
		zap.String("analysisID", snapshot.ID),
		zap.Int("records", len(records)),
		zap.Int("nodes", stats.TotalFeatures),
		zap.Int("dependencies", stats.TotalDependencies),
		zap.Duration("duration", time.Since(start)),
	)

	return snapshot, nil
}

// Current returns the snapshot currently being served
func (s *AnalysisService) Current(ctx context.Context) (*ports.AnalysisSnapshot, error) {
	snapshot, ok := s.store.Current(ctx)
	if !ok {
		return nil, pkgerrors.NewNotFoundError("analysis")
	}
	return snapshot, nil
}
