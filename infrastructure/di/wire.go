//go:build wireinject
// +build wireinject

package di

import (
	"evograph/infrastructure/config"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAnalysisConfig,
	ProvideRecordValidator,
	ProvideCategorizer,
	ProvideInferenceEngine,
	ProvideGraphBuilder,
	ProvideGraphAnalyzer,
	ProvideRingLayout,
	ProvideSimilarityService,
	ProvideAnalysisStore,
	ProvideRecordSource,
	ProvideAnalysisService,
	ProvideMetricsRecorder,
	ProvideIPRateLimiter,
	ProvideInMemoryCache,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
