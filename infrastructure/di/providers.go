package di

import (
	"context"
	"fmt"

	"evograph/application/commands"
	"evograph/application/commands/bus"
	commands_handlers "evograph/application/commands/handlers"
	"evograph/application/ports"
	"evograph/application/queries"
	querybus "evograph/application/queries/bus"
	queries_handlers "evograph/application/queries/handlers"
	"evograph/application/services"
	domainconfig "evograph/domain/config"
	"evograph/domain/core/validators"
	domainservices "evograph/domain/services"
	"evograph/infrastructure/config"
	"evograph/infrastructure/persistence/memory"
	"evograph/infrastructure/source"
	"evograph/pkg/auth"
	"evograph/pkg/observability"

	"go.uber.org/zap"
)

// ProvideLogger builds the zap logger for the configured environment.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}

	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = level
	}

	return zapCfg.Build()
}

// ProvideAnalysisConfig loads the domain configuration for the environment
func ProvideAnalysisConfig(cfg *config.Config) (*domainconfig.AnalysisConfig, error) {
	analysisCfg := domainconfig.LoadAnalysisConfig(cfg.Environment)
	analysisCfg.DefaultCanvasWidth = cfg.DefaultCanvasWidth
	analysisCfg.DefaultCanvasHeight = cfg.DefaultCanvasHeight

	if err := analysisCfg.Validate(); err != nil {
		return nil, err
	}

	return analysisCfg, nil
}

// ProvideRecordValidator creates the change record validator
func ProvideRecordValidator() *validators.RecordValidator {
	return validators.NewRecordValidator()
}

// ProvideCategorizer creates the keyword categorizer
func ProvideCategorizer() *domainservices.Categorizer {
	return domainservices.NewCategorizer()
}

// ProvideInferenceEngine creates the dependency inference engine
func ProvideInferenceEngine() *domainservices.InferenceEngine {
	return domainservices.NewInferenceEngine()
}

// ProvideGraphBuilder creates the graph builder
func ProvideGraphBuilder(
	categorizer *domainservices.Categorizer,
	inference *domainservices.InferenceEngine,
) *domainservices.GraphBuilder {
	return domainservices.NewGraphBuilder(categorizer, inference)
}

// ProvideGraphAnalyzer creates the statistics analyzer
func ProvideGraphAnalyzer() *domainservices.GraphAnalyzer {
	return domainservices.NewGraphAnalyzer()
}

// ProvideRingLayout creates the layout engine
func ProvideRingLayout(analysisCfg *domainconfig.AnalysisConfig) *domainservices.RingLayout {
	return domainservices.NewRingLayout(analysisCfg)
}

// ProvideSimilarityService creates the fuzzy feature search service
func ProvideSimilarityService(analysisCfg *domainconfig.AnalysisConfig) *domainservices.SimilarityService {
	return domainservices.NewSimilarityService(analysisCfg)
}

// ProvideAnalysisStore creates the in-memory snapshot store
func ProvideAnalysisStore() ports.AnalysisStore {
	return memory.NewAnalysisStore()
}

// ProvideRecordSource creates the startup record source
func ProvideRecordSource(cfg *config.Config, logger *zap.Logger) ports.RecordSource {
	return source.NewFileSource(cfg.RecordsFile, logger)
}

// ProvideAnalysisService creates the analysis application service
func ProvideAnalysisService(
	builder *domainservices.GraphBuilder,
	analyzer *domainservices.GraphAnalyzer,
	validator *validators.RecordValidator,
	store ports.AnalysisStore,
	analysisCfg *domainconfig.AnalysisConfig,
	logger *zap.Logger,
) *services.AnalysisService {
	return services.NewAnalysisService(builder, analyzer, validator, store, analysisCfg, logger)
}

// ProvideMetricsRecorder creates the metrics recorder
func ProvideMetricsRecorder(logger *zap.Logger) *observability.Recorder {
	return observability.NewRecorder(logger)
}

// ProvideIPRateLimiter creates the per-IP rate limiter. Returns nil when
// rate limiting is disabled.
func ProvideIPRateLimiter(cfg *config.Config) *auth.IPRateLimiter {
	if cfg.RateLimitPerMinute <= 0 {
		return nil
	}
	return auth.NewIPRateLimiter(cfg.RateLimitPerMinute)
}

// ProvideInMemoryCache creates a simple in-memory cache
// In production, this would be Redis or similar
func ProvideInMemoryCache() *InMemoryCache {
	return NewInMemoryCache()
}

// typedCommand narrows the bus's untyped command to the concrete type C
// before invoking handle.
func typedCommand[C bus.Command](handle func(context.Context, C) error) bus.CommandHandler {
	return bus.CommandHandlerFunc(func(ctx context.Context, cmd bus.Command) error {
		typed, ok := cmd.(C)
		if !ok {
			return fmt.Errorf("invalid command type")
		}
		return handle(ctx, typed)
	})
}

// typedQuery narrows the bus's untyped query to the concrete type Q
// before invoking handle.
func typedQuery[Q querybus.Query](handle func(context.Context, Q) (interface{}, error)) querybus.QueryHandler {
	return querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
		typed, ok := query.(Q)
		if !ok {
			return nil, fmt.Errorf("invalid query type")
		}
		return handle(ctx, typed)
	})
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	analysisService *services.AnalysisService,
	cache *InMemoryCache,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	pipeline := bus.NewPipeline(
		bus.ValidationMiddleware(),
		bus.LoggingMiddleware(&zapLoggerAdapter{logger}),
	)

	// Cached query results are dropped after a successful analysis so
	// reads see the new snapshot.
	analyze := commands_handlers.NewAnalyzeRecordsHandler(analysisService, logger)
	commandBus.Register(commands.AnalyzeRecordsCommand{}, pipeline.Execute(typedCommand(
		func(ctx context.Context, cmd commands.AnalyzeRecordsCommand) error {
			if err := analyze.Handle(ctx, cmd); err != nil {
				return err
			}
			return cache.Clear(ctx)
		})))

	return commandBus
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	store ports.AnalysisStore,
	layout *domainservices.RingLayout,
	similarity *domainservices.SimilarityService,
	cache *InMemoryCache,
	metrics *observability.Recorder,
	cfg *config.Config,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	// Caching wraps metrics, so cache hits skip the timers entirely.
	instrument := func(handler querybus.QueryHandler) querybus.QueryHandler {
		if cfg.EnableMetrics {
			handler = querybus.NewMetricsMiddleware(&metricsAdapter{metrics}).Wrap(handler)
		}
		if cfg.EnableQueryCache {
			handler = querybus.NewCachingMiddleware(cache, cfg.QueryCacheTTLSeconds).Wrap(handler)
		}
		return handler
	}

	getAnalysis := queries_handlers.NewGetAnalysisHandler(store, logger)
	queryBus.Register(queries.GetAnalysisQuery{}, instrument(typedQuery(
		func(ctx context.Context, q queries.GetAnalysisQuery) (interface{}, error) {
			return getAnalysis.Handle(ctx, q)
		})))

	getGraphData := queries_handlers.NewGetGraphDataHandler(store, logger)
	queryBus.Register(queries.GetGraphDataQuery{}, instrument(typedQuery(
		func(ctx context.Context, q queries.GetGraphDataQuery) (interface{}, error) {
			return getGraphData.Handle(ctx, q)
		})))

	getGraphStats := queries_handlers.NewGetGraphStatsHandler(store, logger)
	queryBus.Register(queries.GetGraphStatsQuery{}, instrument(typedQuery(
		func(ctx context.Context, q queries.GetGraphStatsQuery) (interface{}, error) {
			return getGraphStats.Handle(ctx, q)
		})))

	getLayout := queries_handlers.NewGetLayoutHandler(store, layout, logger)
	queryBus.Register(queries.GetLayoutQuery{}, instrument(typedQuery(
		func(ctx context.Context, q queries.GetLayoutQuery) (interface{}, error) {
			return getLayout.Handle(ctx, q)
		})))

	getNodes := queries_handlers.NewGetNodesHandler(store, logger)
	queryBus.Register(queries.GetNodesQuery{}, instrument(typedQuery(
		func(ctx context.Context, q queries.GetNodesQuery) (interface{}, error) {
			return getNodes.Handle(ctx, q)
		})))

	findSimilar := queries_handlers.NewFindSimilarFeaturesHandler(store, similarity, logger)
	queryBus.Register(queries.FindSimilarFeaturesQuery{}, instrument(typedQuery(
		func(ctx context.Context, q queries.FindSimilarFeaturesQuery) (interface{}, error) {
			return findSimilar.Handle(ctx, q)
		})))

	return queryBus
}

// metricsAdapter bridges the observability recorder to the query bus.
type metricsAdapter struct {
	recorder *observability.Recorder
}

func (a *metricsAdapter) StartTimer(metric, label string) querybus.Timer {
	return a.recorder.StartTimer(metric, label)
}

func (a *metricsAdapter) Increment(metric, label string) {
	a.recorder.Increment(metric, label)
}

// zapLoggerAdapter bridges zap to the command bus logger, reading the
// variadic arguments as alternating key/value pairs.
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Info(msg string, kv ...interface{}) {
	a.logger.Info(msg, pairsToZap(kv)...)
}

func (a *zapLoggerAdapter) Error(msg string, kv ...interface{}) {
	a.logger.Error(msg, pairsToZap(kv)...)
}

func pairsToZap(kv []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		fields = append(fields, zap.Any(key, kv[i+1]))
	}
	return fields
}
