package di

import (
	"evograph/application/commands/bus"
	"evograph/application/ports"
	querybus "evograph/application/queries/bus"
	"evograph/application/services"
	domainconfig "evograph/domain/config"
	"evograph/infrastructure/config"
	"evograph/pkg/auth"
	"evograph/pkg/observability"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	AnalysisConfig  *domainconfig.AnalysisConfig
	Logger          *zap.Logger
	Store           ports.AnalysisStore
	RecordSource    ports.RecordSource
	AnalysisService *services.AnalysisService
	CommandBus      *bus.CommandBus
	QueryBus        *querybus.QueryBus
	Cache           *InMemoryCache
	Metrics         *observability.Recorder
	RateLimiter     *auth.IPRateLimiter
}

// Shutdown releases resources held by the container
func (c *Container) Shutdown() {
	c.Cache.Stop()
	_ = c.Logger.Sync()
}
