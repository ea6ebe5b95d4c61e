package rest

import (
	"net/http"

	"evograph/application/commands/bus"
	querybus "evograph/application/queries/bus"
	"evograph/infrastructure/config"
	"evograph/interfaces/http/rest/handlers"
	"evograph/interfaces/http/rest/middleware"
	"evograph/pkg/auth"
	pkgerrors "evograph/pkg/errors"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router assembles the chi handler tree with its shared middleware.
type Router struct {
	commandBus  *bus.CommandBus
	queryBus    *querybus.QueryBus
	cfg         *config.Config
	rateLimiter *auth.IPRateLimiter
	logger      *zap.Logger
}

func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	cfg *config.Config,
	rateLimiter *auth.IPRateLimiter,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus:  commandBus,
		queryBus:    queryBus,
		cfg:         cfg,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Setup returns the fully assembled handler tree.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	errorHandler := pkgerrors.NewErrorHandler(rt.logger, rt.cfg.Environment == "development")

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(errorHandler.Middleware)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.RateLimit(rt.rateLimiter, rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Probes sit outside the versioned API
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		analysisHandler := handlers.NewAnalysisHandler(rt.commandBus, rt.queryBus, rt.logger)
		graphHandler := handlers.NewGraphHandler(rt.queryBus, rt.cfg, rt.logger)
		paletteHandler := handlers.NewPaletteHandler(rt.logger)

		// Analysis endpoints. The mutating route requires a bearer token
		// when authentication is enabled.
		r.Group(func(r chi.Router) {
			rt.applyAuth(r)
			r.Post("/analysis", analysisHandler.Analyze)
		})
		r.Get("/analysis", analysisHandler.GetAnalysis)

		// Graph data endpoint for visualization
		r.Get("/graph-data", graphHandler.GetGraphData)

		r.Route("/graph", func(r chi.Router) {
			r.Get("/nodes", graphHandler.GetNodes)
			r.Get("/stats", graphHandler.GetStats)
			r.Get("/layout", graphHandler.GetLayout)
			r.Get("/similar", graphHandler.FindSimilar)
		})

		r.Get("/palette", paletteHandler.GetPalette)
	})

	return router
}

// applyAuth installs the authentication middleware when enabled. A
// misconfigured validator blocks the protected routes instead of
// silently disabling auth.
func (rt *Router) applyAuth(r chi.Router) {
	if !rt.cfg.AuthEnabled {
		return
	}

	validator, err := auth.NewJWTValidator(auth.JWTConfig{
		SigningMethod: "HS256",
		SecretKey:     rt.cfg.JWTSecret,
		Issuer:        rt.cfg.JWTIssuer,
	})
	if err != nil {
		rt.logger.Error("Failed to create JWT validator", zap.Error(err))
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				http.Error(w, `{"error":true,"message":"authentication unavailable","code":503}`, http.StatusServiceUnavailable)
			})
		})
		return
	}

	userLimit := rt.cfg.RateLimitPerMinute * 2
	if userLimit <= 0 {
		userLimit = 240
	}
	userLimiter := auth.NewUserRateLimiter(userLimit)

	r.Use(middleware.Authenticate(validator, userLimiter, rt.logger))
}

func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	// All state is in-memory, so readiness tracks liveness
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
