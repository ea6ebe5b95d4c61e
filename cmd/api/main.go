package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"evograph/application/commands"
	"evograph/infrastructure/config"
	"evograph/infrastructure/di"
	"evograph/interfaces/http/rest"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	container, err := di.InitializeContainer(cfg)
	if err != nil {
		return fmt.Errorf("initialize container: %w", err)
	}
	defer container.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Analyze the configured records file before accepting traffic. A
	// missing or malformed file leaves the server idle, not dead.
	bootstrapAnalysis(ctx, container)

	router := rest.NewRouter(
		container.CommandBus,
		container.QueryBus,
		container.Config,
		container.RateLimiter,
		container.Logger,
	)

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		container.Logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	container.Logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Server shutdown error", zap.Error(err))
	}
	return nil
}

// bootstrapAnalysis loads and analyzes the configured records file.
func bootstrapAnalysis(ctx context.Context, container *di.Container) {
	records, err := container.RecordSource.Load(ctx)
	if err != nil {
		container.Logger.Warn("Startup record load failed, starting with empty analysis",
			zap.Error(err),
		)
		return
	}
	if len(records) == 0 {
		return
	}

	cmd := commands.AnalyzeRecordsCommand{
		AnalysisID: uuid.New().String(),
		Records:    records,
	}
	if err := container.CommandBus.Send(ctx, cmd); err != nil {
		container.Logger.Warn("Startup analysis failed, starting with empty analysis",
			zap.Int("records", len(records)),
			zap.Error(err),
		)
		return
	}

	container.Logger.Info("Startup analysis completed", zap.Int("records", len(records)))
}
