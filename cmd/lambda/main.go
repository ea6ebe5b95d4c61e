package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"evograph/application/commands"
	"evograph/infrastructure/config"
	"evograph/infrastructure/di"
	"evograph/interfaces/http/rest"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Shared across invocations of one execution environment.
var (
	chiLambda     *chiadapter.ChiLambdaV2
	container     *di.Container
	coldStart     = true
	coldStartTime time.Time
)

func init() {
	coldStartTime = time.Now()
	log.Println("Lambda cold start initiated")

	if err := setup(); err != nil {
		log.Fatal(err)
	}

	log.Printf("Lambda cold start completed in %v", time.Since(coldStartTime))
}

// setup builds the container and router once per execution environment.
func setup() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	container, err = di.InitializeContainer(cfg)
	if err != nil {
		return fmt.Errorf("initialize container: %w", err)
	}

	// Analyze the bundled records file so read endpoints have data
	// immediately after a cold start.
	bootstrapAnalysis(context.Background(), container)

	router := rest.NewRouter(
		container.CommandBus,
		container.QueryBus,
		container.Config,
		container.RateLimiter,
		container.Logger,
	)

	// The proxy adapter needs the concrete chi mux
	mux, ok := router.Setup().(*chi.Mux)
	if !ok {
		return fmt.Errorf("router handler is not a chi.Mux")
	}
	chiLambda = chiadapter.NewV2(mux)
	return nil
}

// bootstrapAnalysis loads and analyzes the configured records file.
func bootstrapAnalysis(ctx context.Context, c *di.Container) {
	records, err := c.RecordSource.Load(ctx)
	if err != nil {
		c.Logger.Warn("Startup record load failed, starting with empty analysis",
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
	if err := c.CommandBus.Send(ctx, cmd); err != nil {
		c.Logger.Warn("Startup analysis failed, starting with empty analysis",
			zap.Int("records", len(records)),
			zap.Error(err),
		)
		return
	}

	c.Logger.Info("Startup analysis completed", zap.Int("records", len(records)))
}

// Handler proxies one API Gateway event through the router.
func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	resp, err := chiLambda.ProxyWithContextV2(ctx, req)
	annotate(&resp, req)

	if container != nil && container.Logger != nil && resp.StatusCode >= 500 {
		container.Logger.Error("Lambda error response",
			zap.String("method", req.RequestContext.HTTP.Method),
			zap.String("path", req.RequestContext.HTTP.Path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", resp.Body),
		)
	}

	return resp, err
}

// annotate stamps the monitoring headers onto every response.
func annotate(resp *events.APIGatewayV2HTTPResponse, req events.APIGatewayV2HTTPRequest) {
	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}

	if coldStart {
		resp.Headers["X-Cold-Start"] = "true"
		resp.Headers["X-Cold-Start-Duration"] = time.Since(coldStartTime).String()
		coldStart = false
	} else {
		resp.Headers["X-Cold-Start"] = "false"
	}

	if id := req.RequestContext.RequestID; id != "" {
		resp.Headers["X-Request-ID"] = id
	}
}

func main() {
	lambda.Start(Handler)
}
