package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"spendsight/internal/config"
	"spendsight/internal/handlers"
	"spendsight/internal/middleware"
	"spendsight/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
	}))

	// Services
	metrics := services.NewPrometheusMetrics()
	flowLogger := services.NewFlowLogger(logger)
	linkTokens := services.NewLinkTokenService(&cfg.Tokens)
	normalizer := services.NewNormalizeService()
	insights := services.NewInsightsService(normalizer)
	csvImport := services.NewCSVImportService()
	sandboxData := services.NewSandboxDataService()

	var aggregator services.AggregatorClientInterface
	if cfg.Aggregator.Environment == "live" {
		aggregatorBreaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
		aggregator = services.NewAggregatorClient(&cfg.Aggregator, aggregatorBreaker, flowLogger, logger)
		logger.Info("using live aggregator", "base_url", cfg.Aggregator.BaseURL)
	} else {
		aggregator = services.NewSandboxAggregator(&cfg.Aggregator, linkTokens, sandboxData, flowLogger)
		logger.Info("using sandbox aggregator")
	}

	assistantBreaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	assistant := services.NewAssistantService(&cfg.Assistant, assistantBreaker, flowLogger, logger)
	if !assistant.Enabled() {
		logger.Warn("assistant disabled, no API key configured")
	}

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(cfg)
	docsHandler := handlers.NewDocsHandler()
	linkHandler := handlers.NewLinkHandler(aggregator, metrics)
	transactionHandler := handlers.NewTransactionHandler(aggregator, normalizer, csvImport, &cfg.Import, flowLogger, metrics)
	insightsHandler := handlers.NewInsightsHandler(insights, flowLogger, metrics)
	assistantHandler := handlers.NewAssistantHandler(assistant, insights, metrics)
	devHandler := handlers.NewDevHandler(cfg, sandboxData)

	// Routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/docs", docsHandler.ServeScalarUI)
	e.GET("/docs/swagger.json", docsHandler.ServeOAS3JSON)

	api := e.Group("/api/v1")
	api.POST("/link/token", linkHandler.CreateLinkToken)
	api.POST("/link/sandbox/public-token", linkHandler.CreateSandboxPublicToken)
	api.POST("/link/exchange", linkHandler.ExchangePublicToken)
	api.GET("/link/institutions", linkHandler.ListInstitutions)
	api.POST("/transactions/fetch", transactionHandler.FetchTransactions)
	api.POST("/transactions/import", transactionHandler.ImportTransactions)
	api.POST("/insights", insightsHandler.ComputeInsights)
	api.POST("/assistant/chat", assistantHandler.Chat)
	api.GET("/dev/sample-csv", devHandler.SampleCSV)

	// Start server
	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited")
}
