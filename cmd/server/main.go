package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"yfmcp/internal/config"
	"yfmcp/internal/handlers"
	"yfmcp/internal/models"
	"yfmcp/internal/provider/yahoo"
	"yfmcp/internal/tools"
	"yfmcp/internal/transport"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	// Stdout carries JSON-RPC frames on the stdio transport, so logs
	// always go to stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("yfmcp_starting",
		"transport", cfg.Transport,
		"log_level", cfg.LogLevel,
	)

	app := models.NewAppContext()
	yf := yahoo.New(logger)
	svc := tools.NewService(yf, app, logger)

	invoker, err := tools.NewInvoker(svc, logger)
	if err != nil {
		logger.Error("failed to build tool registry", "error", err)
		os.Exit(1)
	}

	switch cfg.Transport {
	case config.TransportStdio:
		runStdio(invoker, logger, app)
	case config.TransportHTTP:
		runHTTP(cfg, invoker, logger, app)
	}
}

func runStdio(invoker *tools.Invoker, logger *slog.Logger, app *models.AppContext) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := transport.NewStdioServer(invoker, logger, os.Stdin, os.Stdout)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio_session_error", "error", err)
		os.Exit(1)
	}

	logger.Info("yfmcp_stopped", "requests_processed", app.RequestCount())
}

func runHTTP(cfg *config.Config, invoker *tools.Invoker, logger *slog.Logger, app *models.AppContext) {
	mcpHandler := handlers.NewMCPInvokeHandler(invoker, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Correlation-ID"},
	}))
	r.Use(handlers.CorrelationIDMiddleware)
	r.Use(handlers.LoggingMiddleware(logger))

	r.Get("/health", handlers.HealthCheckHandler(logger))
	r.Post("/mcp", mcpHandler.ServeHTTP)

	srv := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     r,
		ReadTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("yfmcp_listening", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	logger.Info("shutdown_signal_received", "signal", sig.String())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_error", "error", err)
	}

	logger.Info("yfmcp_stopped", "requests_processed", app.RequestCount())
}
