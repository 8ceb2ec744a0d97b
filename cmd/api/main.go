package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/inventory/pkg/app"
	"github.com/ghuser/inventory/pkg/config"
	"github.com/ghuser/inventory/pkg/database"
	"github.com/ghuser/inventory/pkg/errhttp"
	"github.com/ghuser/inventory/pkg/events"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	"github.com/ghuser/inventory/pkg/telemetry"
	itemApi "github.com/ghuser/inventory/services/item/application/api"
	itemSubscribers "github.com/ghuser/inventory/services/item/application/subscribers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	errhttp.SetProduction(cfg.Environment == config.EnvProduction)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to mongodb", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer db.Close(ctx) //nolint:errcheck
	log.Info("mongodb connected", "database", cfg.MongoDatabase)

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Config:   cfg,
		Db:       db,
		Logger:   log,
		EventBus: eventBus,
	}

	if err := itemSubscribers.RegisterAudit(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(cfg.ServiceName, cfg.ServiceVersion, []httpx.Resource{
		{Name: "MongoDb", Checker: db},
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	itemApi.ItemRoutes(r, appConfig)

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
