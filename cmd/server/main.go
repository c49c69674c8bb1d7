// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/planmate/planmate/internal/adapters/http"
	"github.com/planmate/planmate/internal/adapters/http/handlers"
	"github.com/planmate/planmate/internal/adapters/http/middleware"

	storage "github.com/planmate/planmate/internal/adapters/storage/mongo"
	"github.com/planmate/planmate/internal/app"
	"github.com/planmate/planmate/internal/platform/config"
	"github.com/planmate/planmate/internal/platform/health"
	"github.com/planmate/planmate/internal/platform/logging"
	"github.com/planmate/planmate/internal/platform/session"
	"github.com/planmate/planmate/internal/platform/telemetry"
	"github.com/planmate/planmate/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeConnectTimeout   = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// Storage: one guarded connection shared by every repository.
	guard := storage.NewGuard(storage.GuardConfig{
		MaxFailures:   cfg.Mongo.CircuitBreaker.MaxFailures,
		Timeout:       cfg.Mongo.CircuitBreaker.Timeout,
		HalfOpenLimit: cfg.Mongo.CircuitBreaker.HalfOpenLimit,
		QueryTimeout:  cfg.Mongo.QueryTimeout,
	}, otel.Metrics)

	connectCtx, connectCancel := context.WithTimeout(ctx, storeConnectTimeout)
	store, err := storage.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout, guard, logger)
	connectCancel()
	if err != nil {
		return fmt.Errorf("connecting storage: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	do.ProvideValue(injector, store)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("storage shutdown error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// initTelemetry returns a zero-value bundle when telemetry is disabled; its
// Metrics field is then nil, which every consumer tolerates.
func initTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Providers, error) {
	if !cfg.Telemetry.Enabled {
		return &telemetry.Providers{}, nil
	}
	return telemetry.Setup(ctx, telemetry.Config{
		ServiceName: cfg.Telemetry.ServiceName,
		Exporter:    cfg.Telemetry.Exporter,
		Endpoint:    cfg.Telemetry.Endpoint,
	})
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Repositories on the shared store.
	do.Provide(injector, func(i do.Injector) (ports.ProjectRepository, error) {
		return storage.NewProjectRepository(do.MustInvoke[*storage.Store](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ProjectStateRepository, error) {
		return storage.NewProjectStateRepository(do.MustInvoke[*storage.Store](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TaskRepository, error) {
		return storage.NewTaskRepository(do.MustInvoke[*storage.Store](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.AuditLogRepository, error) {
		return storage.NewAuditLogRepository(do.MustInvoke[*storage.Store](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.UserRepository, error) {
		return storage.NewUserRepository(do.MustInvoke[*storage.Store](i)), nil
	})

	// Sessions and the acting-user capability.
	do.Provide(injector, func(_ do.Injector) (ports.SessionStore, error) {
		return session.NewStore(cfg.Session.TTL), nil
	})
	do.Provide(injector, func(_ do.Injector) (ports.CurrentUserProvider, error) {
		return session.NewContextProvider(), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (*app.AuditTrail, error) {
		return app.NewAuditTrail(
			do.MustInvoke[ports.AuditLogRepository](i),
			do.MustInvoke[ports.CurrentUserProvider](i),
			logger,
			do.MustInvoke[*telemetry.Metrics](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.AuditRecorder, error) {
		return do.MustInvoke[*app.AuditTrail](i), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.AuditService, error) {
		return do.MustInvoke[*app.AuditTrail](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		return app.NewProjectService(
			do.MustInvoke[ports.ProjectRepository](i),
			do.MustInvoke[ports.ProjectStateRepository](i),
			do.MustInvoke[ports.CurrentUserProvider](i),
			do.MustInvoke[ports.AuditRecorder](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		return app.NewTaskService(
			do.MustInvoke[ports.TaskRepository](i),
			do.MustInvoke[ports.ProjectStateRepository](i),
			do.MustInvoke[ports.CurrentUserProvider](i),
			do.MustInvoke[ports.AuditRecorder](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectStateService, error) {
		return app.NewProjectStateService(
			do.MustInvoke[ports.ProjectStateRepository](i),
			do.MustInvoke[ports.TaskRepository](i),
			do.MustInvoke[ports.TaskService](i),
			do.MustInvoke[ports.AuditRecorder](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		return app.NewAuthService(
			do.MustInvoke[ports.UserRepository](i),
			do.MustInvoke[ports.SessionStore](i),
			do.MustInvoke[ports.CurrentUserProvider](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Handlers.
	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		return handlers.NewProjectHandler(
			do.MustInvoke[ports.ProjectService](i),
			do.MustInvoke[ports.ProjectStateService](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		return handlers.NewTaskHandler(
			do.MustInvoke[ports.TaskService](i),
			do.MustInvoke[ports.ProjectStateService](i),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.AuditHandler, error) {
		return handlers.NewAuditHandler(do.MustInvoke[ports.AuditService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		return handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		projH := do.MustInvoke[*handlers.ProjectHandler](i)
		taskH := do.MustInvoke[*handlers.TaskHandler](i)
		auditH := do.MustInvoke[*handlers.AuditHandler](i)
		authH := do.MustInvoke[*handlers.AuthHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		sessions := do.MustInvoke[ports.SessionStore](i)

		return adapthttp.NewRouter(projH, taskH, auditH, authH, healthH,
			middleware.Chain(
				middleware.Recovery(logger),
				middleware.RequestID(),
				middleware.CorrelationID(),
				middleware.OpenTelemetry(metrics),
				middleware.Logging(logger),
				middleware.Session(sessions),
				middleware.Timeout(cfg.Server.WriteTimeout),
			),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
