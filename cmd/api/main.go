// Copyright (c) 2026 The World. All rights reserved.
// Author: aman-SINGH7999

// Command api is the entry point for the WorldDoc HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the document store (PostgreSQL with migrations, or embedded bolt).
//  4. Connect to Redis when a cache is configured.
//  5. Load the auth service's token verification key.
//  6. Wire domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/aman-SINGH7999/the-world/internal/api"
	"github.com/aman-SINGH7999/the-world/internal/core/dashboard"
	"github.com/aman-SINGH7999/the-world/internal/core/media"
	"github.com/aman-SINGH7999/the-world/internal/core/topic"
	"github.com/aman-SINGH7999/the-world/internal/platform/bolt"
	"github.com/aman-SINGH7999/the-world/internal/platform/config"
	"github.com/aman-SINGH7999/the-world/internal/platform/constants"
	"github.com/aman-SINGH7999/the-world/internal/platform/migration"
	pgstore "github.com/aman-SINGH7999/the-world/internal/platform/postgres"
	redisstore "github.com/aman-SINGH7999/the-world/internal/platform/redis"
	"github.com/aman-SINGH7999/the-world/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("store", cfg.StoreDriver),
	)

	// Startup deadline so misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Document Store ─────────────────────────────────────────────────
	var (
		topicRepo topic.Repository
		mediaRepo media.Repository
		health    = api.HealthDependencies{DatabaseName: cfg.StoreDriver}
	)

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		topicRepo = topic.NewPostgresRepository(pool)
		mediaRepo = media.NewPostgresRepository(pool)
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }

	case config.DriverBolt:
		db, err := bolt.Open(cfg.BoltPath, log, append(topic.Buckets(), media.Buckets()...)...)
		must(log, err, "open bolt store")
		defer func() {
			log.Info("closing_bolt_store")
			if cerr := db.Close(); cerr != nil {
				log.Error("bolt_close_error", slog.Any("error", cerr))
			}
		}()

		topicRepo = topic.NewBoltRepository(db)
		mediaRepo = media.NewBoltRepository(db)
		health.CheckDatabase = func(ctx context.Context) error { return bolt.Ping(ctx, db) }
	}

	// ── 4. Redis (optional read cache) ────────────────────────────────────
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		topicRepo = topic.NewCachedRepository(topicRepo, rdb, cfg.CacheTTL, log)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 5. Auth Collaborator ──────────────────────────────────────────────
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, cfg.JWTIssuer)
	must(log, err, "load token verification key")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	topicService := topic.NewService(topicRepo, log)
	mediaService := media.NewService(mediaRepo, log)
	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Topic:     topic.NewHandler(topicService),
		Media:     media.NewHandler(mediaService),
		Dashboard: dashboard.NewHandler(dashboard.NewService(topicService, mediaService)),
	}

	// ── 7. HTTP Server + Graceful Shutdown ────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, verifier, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String(constants.FieldApp, constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
