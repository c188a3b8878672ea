// Copyright (c) 2026 Marquee. All rights reserved.

/*
Marquee is a server-rendered booking directory for live music: venues,
artists, and the shows that connect them.

Startup sequence:

 1. Load configuration from the environment (.env in development).
 2. Initialize structured logging.
 3. Connect PostgreSQL and Redis.
 4. Apply pending schema migrations.
 5. Wire repositories, services, and page handlers.
 6. Serve HTTP until an interrupt, then drain gracefully.
*/
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/marquee-live/marquee/internal/core/artist"
	"github.com/marquee-live/marquee/internal/core/show"
	"github.com/marquee-live/marquee/internal/core/venue"
	"github.com/marquee-live/marquee/internal/platform/config"
	"github.com/marquee-live/marquee/internal/platform/constants"
	"github.com/marquee-live/marquee/internal/platform/migration"
	"github.com/marquee-live/marquee/internal/platform/postgres"
	"github.com/marquee-live/marquee/internal/platform/redis"
	"github.com/marquee-live/marquee/internal/web"
	"github.com/marquee-live/marquee/internal/web/flash"
	"github.com/marquee-live/marquee/internal/web/render"
)

func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config_load_failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	logger.Info("starting",
		slog.String("app", constants.AppName),
		slog.String("version", constants.AppVersion),
		slog.String("environment", cfg.Environment),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Infrastructure.
	pool := must(postgres.NewPool(ctx, cfg.DatabaseURL, logger))
	defer pool.Close()

	redisClient := must(redis.NewClient(ctx, cfg.RedisURL, logger))
	defer func() { _ = redisClient.Close() }()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
		logger.Error("migration_failed", slog.Any("error", err))
		os.Exit(1)
	}

	// Presentation.
	renderer := must(render.New(logger))
	flashes := flash.New(flash.NewRedisQueue(redisClient), logger)

	// Domain wiring.
	venueService := venue.NewService(venue.NewPostgresRepository(pool), logger)
	artistService := artist.NewService(artist.NewPostgresRepository(pool), logger)
	showService := show.NewService(show.NewPostgresRepository(pool), logger)

	server := web.New(ctx, cfg.ServerPort, logger, renderer, flashes, web.Handlers{
		Venues:  venue.NewHandler(venueService, renderer, flashes),
		Artists: artist.NewHandler(artistService, renderer, flashes),
		Shows:   show.NewHandler(showService, renderer, flashes),
	})

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.ListenAndServe() }()

	select {
	case <-ctx.Done():
		logger.Info("shutdown_signal_received")
	case err := <-serveErr:
		logger.Error("server_failed", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("shutdown_complete")
}

// newLogger builds the application logger. Debug runs log to stderr only;
// otherwise log lines are teed to the configured log file with source
// locations for postmortems.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if cfg.Debug || cfg.LogFile == "" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	output := io.Writer(os.Stderr)
	file, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("log_file_open_failed", slog.String("path", cfg.LogFile), slog.Any("error", err))
	} else {
		output = io.MultiWriter(os.Stderr, file)
	}

	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
}

// must exits on a fatal startup error; only used during initialization.
func must[T any](value T, err error) T {
	if err != nil {
		slog.Error("startup_failed", slog.Any("error", err))
		os.Exit(1)
	}
	return value
}
