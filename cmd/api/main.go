// Package main is the entry point for the train graph API server.
// It only wires dependencies together and starts the server.
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
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cxd309/stem-train-planning/internal/config"
	"github.com/cxd309/stem-train-planning/internal/handler"
	"github.com/cxd309/stem-train-planning/internal/logging"
	"github.com/cxd309/stem-train-planning/internal/middleware"
	"github.com/cxd309/stem-train-planning/internal/repo"
	"github.com/cxd309/stem-train-planning/internal/service"
	"github.com/cxd309/stem-train-planning/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := logging.New(cfg.LogLevel, cfg.LogFile)
	slog.SetDefault(logger)

	// --- Services ---------------------------------------------------------
	scenarios, err := service.NewScenarioService(cfg.CacheSize, logger)
	if err != nil {
		slog.Error("failed to create scenario service", "error", err)
		os.Exit(1)
	}

	// Run history is optional. A nil RunServicer makes /runs answer 404.
	var runs handler.RunServicer
	if cfg.HistoryEnabled() {
		pool, err := openHistory(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to open run history database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		runs = service.NewRunService(repo.NewRunRepo(pool), scenarios)
		slog.Info("run history enabled")
	}

	// --- Router -----------------------------------------------------------
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Mount("/", handler.NewServer(scenarios, runs, logger).Routes(cfg.MaxBodyBytes))

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openHistory connects to Postgres and applies pending migrations.
func openHistory(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	applied, err := migrations.UpPool(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	slog.Info("database ready", "migrations_applied", applied)
	return pool, nil
}
