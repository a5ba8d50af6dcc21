package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garnizeh/staffing/api"
	embedded "github.com/garnizeh/staffing/db"
	"github.com/garnizeh/staffing/internal/config"
	"github.com/garnizeh/staffing/internal/db"
	"github.com/garnizeh/staffing/internal/fixtures"
	"github.com/garnizeh/staffing/internal/jobs"
	"github.com/garnizeh/staffing/internal/repository/sqlite"
	"github.com/garnizeh/staffing/pkg/repository"
	"github.com/garnizeh/staffing/pkg/repository/mock"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	api.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "err", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting staffing server", "version", version, "build_time", buildTime)
	ctx := context.Background()

	engine, err := mock.NewEngine(mock.EngineOptions{
		MinNoteLength:   cfg.Engine.MinNoteLength,
		VacancyPageSize: cfg.Engine.VacancyPageSize,
		CompanyPageSize: cfg.Engine.CompanyPageSize,
		Locale:          cfg.Engine.Locale,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	var store *sqlite.SQLiteRepo
	if cfg.Snapshot.Enabled {
		conn, err := db.New(ctx, cfg.DatabasePath, logger)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.Error("close db", "err", err)
			}
		}()
		if cfg.MigrateOnStart {
			if err := db.Migrate(ctx, conn, embedded.Migrations); err != nil {
				return err
			}
		}
		store = sqlite.New(conn, logger)
	}

	if err := bootstrap(ctx, cfg, engine, store, logger); err != nil {
		return err
	}

	var flusher *jobs.Flusher
	if store != nil {
		flusher = jobs.NewFlusher(engine, store, logger, cfg.Snapshot.Interval)
		flusher.Start(ctx)
	}

	server := &http.Server{
		Addr: cfg.Addr,
		Handler: api.SetupRoutes(version, buildTime, api.Services{
			Vacancies: engine.Vacancies,
			Companies: engine.Companies,
			Contacts:  engine.Companies,
		}),
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	var runErr error
	select {
	case <-quit:
		logger.Info("shutting down server")
	case err, ok := <-serveErr:
		if ok {
			runErr = fmt.Errorf("serve: %w", err)
		}
	}

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "err", err)
	}

	if flusher != nil {
		flusher.Stop()
		if _, err := flusher.Flush(shutdownCtx); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}
	return runErr
}

// bootstrap restores the last saved snapshot, falling back to the embedded
// fixtures when nothing was saved yet.
func bootstrap(ctx context.Context, cfg *config.Config, engine *mock.Engine, store *sqlite.SQLiteRepo, logger *slog.Logger) error {
	if store != nil {
		snap, err := store.LoadSnapshot(ctx)
		switch {
		case err == nil:
			return engine.Restore(*snap)
		case !errors.Is(err, repository.ErrNotFound):
			return fmt.Errorf("load snapshot: %w", err)
		}
	}
	if !cfg.Engine.SeedFixtures {
		logger.Info("starting with an empty engine")
		return nil
	}
	if _, err := fixtures.Seed(ctx, embedded.SeedFiles, engine); err != nil {
		return err
	}
	if store != nil {
		if err := store.SaveSnapshot(ctx, engine.Snapshot()); err != nil {
			return fmt.Errorf("save seeded snapshot: %w", err)
		}
	}
	return nil
}
