package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	dbfs "github.com/garnizeh/staffing/db"
	"github.com/garnizeh/staffing/internal/config"
	"github.com/garnizeh/staffing/internal/db"
	"github.com/garnizeh/staffing/internal/fixtures"
	"github.com/garnizeh/staffing/internal/repository/sqlite"
	"github.com/garnizeh/staffing/pkg/repository"
	"github.com/garnizeh/staffing/pkg/repository/mock"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabasePath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	// seed the fixtures only into a database without a saved snapshot
	repo := sqlite.New(database, nil)
	if _, err := repo.LoadSnapshot(ctx); err == nil {
		fmt.Println("Database already holds a snapshot; fixtures not loaded.")
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Snapshot check error: %v\n", err)
		os.Exit(1)
	}

	snap, err := fixtures.Load(ctx, dbfs.SeedFiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fixtures error: %v\n", err)
		os.Exit(1)
	}
	engine, err := mock.NewEngine(mock.EngineOptions{})
	if err == nil {
		err = engine.Restore(*snap)
	}
	if err == nil {
		err = repo.SaveSnapshot(ctx, engine.Snapshot())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database initialized successfully.")
}
