package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/garnizeh/staffing/internal/config"
	"github.com/garnizeh/staffing/internal/db"
	"github.com/garnizeh/staffing/internal/repository/sqlite"
)

func main() {
	out := flag.String("out", "", "Backup file (defaults to <database_path>.bak)")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	dst := *out
	if dst == "" {
		dst = cfg.DatabasePath + ".bak"
	}
	// VACUUM INTO refuses to overwrite
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DatabasePath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if _, err := database.Exec(ctx, `VACUUM INTO ?`, dst); err != nil {
		fmt.Fprintf(os.Stderr, "Backup error: %v\n", err)
		os.Exit(1)
	}

	info, err := sqlite.New(database, nil).Info(ctx)
	if err != nil {
		fmt.Println("Database backup completed (no snapshot saved yet).")
		return
	}
	fmt.Printf("Database backup completed: %d vacancies, %d companies.\n", info.Vacancies, info.Companies)
}
