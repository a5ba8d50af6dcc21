package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/garnizeh/staffing/internal/config"
	"github.com/garnizeh/staffing/internal/db"
	"github.com/garnizeh/staffing/internal/repository/sqlite"
)

func main() {
	in := flag.String("in", "", "Backup file (defaults to <database_path>.bak)")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	src := *in
	if src == "" {
		src = cfg.DatabasePath + ".bak"
	}
	dst := cfg.DatabasePath

	// refuse backups whose snapshot cannot be read back
	if err := verify(ctx, src); err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database restore completed.")
}

func verify(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	database, err := db.New(ctx, path, nil)
	if err != nil {
		return err
	}
	defer database.Close()
	if _, err := sqlite.New(database, nil).LoadSnapshot(ctx); err != nil {
		return fmt.Errorf("backup %s: %w", path, err)
	}
	return nil
}
