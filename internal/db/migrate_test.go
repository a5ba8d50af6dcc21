package db_test

import (
	"context"
	"testing"
	"testing/fstest"

	dbfs "github.com/garnizeh/staffing/db"
	"github.com/garnizeh/staffing/internal/db"
)

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()

	d, err := db.New(ctx, ":memory:", nil)
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	defer d.Close()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}

	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&count); err != nil {
		t.Fatalf("scan schema_migrations count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 migrations recorded, got %d", count)
	}

	for _, table := range []string{"companies", "vacancies", "state_changes", "snapshot_meta"} {
		var name string
		if err := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name); err != nil {
			t.Fatalf("expected %s table exists: %v", table, err)
		}
	}
}

func TestMigrate_BadSQL(t *testing.T) {
	ctx := context.Background()
	d, err := db.New(ctx, ":memory:", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer d.Close()

	fsys := fstest.MapFS{
		"migrations/0001_ok.sql":  {Data: []byte(`CREATE TABLE a (id INTEGER);`)},
		"migrations/0002_bad.sql": {Data: []byte(`CREATE TABLE (;`)},
		"migrations/README.md":    {Data: []byte(`ignored`)},
	}
	if err := db.Migrate(ctx, d, fsys); err == nil {
		t.Fatalf("expected error for invalid migration")
	}

	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("only the valid migration should be recorded, got %d", count)
	}
}
