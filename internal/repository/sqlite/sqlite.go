package sqlite

import (
	"time"

	"log/slog"

	"github.com/garnizeh/staffing/internal/db"
	"github.com/garnizeh/staffing/pkg/repository"
)

// SQLiteRepo persists engine snapshots using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.SnapshotRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}
