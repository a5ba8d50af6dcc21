package jobs

import (
	"context"
	"time"

	"github.com/garnizeh/staffing/pkg/models"
)

// Source is the state being persisted. Version must grow on every change.
type Source interface {
	Version() uint64
	Snapshot() models.Snapshot
}

// Sink stores snapshots.
type Sink interface {
	SaveSnapshot(ctx context.Context, s models.Snapshot) error
}

// BackoffDuration returns exponential backoff duration for attempt n
func BackoffDuration(attempt int) time.Duration {
	if attempt <= 0 {
		return time.Second
	}
	// base 2^attempt seconds, capped
	d := time.Duration(1<<uint(min(attempt, 16))) * time.Second
	limit := 5 * time.Minute
	if d > limit {
		return limit
	}
	return d
}
