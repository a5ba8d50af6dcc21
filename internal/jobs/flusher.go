package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const DefaultInterval = 30 * time.Second

// Flusher periodically saves a snapshot of its source whenever the source
// version moved since the last successful save. Failed saves are retried
// with exponential backoff.
type Flusher struct {
	src      Source
	sink     Sink
	logger   *slog.Logger
	interval time.Duration

	mu    sync.Mutex
	saved uint64

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewFlusher treats the source's current version as already persisted.
func NewFlusher(src Source, sink Sink, logger *slog.Logger, interval time.Duration) *Flusher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Flusher{
		src:      src,
		sink:     sink,
		logger:   logger,
		interval: interval,
		saved:    src.Version(),
		stop:     make(chan struct{}),
	}
}

// Start launches the flush loop
func (f *Flusher) Start(ctx context.Context) {
	f.wg.Add(1)
	go f.run(ctx)
}

// Stop signals the loop to stop and waits for it. It does not flush; call
// Flush afterwards to persist the final state.
func (f *Flusher) Stop() {
	f.stopOnce.Do(func() { close(f.stop) })
	f.wg.Wait()
}

// Flush saves a snapshot if the source changed. It reports whether a save
// happened.
func (f *Flusher) Flush(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := f.src.Version()
	if v == f.saved {
		return false, nil
	}
	snap := f.src.Snapshot()
	if err := f.sink.SaveSnapshot(ctx, snap); err != nil {
		return false, fmt.Errorf("flush snapshot at version %d: %w", v, err)
	}
	f.saved = v
	f.logger.Info("snapshot saved", "version", v, "vacancies", len(snap.Vacancies), "companies", len(snap.Companies))
	return true, nil
}

// Saved returns the last persisted version.
func (f *Flusher) Saved() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saved
}

func (f *Flusher) run(ctx context.Context) {
	defer f.wg.Done()
	failures := 0
	timer := time.NewTimer(f.interval)
	defer timer.Stop()
	for {
		select {
		case <-f.stop:
			f.logger.Info("flusher stopping")
			return
		case <-ctx.Done():
			f.logger.Info("context canceled, flusher exiting")
			return
		case <-timer.C:
			delay := f.interval
			if _, err := f.Flush(ctx); err != nil {
				failures++
				delay = BackoffDuration(failures)
				f.logger.Error("flush snapshot", "err", err, "attempt", failures, "retry_in", delay)
			} else {
				failures = 0
			}
			timer.Reset(delay)
		}
	}
}
