// Package mock is the in-memory pipeline engine: one store per entity family,
// each guarded by its own lock, plus the Engine aggregate that wires them.
package mock

import (
	"log/slog"
	"time"
)

const (
	DefaultMinNoteLength   = 10
	DefaultVacancyPageSize = 50
	DefaultCompanyPageSize = 20
	DefaultLocale          = "en"
)

// Options tunes a store. Zero values select the defaults.
type Options struct {
	// MinNoteLength applies to vacancy transitions; company notes only need
	// to be non-empty.
	MinNoteLength int
	PageSize      int
	// Locale drives company name collation (BCP 47, e.g. "pt-BR").
	Locale string
	Now    func() time.Time
	Logger *slog.Logger
}

func (o Options) withDefaults(pageSize int) Options {
	if o.MinNoteLength <= 0 {
		o.MinNoteLength = DefaultMinNoteLength
	}
	if o.PageSize <= 0 {
		o.PageSize = pageSize
	}
	if o.Locale == "" {
		o.Locale = DefaultLocale
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
