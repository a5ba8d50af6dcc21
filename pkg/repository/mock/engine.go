package mock

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/garnizeh/staffing/pkg/models"
)

// EngineOptions configures both stores of an Engine.
type EngineOptions struct {
	MinNoteLength   int
	VacancyPageSize int
	CompanyPageSize int
	Locale          string
	Now             func() time.Time
	Logger          *slog.Logger
}

// Engine bundles the company and vacancy stores, wiring vacancy company
// references to the company store. Version counts successful mutations so
// persistence can tell when a snapshot is stale.
type Engine struct {
	Companies *CompanyStore
	Vacancies *VacancyStore

	version atomic.Uint64
}

func NewEngine(opts EngineOptions) (*Engine, error) {
	companies, err := NewCompanyStore(Options{
		PageSize: opts.CompanyPageSize,
		Locale:   opts.Locale,
		Now:      opts.Now,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	vacancies := NewVacancyStore(companies, Options{
		MinNoteLength: opts.MinNoteLength,
		PageSize:      opts.VacancyPageSize,
		Locale:        opts.Locale,
		Now:           opts.Now,
		Logger:        opts.Logger,
	})

	e := &Engine{Companies: companies, Vacancies: vacancies}
	bump := func() { e.version.Add(1) }
	companies.changed = bump
	vacancies.changed = bump
	return e, nil
}

// Version increases by one on every successful mutation.
func (e *Engine) Version() uint64 {
	return e.version.Load()
}

// Snapshot returns a deep copy of the whole engine state, taken atomically
// across both stores.
func (e *Engine) Snapshot() models.Snapshot {
	e.Vacancies.mu.RLock()
	defer e.Vacancies.mu.RUnlock()
	e.Companies.mu.RLock()
	defer e.Companies.mu.RUnlock()

	var s models.Snapshot
	s.Vacancies, s.VacancyHistory = e.Vacancies.snapshot()
	s.Companies, s.CompanyHistory = e.Companies.snapshot()
	return s
}

// Restore replaces the engine state. Every vacancy must reference a company
// present in the snapshot.
func (e *Engine) Restore(s models.Snapshot) error {
	known := make(map[int64]bool, len(s.Companies))
	for _, c := range s.Companies {
		if known[c.ID] {
			return fmt.Errorf("restore: duplicate company id %d", c.ID)
		}
		known[c.ID] = true
	}
	seen := make(map[int64]bool, len(s.Vacancies))
	for _, v := range s.Vacancies {
		if seen[v.ID] {
			return fmt.Errorf("restore: duplicate vacancy id %d", v.ID)
		}
		seen[v.ID] = true
		if !known[v.CompanyID] {
			return fmt.Errorf("restore: vacancy %d references unknown company %d", v.ID, v.CompanyID)
		}
	}

	e.Vacancies.mu.Lock()
	defer e.Vacancies.mu.Unlock()
	e.Companies.mu.Lock()
	defer e.Companies.mu.Unlock()

	e.Vacancies.restore(s.Vacancies, s.VacancyHistory)
	e.Companies.restore(s.Companies, s.CompanyHistory)
	e.Companies.opts.Logger.Info("engine restored", "companies", len(s.Companies), "vacancies", len(s.Vacancies))
	return nil
}
