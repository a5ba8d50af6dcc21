package mock

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/garnizeh/staffing/internal/dashboard"
	"github.com/garnizeh/staffing/internal/pipeline"
	"github.com/garnizeh/staffing/internal/query"
	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

// CompanyLookup resolves the company a vacancy points at.
type CompanyLookup interface {
	CompanyName(id int64) (string, bool)
}

// VacancyStore owns the vacancy collection and its audit trails. When a
// CompanyLookup is set, vacancies must reference an existing company.
type VacancyStore struct {
	mu      sync.RWMutex
	items   []models.Vacancy // newest first
	history map[int64][]models.VacancyStateChange
	lastID  int64

	companies CompanyLookup
	opts      Options
	changed   func()
}

var _ repository.VacancyRepo = (*VacancyStore)(nil)

// NewVacancyStore builds a store; companies may be nil, in which case the
// company reference is not checked.
func NewVacancyStore(companies CompanyLookup, opts Options) *VacancyStore {
	return &VacancyStore{
		history:   make(map[int64][]models.VacancyStateChange),
		companies: companies,
		opts:      opts.withDefaults(DefaultVacancyPageSize),
		changed:   func() {},
	}
}

func (s *VacancyStore) Create(ctx context.Context, in models.VacancyInput) (*models.Vacancy, error) {
	in.JobTitle = strings.TrimSpace(in.JobTitle)
	if err := check(in); err != nil {
		s.opts.Logger.Warn("vacancy create rejected", "error", err)
		return nil, err
	}
	user := actor(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	companyName, err := s.resolveCompany(in.CompanyID, in.CompanyName)
	if err != nil {
		s.opts.Logger.Warn("vacancy create rejected", "company_id", in.CompanyID, "error", err)
		return nil, err
	}
	now := s.opts.Now()
	v, err := enrich(s.nextID(), in, companyName, now)
	if err != nil {
		return nil, err
	}
	s.items = slices.Insert(s.items, 0, v)
	s.history[v.ID] = pipeline.Prepend(nil, pipeline.Entry[models.VacancyStage](v.ID, now, user, nil, v.PipelineStage, "Vacancy created", nil))
	s.changed()

	s.opts.Logger.Info("vacancy created", "vacancy_id", v.ID, "company_id", v.CompanyID, "department", v.Department, "user", user)
	out := cloneVacancy(v)
	return &out, nil
}

func (s *VacancyStore) GetByID(_ context.Context, id int64) (*models.Vacancy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: vacancy %d", repository.ErrNotFound, id)
	}
	out := cloneVacancy(s.items[i])
	return &out, nil
}

// Update merges the patch. Changing the title or location re-infers the
// derived attributes the patch does not set itself; changing the company
// re-resolves its name.
func (s *VacancyStore) Update(_ context.Context, id int64, patch models.VacancyPatch) (*models.Vacancy, error) {
	if patch.JobTitle != nil {
		t := strings.TrimSpace(*patch.JobTitle)
		patch.JobTitle = &t
	}
	if err := check(patch); err != nil {
		s.opts.Logger.Warn("vacancy update rejected", "vacancy_id", id, "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: vacancy %d", repository.ErrNotFound, id)
	}
	v := s.items[i]

	if patch.CompanyID != nil && *patch.CompanyID != v.CompanyID {
		name, err := s.resolveCompany(*patch.CompanyID, patch.CompanyName)
		if err != nil {
			s.opts.Logger.Warn("vacancy update rejected", "vacancy_id", id, "company_id", *patch.CompanyID, "error", err)
			return nil, err
		}
		v.CompanyID = *patch.CompanyID
		v.CompanyName = name
	} else if name, ok := text(patch.CompanyName); ok {
		v.CompanyName = name
	}

	v.JobTitle = orDefault(patch.JobTitle, v.JobTitle)
	v.Location = orDefault(patch.Location, v.Location)
	v.Department = orDefault(patch.Department, v.Department)
	v.SeniorityLevel = orDefault(patch.SeniorityLevel, v.SeniorityLevel)
	v.JobType = orDefault(patch.JobType, v.JobType)
	v.WorkModality = orDefault(patch.WorkModality, v.WorkModality)
	v.IsRemoteViable = orDefault(patch.IsRemoteViable, v.IsRemoteViable)
	v.SalaryRange = orDefault(patch.SalaryRange, v.SalaryRange)
	v.Status = orDefault(patch.Status, v.Status)
	v.Source = orDefault(patch.Source, v.Source)
	v.OriginalURL = orDefault(patch.OriginalURL, v.OriginalURL)
	v.PublishedDate = orDefault(patch.PublishedDate, v.PublishedDate)
	v.Description = orDefault(patch.Description, v.Description)
	v.Notes = orDefault(patch.Notes, v.Notes)
	if patch.AssignedTo != nil {
		v.AssignedTo = cloneString(patch.AssignedTo)
	}

	if patch.JobTitle != nil || patch.Location != nil {
		reinfer(&v, patch)
	}
	v.UpdatedAt = s.opts.Now()
	s.items[i] = v
	s.changed()

	s.opts.Logger.Info("vacancy updated", "vacancy_id", id)
	out := cloneVacancy(v)
	return &out, nil
}

// Delete removes the vacancy and its audit trail. Missing ids are a no-op.
func (s *VacancyStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.items = slices.Delete(s.items, i, i+1)
	delete(s.history, id)
	s.changed()
	s.opts.Logger.Info("vacancy deleted", "vacancy_id", id)
	return nil
}

func (s *VacancyStore) Query(_ context.Context, f models.VacancyFilter) (*models.Page[models.Vacancy], error) {
	keep := query.All(
		query.Equals(f.Status, func(v models.Vacancy) models.VacancyStatus { return v.Status }),
		query.Equals(f.PipelineStage, func(v models.Vacancy) models.VacancyStage { return v.PipelineStage }),
		query.Equals(f.Source, func(v models.Vacancy) models.Source { return v.Source }),
		query.Equals(f.SeniorityLevel, func(v models.Vacancy) models.SeniorityLevel { return v.SeniorityLevel }),
		query.Equals(f.JobType, func(v models.Vacancy) models.JobType { return v.JobType }),
		query.Equals(f.WorkModality, func(v models.Vacancy) models.WorkModality { return v.WorkModality }),
		query.Equals(f.CompanyID, func(v models.Vacancy) int64 { return v.CompanyID }),
		query.Contains(f.Search, func(v models.Vacancy) string { return v.JobTitle }),
		query.Contains(f.CompanyName, func(v models.Vacancy) string { return v.CompanyName }),
		query.Contains(f.Location, func(v models.Vacancy) string { return v.Location }),
		query.InRange(f.DateFrom, f.DateTo, func(v models.Vacancy) time.Time { return v.PublishedDate }),
	)
	newestFirst := func(a, b models.Vacancy) int { return b.PublishedDate.Compare(a.PublishedDate) }

	s.mu.RLock()
	defer s.mu.RUnlock()

	page := query.Run(s.items, keep, newestFirst, f.Pagination, s.opts.PageSize)
	for i := range page.Data {
		page.Data[i] = cloneVacancy(page.Data[i])
	}
	return &page, nil
}

// ChangeState moves a vacancy to another stage and records the move.
func (s *VacancyStore) ChangeState(_ context.Context, id int64, t models.Transition[models.VacancyStage]) (*models.Vacancy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: vacancy %d", repository.ErrNotFound, id)
	}
	if err := pipeline.Validate(t, s.opts.MinNoteLength); err != nil {
		s.opts.Logger.Warn("vacancy transition rejected", "vacancy_id", id, "to", t.To, "error", err)
		return nil, err
	}

	v := &s.items[i]
	prev := v.PipelineStage
	v.PipelineStage = t.To
	now := s.opts.Now()
	v.UpdatedAt = now
	user := strings.TrimSpace(t.User)
	s.history[id] = pipeline.Prepend(s.history[id], pipeline.Entry(id, now, user, &prev, t.To, t.Note, t.Tags))
	s.changed()

	s.opts.Logger.Info("vacancy stage changed", "vacancy_id", id, "from", prev, "to", t.To, "user", user)
	out := cloneVacancy(*v)
	return &out, nil
}

func (s *VacancyStore) GetHistory(_ context.Context, id int64, f models.HistoryFilter[models.VacancyStage]) ([]models.VacancyStateChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pipeline.Filter(s.history[id], f), nil
}

func (s *VacancyStore) CountsByStage(_ context.Context) (map[models.VacancyStage]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dashboard.CountBy(s.items, func(v models.Vacancy) models.VacancyStage { return v.PipelineStage }), nil
}

func (s *VacancyStore) CountsByStatus(_ context.Context) (map[models.VacancyStatus]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dashboard.CountBy(s.items, func(v models.Vacancy) models.VacancyStatus { return v.Status }), nil
}

// resolveCompany checks the reference and picks the display name: an explicit
// name wins over the looked-up one.
func (s *VacancyStore) resolveCompany(id int64, explicit *string) (string, error) {
	name, given := text(explicit)
	if s.companies == nil {
		return name, nil
	}
	found, ok := s.companies.CompanyName(id)
	if !ok {
		return "", fmt.Errorf("%w: company %d does not exist", repository.ErrInvalidArgument, id)
	}
	if given {
		return name, nil
	}
	return found, nil
}

func (s *VacancyStore) indexOf(id int64) int {
	return slices.IndexFunc(s.items, func(v models.Vacancy) bool { return v.ID == id })
}

func (s *VacancyStore) nextID() int64 {
	for _, v := range s.items {
		s.lastID = max(s.lastID, v.ID)
	}
	s.lastID++
	return s.lastID
}

func (s *VacancyStore) snapshot() ([]models.Vacancy, map[int64][]models.VacancyStateChange) {
	items := make([]models.Vacancy, len(s.items))
	for i, v := range s.items {
		items[i] = cloneVacancy(v)
	}
	hist := make(map[int64][]models.VacancyStateChange, len(s.history))
	for id, trail := range s.history {
		hist[id] = pipeline.CloneTrail(trail)
	}
	return items, hist
}

func (s *VacancyStore) restore(items []models.Vacancy, hist map[int64][]models.VacancyStateChange) {
	s.items = make([]models.Vacancy, len(items))
	s.lastID = 0
	for i, v := range items {
		s.items[i] = cloneVacancy(v)
		s.lastID = max(s.lastID, v.ID)
	}
	s.history = make(map[int64][]models.VacancyStateChange, len(hist))
	for id, trail := range hist {
		s.history[id] = pipeline.CloneTrail(trail)
	}
}
