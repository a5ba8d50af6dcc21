package mock

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/garnizeh/staffing/internal/dashboard"
	"github.com/garnizeh/staffing/internal/pipeline"
	"github.com/garnizeh/staffing/internal/query"
	"github.com/garnizeh/staffing/internal/research"
	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

// CompanyStore owns the company collection, its audit trails and contacts.
type CompanyStore struct {
	mu            sync.RWMutex
	items         []models.Company // newest first
	history       map[int64][]models.CompanyStateChange
	lastID        int64
	lastContactID int64

	opts    Options
	locale  language.Tag
	changed func()
}

var (
	_ repository.CompanyRepo = (*CompanyStore)(nil)
	_ repository.ContactRepo = (*CompanyStore)(nil)
)

func NewCompanyStore(opts Options) (*CompanyStore, error) {
	opts = opts.withDefaults(DefaultCompanyPageSize)
	tag, err := query.ParseLocale(opts.Locale)
	if err != nil {
		return nil, fmt.Errorf("company store locale %q: %w", opts.Locale, err)
	}
	return &CompanyStore{
		history: make(map[int64][]models.CompanyStateChange),
		opts:    opts,
		locale:  tag,
		changed: func() {},
	}, nil
}

func (s *CompanyStore) Create(ctx context.Context, in models.CompanyInput) (*models.Company, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Contacts = slices.Clone(in.Contacts)
	for i := range in.Contacts {
		in.Contacts[i].FullName = strings.TrimSpace(in.Contacts[i].FullName)
	}
	if err := check(in); err != nil {
		s.opts.Logger.Warn("company create rejected", "error", err)
		return nil, err
	}
	user := actor(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.Now()
	stage := orDefault(in.PipelineStage, models.CompanyStageLead)
	rel := models.RelationshipLead
	if forced, ok := pipeline.RelationshipFor(stage); ok {
		rel = forced
	}
	c := models.Company{
		ID:               s.nextID(),
		Name:             in.Name,
		Industry:         orDefault(in.Industry, models.IndustryOther),
		Location:         orDefault(in.Location, ""),
		RelationshipType: orDefault(in.RelationshipType, rel),
		PipelineStage:    stage,
		Website:          orDefault(in.Website, ""),
		Phone:            orDefault(in.Phone, ""),
		EmployeeCount:    orDefault(in.EmployeeCount, ""),
		Country:          orDefault(in.Country, ""),
		Contacts:         s.initialContacts(in.Contacts),
		AssignedTo:       cloneString(in.AssignedTo),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.items = slices.Insert(s.items, 0, c)
	s.history[c.ID] = pipeline.Prepend(nil, pipeline.Entry[models.CompanyStage](c.ID, now, user, nil, stage, "Company created", nil))
	s.changed()

	s.opts.Logger.Info("company created", "company_id", c.ID, "stage", stage, "user", user)
	out := cloneCompany(c)
	return &out, nil
}

// initialContacts assigns ids and keeps at most one primary: the first one
// flagged, or the first contact when none is.
func (s *CompanyStore) initialContacts(in []models.ContactInput) []models.Contact {
	out := make([]models.Contact, 0, len(in))
	primary := slices.IndexFunc(in, func(c models.ContactInput) bool { return c.IsPrimary != nil && *c.IsPrimary })
	if primary < 0 && len(in) > 0 {
		primary = 0
	}
	for i, ci := range in {
		s.lastContactID++
		out = append(out, newContact(s.lastContactID, ci, i == primary))
	}
	return out
}

func (s *CompanyStore) GetByID(_ context.Context, id int64) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: company %d", repository.ErrNotFound, id)
	}
	out := cloneCompany(s.items[i])
	return &out, nil
}

func (s *CompanyStore) Update(_ context.Context, id int64, patch models.CompanyPatch) (*models.Company, error) {
	if patch.Name != nil {
		n := strings.TrimSpace(*patch.Name)
		patch.Name = &n
	}
	if err := check(patch); err != nil {
		s.opts.Logger.Warn("company update rejected", "company_id", id, "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: company %d", repository.ErrNotFound, id)
	}
	c := &s.items[i]
	c.Name = orDefault(patch.Name, c.Name)
	c.Industry = orDefault(patch.Industry, c.Industry)
	c.Location = orDefault(patch.Location, c.Location)
	c.RelationshipType = orDefault(patch.RelationshipType, c.RelationshipType)
	c.Website = orDefault(patch.Website, c.Website)
	c.Phone = orDefault(patch.Phone, c.Phone)
	c.EmployeeCount = orDefault(patch.EmployeeCount, c.EmployeeCount)
	c.Country = orDefault(patch.Country, c.Country)
	if patch.AssignedTo != nil {
		c.AssignedTo = cloneString(patch.AssignedTo)
	}
	c.UpdatedAt = s.opts.Now()
	s.changed()

	s.opts.Logger.Info("company updated", "company_id", id)
	out := cloneCompany(*c)
	return &out, nil
}

// Delete removes the company and its audit trail. Missing ids are a no-op.
func (s *CompanyStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.items = slices.Delete(s.items, i, i+1)
	delete(s.history, id)
	s.changed()
	s.opts.Logger.Info("company deleted", "company_id", id)
	return nil
}

func (s *CompanyStore) Query(_ context.Context, f models.CompanyFilter) (*models.Page[models.Company], error) {
	keep := query.All(
		query.Equals(f.Industry, func(c models.Company) models.Industry { return c.Industry }),
		query.Equals(f.RelationshipType, func(c models.Company) models.RelationshipType { return c.RelationshipType }),
		query.Equals(f.PipelineStage, func(c models.Company) models.CompanyStage { return c.PipelineStage }),
		query.Contains(f.Search, func(c models.Company) string { return c.Name }),
		query.Contains(f.Location, func(c models.Company) string { return c.Location }),
		query.Contains(f.Country, func(c models.Company) string { return c.Country }),
		query.InRange(f.DateFrom, f.DateTo, func(c models.Company) time.Time { return c.CreatedAt }),
	)
	collate := query.Collation(s.locale)
	byName := func(a, b models.Company) int { return collate(a.Name, b.Name) }

	s.mu.RLock()
	defer s.mu.RUnlock()

	page := query.Run(s.items, keep, byName, f.Pagination, s.opts.PageSize)
	for i := range page.Data {
		page.Data[i] = cloneCompany(page.Data[i])
	}
	return &page, nil
}

// ChangeState moves a company to another stage. Stages that imply a
// relationship (onboarding, active_client, lost) update it in the same step.
func (s *CompanyStore) ChangeState(_ context.Context, id int64, t models.Transition[models.CompanyStage]) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: company %d", repository.ErrNotFound, id)
	}
	if err := pipeline.Validate(t, 1); err != nil {
		s.opts.Logger.Warn("company transition rejected", "company_id", id, "to", t.To, "error", err)
		return nil, err
	}

	c := &s.items[i]
	prev := c.PipelineStage
	c.PipelineStage = t.To
	if rel, ok := pipeline.RelationshipFor(t.To); ok {
		c.RelationshipType = rel
	}
	now := s.opts.Now()
	c.UpdatedAt = now
	user := strings.TrimSpace(t.User)
	s.history[id] = pipeline.Prepend(s.history[id], pipeline.Entry(id, now, user, &prev, t.To, t.Note, t.Tags))
	s.changed()

	s.opts.Logger.Info("company stage changed", "company_id", id, "from", prev, "to", t.To, "user", user)
	out := cloneCompany(*c)
	return &out, nil
}

func (s *CompanyStore) GetHistory(_ context.Context, id int64, f models.HistoryFilter[models.CompanyStage]) ([]models.CompanyStateChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pipeline.Filter(s.history[id], f), nil
}

// UpdateResearch merges research notes, recomputes completeness and stamps
// today's date.
func (s *CompanyStore) UpdateResearch(_ context.Context, id int64, patch models.ResearchPatch) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: company %d", repository.ErrNotFound, id)
	}
	c := &s.items[i]
	now := s.opts.Now()
	r := research.Merge(c.Research, patch)
	r.LastResearchDate = now.Format(research.DateLayout)
	c.Research = r
	c.UpdatedAt = now
	s.changed()

	s.opts.Logger.Info("company research updated", "company_id", id, "completeness", r.CompletenessPercent)
	out := cloneCompany(*c)
	return &out, nil
}

func (s *CompanyStore) CountsByStage(_ context.Context) (map[models.CompanyStage]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dashboard.CountBy(s.items, func(c models.Company) models.CompanyStage { return c.PipelineStage }), nil
}

func (s *CompanyStore) CountsByRelationship(_ context.Context) (map[models.RelationshipType]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dashboard.CountBy(s.items, func(c models.Company) models.RelationshipType { return c.RelationshipType }), nil
}

// CompanyName resolves a company id for the vacancy store.
func (s *CompanyStore) CompanyName(id int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return "", false
	}
	return s.items[i].Name, true
}

func (s *CompanyStore) indexOf(id int64) int {
	return slices.IndexFunc(s.items, func(c models.Company) bool { return c.ID == id })
}

// nextID never reuses an id, even after the newest record was deleted.
func (s *CompanyStore) nextID() int64 {
	for _, c := range s.items {
		s.lastID = max(s.lastID, c.ID)
	}
	s.lastID++
	return s.lastID
}

func (s *CompanyStore) snapshot() ([]models.Company, map[int64][]models.CompanyStateChange) {
	items := make([]models.Company, len(s.items))
	for i, c := range s.items {
		items[i] = cloneCompany(c)
	}
	hist := make(map[int64][]models.CompanyStateChange, len(s.history))
	for id, trail := range s.history {
		hist[id] = pipeline.CloneTrail(trail)
	}
	return items, hist
}

// restore replaces the collection. Id counters resume above the largest
// restored ids.
func (s *CompanyStore) restore(items []models.Company, hist map[int64][]models.CompanyStateChange) {
	s.items = make([]models.Company, len(items))
	s.lastID, s.lastContactID = 0, 0
	for i, c := range items {
		s.items[i] = cloneCompany(c)
		s.lastID = max(s.lastID, c.ID)
		for _, ct := range c.Contacts {
			s.lastContactID = max(s.lastContactID, ct.ID)
		}
	}
	s.history = make(map[int64][]models.CompanyStateChange, len(hist))
	for id, trail := range hist {
		s.history[id] = pipeline.CloneTrail(trail)
	}
}
