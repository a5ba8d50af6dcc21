package mock

import (
	"context"
	"slices"
	"strings"

	"github.com/garnizeh/staffing/internal/research"
	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

// Stores hand out copies only; nothing returned aliases internal state.

func cloneVacancy(v models.Vacancy) models.Vacancy {
	v.AssignedTo = cloneString(v.AssignedTo)
	return v
}

func cloneCompany(c models.Company) models.Company {
	c.Contacts = slices.Clone(c.Contacts)
	if c.Contacts == nil {
		c.Contacts = []models.Contact{}
	}
	c.Research = research.Clone(c.Research)
	c.AssignedTo = cloneString(c.AssignedTo)
	return c
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}

// text returns the trimmed value of an optional field and whether it carries
// any content.
func text(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	s := strings.TrimSpace(*p)
	return s, s != ""
}

func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// actor resolves the identity recorded on audit entries.
func actor(ctx context.Context) string {
	if u := strings.TrimSpace(repository.ActorFrom(ctx)); u != "" {
		return u
	}
	return repository.SystemActor
}
