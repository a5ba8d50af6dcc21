package mock

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

func newContact(id int64, in models.ContactInput, primary bool) models.Contact {
	return models.Contact{
		ID:          id,
		FullName:    strings.TrimSpace(in.FullName),
		JobTitle:    strings.TrimSpace(in.JobTitle),
		Email:       orDefault(in.Email, ""),
		Phone:       orDefault(in.Phone, ""),
		LinkedInURL: orDefault(in.LinkedInURL, ""),
		IsPrimary:   primary,
	}
}

func demote(contacts []models.Contact) {
	for i := range contacts {
		contacts[i].IsPrimary = false
	}
}

// AddContact appends a contact. Without an explicit flag the first contact of
// a company becomes its primary; an explicit primary demotes the others.
func (s *CompanyStore) AddContact(ctx context.Context, companyID int64, in models.ContactInput) (*models.Contact, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	if err := check(in); err != nil {
		s.opts.Logger.Warn("contact create rejected", "company_id", companyID, "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(companyID)
	if i < 0 {
		return nil, fmt.Errorf("%w: company %d", repository.ErrNotFound, companyID)
	}
	c := &s.items[i]
	primary := orDefault(in.IsPrimary, len(c.Contacts) == 0)
	if primary {
		demote(c.Contacts)
	}
	s.lastContactID++
	ct := newContact(s.lastContactID, in, primary)
	c.Contacts = append(c.Contacts, ct)
	c.UpdatedAt = s.opts.Now()
	s.changed()

	s.opts.Logger.Info("contact added", "company_id", companyID, "contact_id", ct.ID, "primary", primary, "user", actor(ctx))
	return &ct, nil
}

func (s *CompanyStore) UpdateContact(ctx context.Context, companyID, contactID int64, patch models.ContactPatch) (*models.Contact, error) {
	if patch.FullName != nil {
		n := strings.TrimSpace(*patch.FullName)
		patch.FullName = &n
	}
	if err := check(patch); err != nil {
		s.opts.Logger.Warn("contact update rejected", "company_id", companyID, "contact_id", contactID, "error", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(companyID)
	if i < 0 {
		return nil, fmt.Errorf("%w: company %d", repository.ErrNotFound, companyID)
	}
	c := &s.items[i]
	j := slices.IndexFunc(c.Contacts, func(ct models.Contact) bool { return ct.ID == contactID })
	if j < 0 {
		return nil, fmt.Errorf("%w: contact %d on company %d", repository.ErrNotFound, contactID, companyID)
	}
	if patch.IsPrimary != nil && *patch.IsPrimary {
		demote(c.Contacts)
	}
	ct := &c.Contacts[j]
	ct.FullName = orDefault(patch.FullName, ct.FullName)
	ct.JobTitle = orDefault(patch.JobTitle, ct.JobTitle)
	ct.Email = orDefault(patch.Email, ct.Email)
	ct.Phone = orDefault(patch.Phone, ct.Phone)
	ct.LinkedInURL = orDefault(patch.LinkedInURL, ct.LinkedInURL)
	ct.IsPrimary = orDefault(patch.IsPrimary, ct.IsPrimary)
	c.UpdatedAt = s.opts.Now()
	s.changed()

	s.opts.Logger.Info("contact updated", "company_id", companyID, "contact_id", contactID, "user", actor(ctx))
	out := *ct
	return &out, nil
}

// RemoveContact deletes a contact. Removing the primary leaves the company
// without one; nobody is promoted.
func (s *CompanyStore) RemoveContact(ctx context.Context, companyID, contactID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(companyID)
	if i < 0 {
		return fmt.Errorf("%w: company %d", repository.ErrNotFound, companyID)
	}
	c := &s.items[i]
	j := slices.IndexFunc(c.Contacts, func(ct models.Contact) bool { return ct.ID == contactID })
	if j < 0 {
		return nil
	}
	c.Contacts = slices.Delete(c.Contacts, j, j+1)
	c.UpdatedAt = s.opts.Now()
	s.changed()

	s.opts.Logger.Info("contact removed", "company_id", companyID, "contact_id", contactID, "user", actor(ctx))
	return nil
}
