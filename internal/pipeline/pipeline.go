// Package pipeline holds the stage-transition rules shared by both entity
// families: transition validation, the append-only audit trail and history
// filtering.
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

// Validate checks a transition request. minNote is measured in runes after
// trimming; values below 1 still require a non-empty note.
func Validate[S models.Stage](t models.Transition[S], minNote int) error {
	if !t.To.IsValid() {
		return fmt.Errorf("%w: unknown target stage %q", repository.ErrInvalidArgument, string(t.To))
	}
	if strings.TrimSpace(t.User) == "" {
		return fmt.Errorf("%w: user is required", repository.ErrInvalidArgument)
	}
	note := strings.TrimSpace(t.Note)
	if note == "" {
		return fmt.Errorf("%w: note is required", repository.ErrInvalidArgument)
	}
	if n := len([]rune(note)); n < minNote {
		return fmt.Errorf("%w: note must be at least %d characters, got %d", repository.ErrInvalidArgument, minNote, n)
	}
	return nil
}

// Entry builds the audit record for a move from `from` to `to`. A nil from
// marks creation.
func Entry[S models.Stage](id int64, at time.Time, user string, from *S, to S, note string, tags []string) models.StateChange[S] {
	var prev *S
	if from != nil {
		p := *from
		prev = &p
	}
	t := []string{}
	if len(tags) > 0 {
		t = slices.Clone(tags)
	}
	return models.StateChange[S]{
		EntityID:  id,
		Date:      at.UTC(),
		User:      user,
		FromState: prev,
		ToState:   to,
		Note:      strings.TrimSpace(note),
		Tags:      t,
	}
}

// Prepend returns a new trail with e at the head. Existing entries are never
// modified, so the trail stays newest-first and append-only.
func Prepend[S models.Stage](trail []models.StateChange[S], e models.StateChange[S]) []models.StateChange[S] {
	out := make([]models.StateChange[S], 0, len(trail)+1)
	out = append(out, e)
	return append(out, trail...)
}

// Filter narrows a trail, preserving its order. The result never aliases the
// input.
func Filter[S models.Stage](trail []models.StateChange[S], f models.HistoryFilter[S]) []models.StateChange[S] {
	user := strings.ToLower(strings.TrimSpace(f.User))
	out := []models.StateChange[S]{}
	for _, e := range trail {
		if f.Stage != nil && e.ToState != *f.Stage && (e.FromState == nil || *e.FromState != *f.Stage) {
			continue
		}
		if user != "" && !strings.Contains(strings.ToLower(e.User), user) {
			continue
		}
		stamp := e.Date.UTC().Format(time.RFC3339)
		if f.DateFrom != "" && stamp < f.DateFrom {
			continue
		}
		if f.DateTo != "" && stamp > f.DateTo {
			continue
		}
		out = append(out, CloneEntry(e))
	}
	return out
}

// CloneEntry deep-copies an audit record.
func CloneEntry[S models.Stage](e models.StateChange[S]) models.StateChange[S] {
	if e.FromState != nil {
		p := *e.FromState
		e.FromState = &p
	}
	e.Tags = slices.Clone(e.Tags)
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return e
}

// CloneTrail deep-copies a whole trail.
func CloneTrail[S models.Stage](trail []models.StateChange[S]) []models.StateChange[S] {
	out := make([]models.StateChange[S], len(trail))
	for i, e := range trail {
		out[i] = CloneEntry(e)
	}
	return out
}

// companyRelationship lists the stages that force a relationship type.
var companyRelationship = map[models.CompanyStage]models.RelationshipType{
	models.CompanyStageOnboarding:   models.RelationshipClient,
	models.CompanyStageActiveClient: models.RelationshipClient,
	models.CompanyStageLost:         models.RelationshipInactive,
}

// RelationshipFor reports the relationship type a company stage forces, if any.
func RelationshipFor(stage models.CompanyStage) (models.RelationshipType, bool) {
	r, ok := companyRelationship[stage]
	return r, ok
}
