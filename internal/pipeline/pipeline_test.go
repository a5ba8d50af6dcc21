package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		tr   models.Transition[models.VacancyStage]
		ok   bool
	}{
		{"valid", models.Transition[models.VacancyStage]{To: models.VacancyStageContacted, Note: "Called the HR lead", User: "ana"}, true},
		{"short note", models.Transition[models.VacancyStage]{To: models.VacancyStageContacted, Note: "   call   ", User: "ana"}, false},
		{"empty note", models.Transition[models.VacancyStage]{To: models.VacancyStageContacted, Note: " ", User: "ana"}, false},
		{"unknown stage", models.Transition[models.VacancyStage]{To: "archived", Note: "Called the HR lead", User: "ana"}, false},
		{"missing stage", models.Transition[models.VacancyStage]{Note: "Called the HR lead", User: "ana"}, false},
		{"missing user", models.Transition[models.VacancyStage]{To: models.VacancyStageWon, Note: "Called the HR lead"}, false},
	}
	for _, c := range cases {
		err := Validate(c.tr, 10)
		if c.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok && !errors.Is(err, repository.ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", c.name, err)
		}
	}

	company := models.Transition[models.CompanyStage]{To: models.CompanyStageEngaged, Note: "ok", User: "bo"}
	if err := Validate(company, 1); err != nil {
		t.Fatalf("short company note should pass: %v", err)
	}
}

func TestPrependKeepsTrailAppendOnly(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	first := Entry[models.VacancyStage](7, now, "system", nil, models.VacancyStageDetected, "created", nil)
	trail := Prepend(nil, first)

	from := models.VacancyStageDetected
	second := Entry(7, now.Add(time.Hour), "ana", &from, models.VacancyStageContacted, "  Called the HR lead  ", []string{"phone"})
	next := Prepend(trail, second)

	if len(trail) != 1 || len(next) != 2 {
		t.Fatalf("unexpected lengths %d %d", len(trail), len(next))
	}
	if next[0].ToState != models.VacancyStageContacted || next[1].ToState != models.VacancyStageDetected {
		t.Fatalf("trail not newest-first: %+v", next)
	}
	if next[0].Note != "Called the HR lead" {
		t.Fatalf("note not trimmed: %q", next[0].Note)
	}
	if next[1].FromState != nil {
		t.Fatalf("creation entry must have nil fromState")
	}
	if first.Tags == nil || len(first.Tags) != 0 {
		t.Fatalf("tags should default to empty list")
	}

	from = models.VacancyStageLost
	if *next[0].FromState != models.VacancyStageDetected {
		t.Fatalf("entry aliases caller's from pointer")
	}
}

func TestFilter(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC) }
	detected, contacted := models.VacancyStageDetected, models.VacancyStageContacted
	var trail []models.VacancyStateChange
	trail = Prepend(trail, Entry[models.VacancyStage](1, day(1), "system", nil, detected, "created", nil))
	trail = Prepend(trail, Entry(1, day(2), "Ana Souza", &detected, contacted, "Called the HR lead", nil))
	trail = Prepend(trail, Entry(1, day(5), "bruno", &contacted, models.VacancyStageProposal, "Proposal sent today", nil))

	if got := Filter(trail, models.HistoryFilter[models.VacancyStage]{Stage: &contacted}); len(got) != 2 {
		t.Fatalf("stage filter should match from or to, got %d", len(got))
	}
	if got := Filter(trail, models.HistoryFilter[models.VacancyStage]{User: "SOUZA"}); len(got) != 1 || got[0].User != "Ana Souza" {
		t.Fatalf("user filter should be case-insensitive substring, got %+v", got)
	}
	got := Filter(trail, models.HistoryFilter[models.VacancyStage]{DateFrom: "2024-03-02", DateTo: "2024-03-05"})
	if len(got) != 1 || got[0].ToState != contacted {
		t.Fatalf("date filter compares RFC 3339 strings lexically, got %+v", got)
	}
	if got := Filter(nil, models.HistoryFilter[models.VacancyStage]{}); got == nil || len(got) != 0 {
		t.Fatalf("empty trail should give empty non-nil list")
	}
}

func TestRelationshipFor(t *testing.T) {
	cases := map[models.CompanyStage]models.RelationshipType{
		models.CompanyStageOnboarding:   models.RelationshipClient,
		models.CompanyStageActiveClient: models.RelationshipClient,
		models.CompanyStageLost:         models.RelationshipInactive,
	}
	for _, s := range models.CompanyStages {
		r, ok := RelationshipFor(s)
		want, forced := cases[s]
		if ok != forced || r != want {
			t.Fatalf("stage %q: got (%q, %v), want (%q, %v)", s, r, ok, want, forced)
		}
	}
}
