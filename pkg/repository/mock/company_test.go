package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

func TestCompanyCreateDefaults(t *testing.T) {
	e := newTestEngine(t)
	c, err := e.Companies.Create(context.Background(), models.CompanyInput{Name: "  Acme  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Name != "Acme" || c.PipelineStage != models.CompanyStageLead || c.RelationshipType != models.RelationshipLead {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if c.Contacts == nil || len(c.Contacts) != 0 || c.Research != nil {
		t.Fatalf("expected empty contacts and no research")
	}

	onboarding := models.CompanyStageOnboarding
	c, _ = e.Companies.Create(context.Background(), models.CompanyInput{Name: "Beta", PipelineStage: &onboarding})
	if c.RelationshipType != models.RelationshipClient {
		t.Fatalf("onboarding company should default to client, got %s", c.RelationshipType)
	}

	if _, err := e.Companies.Create(context.Background(), models.CompanyInput{Name: " "}); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	bad := models.Industry("mining")
	if _, err := e.Companies.Create(context.Background(), models.CompanyInput{Name: "Gamma", Industry: &bad}); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown industry, got %v", err)
	}
}

func TestCompanyChangeStateSideEffects(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	c := seedCompany(t, e, "Acme")

	steps := []struct {
		to   models.CompanyStage
		want models.RelationshipType
	}{
		{models.CompanyStageProspecting, models.RelationshipLead},
		{models.CompanyStageOnboarding, models.RelationshipClient},
		{models.CompanyStageNegotiation, models.RelationshipClient},
		{models.CompanyStageLost, models.RelationshipInactive},
		{models.CompanyStageActiveClient, models.RelationshipClient},
	}
	for _, st := range steps {
		got, err := e.Companies.ChangeState(ctx, c.ID, models.Transition[models.CompanyStage]{To: st.to, Note: "ok", User: "ana"})
		if err != nil {
			t.Fatalf("change to %s: %v", st.to, err)
		}
		if got.RelationshipType != st.want {
			t.Fatalf("after %s relationship = %s, want %s", st.to, got.RelationshipType, st.want)
		}
	}

	hist, _ := e.Companies.GetHistory(ctx, c.ID, models.HistoryFilter[models.CompanyStage]{})
	if len(hist) != len(steps)+1 {
		t.Fatalf("expected %d entries, got %d", len(steps)+1, len(hist))
	}

	cases := []models.Transition[models.CompanyStage]{
		{To: models.CompanyStageEngaged, Note: "  ", User: "ana"},
		{To: "", Note: "moving on", User: "ana"},
		{To: models.CompanyStageEngaged, Note: "moving on", User: ""},
	}
	for _, tr := range cases {
		if _, err := e.Companies.ChangeState(ctx, c.ID, tr); !errors.Is(err, repository.ErrInvalidArgument) {
			t.Fatalf("transition %+v: expected ErrInvalidArgument, got %v", tr, err)
		}
	}
	if _, err := e.Companies.ChangeState(ctx, 99, models.Transition[models.CompanyStage]{To: models.CompanyStageEngaged, Note: "x", User: "ana"}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompanyUpdateResearch(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	c := seedCompany(t, e, "Acme")

	got, err := e.Companies.UpdateResearch(ctx, c.ID, models.ResearchPatch{Mission: ptr("Heal people"), ValueProposition: ptr("Fast staffing")})
	if err != nil {
		t.Fatalf("update research: %v", err)
	}
	if got.Research.CompletenessPercent != 50 {
		t.Fatalf("expected 50, got %d", got.Research.CompletenessPercent)
	}
	if got.Research.LastResearchDate != "2024-03-01" {
		t.Fatalf("unexpected research date %q", got.Research.LastResearchDate)
	}
	if !got.UpdatedAt.After(c.UpdatedAt) {
		t.Fatalf("updatedAt not stamped")
	}

	got, _ = e.Companies.UpdateResearch(ctx, c.ID, models.ResearchPatch{Mission: ptr(""), Vision: ptr("Everywhere"), SalesPitch: ptr("Call us")})
	if got.Research.CompletenessPercent != 75 || got.Research.Mission != nil {
		t.Fatalf("unexpected merge result %+v", got.Research)
	}

	if _, err := e.Companies.UpdateResearch(ctx, 99, models.ResearchPatch{}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompanyQuerySortsByCollatedName(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	for _, name := range []string{"zeta", "Émile Staffing", "alpha", "Beta", "echo"} {
		seedCompany(t, e, name)
	}

	page, err := e.Companies.Query(ctx, models.CompanyFilter{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []string{"alpha", "Beta", "echo", "Émile Staffing", "zeta"}
	if page.Total != len(want) || page.PageSize != DefaultCompanyPageSize {
		t.Fatalf("unexpected page %+v", page)
	}
	for i, name := range want {
		if page.Data[i].Name != name {
			t.Fatalf("position %d: got %q, want %q", i, page.Data[i].Name, name)
		}
	}

	page, _ = e.Companies.Query(ctx, models.CompanyFilter{Search: "E", Pagination: models.Pagination{Page: 2, PageSize: 2}})
	if page.Total != 4 || len(page.Data) != 2 || page.Data[0].Name != "Émile Staffing" {
		t.Fatalf("unexpected filtered page %+v", page)
	}
	page, _ = e.Companies.Query(ctx, models.CompanyFilter{Pagination: models.Pagination{Page: 10}})
	if page.Total != 5 || len(page.Data) != 0 {
		t.Fatalf("out of range page should be empty with the true total")
	}
}

func TestCompanyUpdateAndDelete(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	c := seedCompany(t, e, "Acme")

	got, err := e.Companies.Update(ctx, c.ID, models.CompanyPatch{Country: ptr("Brazil"), Name: ptr(" Acme Ltda ")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Country != "Brazil" || got.Name != "Acme Ltda" || got.PipelineStage != c.PipelineStage {
		t.Fatalf("unexpected update %+v", got)
	}
	if _, err := e.Companies.Update(ctx, c.ID, models.CompanyPatch{Name: ptr("  ")}); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Fatalf("blank name should be rejected, got %v", err)
	}

	if err := e.Companies.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := e.Companies.GetByID(ctx, c.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if next := seedCompany(t, e, "Next"); next.ID != c.ID+1 {
		t.Fatalf("company ids must not be reused, got %d", next.ID)
	}
}

func TestCompanyCounts(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	a := seedCompany(t, e, "A")
	seedCompany(t, e, "B")
	if _, err := e.Companies.ChangeState(ctx, a.ID, models.Transition[models.CompanyStage]{To: models.CompanyStageLost, Note: "no budget", User: "ana"}); err != nil {
		t.Fatalf("change state: %v", err)
	}

	byStage, _ := e.Companies.CountsByStage(ctx)
	if byStage[models.CompanyStageLead] != 1 || byStage[models.CompanyStageLost] != 1 {
		t.Fatalf("unexpected stage counts %v", byStage)
	}
	byRel, _ := e.Companies.CountsByRelationship(ctx)
	if byRel[models.RelationshipInactive] != 1 || byRel[models.RelationshipLead] != 1 {
		t.Fatalf("unexpected relationship counts %v", byRel)
	}
}
