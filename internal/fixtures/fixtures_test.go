package fixtures_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/garnizeh/staffing/db"
	"github.com/garnizeh/staffing/internal/fixtures"
	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository/mock"
)

func TestSeedEmbeddedFixtures(t *testing.T) {
	ctx := context.Background()
	e, err := mock.NewEngine(mock.EngineOptions{})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	snap, err := fixtures.Seed(ctx, db.SeedFiles, e)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(snap.Companies) == 0 || len(snap.Vacancies) == 0 {
		t.Fatalf("expected non-empty fixtures")
	}

	page, err := e.Vacancies.Query(ctx, models.VacancyFilter{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if page.Total != len(snap.Vacancies) {
		t.Fatalf("expected %d vacancies, got %d", len(snap.Vacancies), page.Total)
	}

	hist, err := e.Vacancies.GetHistory(ctx, 1, models.HistoryFilter[models.VacancyStage]{})
	if err != nil || len(hist) != 3 || hist[0].ToState != models.VacancyStageProposal {
		t.Fatalf("unexpected history %+v %v", hist, err)
	}

	c, err := e.Companies.Create(ctx, models.CompanyInput{Name: "Fresh Co"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != int64(len(snap.Companies))+1 {
		t.Fatalf("ids should resume after fixtures, got %d", c.ID)
	}
	ct, err := e.Companies.AddContact(ctx, c.ID, models.ContactInput{FullName: "New Person"})
	if err != nil || ct.ID != 5 {
		t.Fatalf("contact id should resume after fixtures, got %+v %v", ct, err)
	}
}

func TestLoaderRejectsInvalidDocument(t *testing.T) {
	schema, err := db.SeedFiles.ReadFile(fixtures.SchemaFile)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	l, err := fixtures.NewLoader(schema)
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	cases := map[string]string{
		"missing vacancies": `{"companies":[]}`,
		"bad status":        `{"companies":[],"vacancies":[{"id":1,"jobTitle":"Nurse","companyId":1,"status":"open","pipelineStage":"detected","source":"manual"}]}`,
		"blank name":        `{"vacancies":[],"companies":[{"id":1,"name":"","industry":"other","relationshipType":"lead","pipelineStage":"lead","contacts":[]}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := l.Decode(context.Background(), []byte(doc)); err == nil {
				t.Fatalf("expected schema error")
			}
		})
	}

	if _, err := l.Decode(context.Background(), []byte(`{"companies":[],"vacancies":[]}`)); err != nil {
		t.Fatalf("empty fixtures should be valid: %v", err)
	}
}

func TestLoadMissingFiles(t *testing.T) {
	_, err := fixtures.Load(context.Background(), fstest.MapFS{})
	if err == nil || !strings.Contains(err.Error(), fixtures.SchemaFile) {
		t.Fatalf("expected missing schema error, got %v", err)
	}

	fsys := fstest.MapFS{fixtures.SchemaFile: {Data: []byte(`{"type":"object"}`)}}
	_, err = fixtures.Load(context.Background(), fsys)
	if err == nil || !strings.Contains(err.Error(), fixtures.DataFile) {
		t.Fatalf("expected missing data error, got %v", err)
	}
}

func TestSeedReportsRestoreFailure(t *testing.T) {
	fsys := fstest.MapFS{
		fixtures.SchemaFile: {Data: []byte(`{"type":"object"}`)},
		fixtures.DataFile:   {Data: []byte(`{"companies":[],"vacancies":[{"id":1,"companyId":7,"jobTitle":"Nurse"}]}`)},
	}
	e, _ := mock.NewEngine(mock.EngineOptions{})
	if _, err := fixtures.Seed(context.Background(), fsys, e); err == nil {
		t.Fatalf("expected restore error for dangling company reference")
	}
}
