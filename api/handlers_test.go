package api_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/garnizeh/staffing/api"
	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository/mock"
)

func TestMain(m *testing.M) {
	api.SetLogger(slog.New(slog.DiscardHandler))
	goleak.VerifyTestMain(m)
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	e, err := mock.NewEngine(mock.EngineOptions{})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return api.SetupRoutes("test", "now", api.Services{
		Vacancies: e.Vacancies,
		Companies: e.Companies,
		Contacts:  e.Companies,
	})
}

func do(t *testing.T, h http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func TestVacancyLifecycle(t *testing.T) {
	h := newRouter(t)

	w := do(t, h, http.MethodPost, "/v1/companies", `{"name":"Acme Health","industry":"healthcare"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create company: %d %s", w.Code, w.Body.String())
	}
	company := decode[models.Company](t, w)

	w = do(t, h, http.MethodPost, "/v1/vacancies", `{"jobTitle":"Senior Registered Nurse","companyId":1,"location":"Remote"}`, api.HeaderUserID, "ana")
	if w.Code != http.StatusCreated {
		t.Fatalf("create vacancy: %d %s", w.Code, w.Body.String())
	}
	v := decode[models.Vacancy](t, w)
	if v.CompanyName != company.Name || v.SeniorityLevel != models.SenioritySenior || v.PipelineStage != models.VacancyStageDetected {
		t.Fatalf("unexpected vacancy %+v", v)
	}

	w = do(t, h, http.MethodPost, "/v1/vacancies/1/state", `{"toState":"contacted","note":"short"}`, api.HeaderUserID, "ana")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short note: expected 400, got %d", w.Code)
	}
	w = do(t, h, http.MethodPost, "/v1/vacancies/1/state", `{"toState":"contacted","note":"Called the hiring manager"}`, api.HeaderUserID, "ana")
	if w.Code != http.StatusOK {
		t.Fatalf("change state: %d %s", w.Code, w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/v1/vacancies/1/history", "")
	hist := decode[[]models.VacancyStateChange](t, w)
	if len(hist) != 2 || hist[0].User != "ana" || hist[0].ToState != models.VacancyStageContacted {
		t.Fatalf("unexpected history %+v", hist)
	}
	w = do(t, h, http.MethodGet, "/v1/vacancies/1/history?stage=contacted", "")
	if hist = decode[[]models.VacancyStateChange](t, w); len(hist) != 1 {
		t.Fatalf("stage filter: expected 1 entry, got %d", len(hist))
	}

	w = do(t, h, http.MethodGet, "/v1/vacancies?pipelineStage=contacted&companyId=1", "")
	page := decode[models.Page[models.Vacancy]](t, w)
	if page.Total != 1 || page.Data[0].ID != v.ID {
		t.Fatalf("unexpected page %+v", page)
	}

	w = do(t, h, http.MethodPatch, "/v1/vacancies/1", `{"notes":"Follow up next week"}`)
	if w.Code != http.StatusOK || decode[models.Vacancy](t, w).Notes != "Follow up next week" {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}

	if w = do(t, h, http.MethodDelete, "/v1/vacancies/1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
	w = do(t, h, http.MethodGet, "/v1/vacancies/1", "", api.HeaderRequestID, "req-7")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
	body := decode[map[string]string](t, w)
	if body["request_id"] != "req-7" || body["error"] == "" {
		t.Fatalf("unexpected error body %v", body)
	}
}

func TestBadRequests(t *testing.T) {
	h := newRouter(t)
	cases := []struct {
		name, method, path, body string
		want                     int
	}{
		{"unknown field", http.MethodPost, "/v1/companies", `{"name":"Acme","color":"red"}`, http.StatusBadRequest},
		{"malformed json", http.MethodPost, "/v1/companies", `{"name":`, http.StatusBadRequest},
		{"unknown company", http.MethodPost, "/v1/vacancies", `{"jobTitle":"Nurse","companyId":9}`, http.StatusBadRequest},
		{"bad enum filter", http.MethodGet, "/v1/vacancies?status=open", "", http.StatusBadRequest},
		{"bad page", http.MethodGet, "/v1/companies?page=x", "", http.StatusBadRequest},
		{"bad date", http.MethodGet, "/v1/companies?dateFrom=yesterday", "", http.StatusBadRequest},
		{"missing company", http.MethodGet, "/v1/companies/3", "", http.StatusNotFound},
		{"non numeric id", http.MethodGet, "/v1/companies/abc", "", http.StatusNotFound},
		{"wrong method", http.MethodPut, "/v1/vacancies", `{}`, http.StatusMethodNotAllowed},
		{"state of missing company", http.MethodPost, "/v1/companies/1/state", `{"toState":"engaged","note":"hello"}`, http.StatusNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if w := do(t, h, c.method, c.path, c.body); w.Code != c.want {
				t.Fatalf("expected %d, got %d: %s", c.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestCompanyContactsResearchAndStats(t *testing.T) {
	h := newRouter(t)
	do(t, h, http.MethodPost, "/v1/companies", `{"name":"Acme"}`)

	w := do(t, h, http.MethodPost, "/v1/companies/1/contacts", `{"fullName":"Ana Lima","jobTitle":"HR"}`)
	if w.Code != http.StatusCreated || !decode[models.Contact](t, w).IsPrimary {
		t.Fatalf("add contact: %d %s", w.Code, w.Body.String())
	}
	w = do(t, h, http.MethodPost, "/v1/companies/1/contacts", `{"fullName":"Bia Souza","isPrimary":true}`)
	second := decode[models.Contact](t, w)
	w = do(t, h, http.MethodPatch, "/v1/companies/1/contacts/1", `{"phone":"+55 11 5555-0101"}`)
	if w.Code != http.StatusOK || decode[models.Contact](t, w).IsPrimary {
		t.Fatalf("first contact should have been demoted: %s", w.Body.String())
	}
	if w = do(t, h, http.MethodDelete, "/v1/companies/1/contacts/99", ""); w.Code != http.StatusNoContent {
		t.Fatalf("removing a missing contact should succeed, got %d", w.Code)
	}
	if w = do(t, h, http.MethodPatch, "/v1/companies/1/contacts/99", `{}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing contact, got %d", w.Code)
	}

	w = do(t, h, http.MethodPut, "/v1/companies/1/research", `{"mission":"Staff every clinic"}`)
	c := decode[models.Company](t, w)
	if w.Code != http.StatusOK || c.Research == nil || c.Research.CompletenessPercent != 25 {
		t.Fatalf("research: %d %s", w.Code, w.Body.String())
	}
	if p, ok := c.PrimaryContact(); !ok || p.ID != second.ID {
		t.Fatalf("unexpected primary contact %+v", p)
	}

	w = do(t, h, http.MethodPost, "/v1/companies/1/state", `{"toState":"onboarding","note":"Signed"}`, api.HeaderUserID, "bruno")
	if w.Code != http.StatusOK || decode[models.Company](t, w).RelationshipType != models.RelationshipClient {
		t.Fatalf("company state: %d %s", w.Code, w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/v1/stats", "")
	var stats struct {
		Companies struct {
			ByStage        map[string]int `json:"byStage"`
			ByRelationship map[string]int `json:"byRelationship"`
		} `json:"companies"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Companies.ByStage["onboarding"] != 1 || stats.Companies.ByRelationship["client"] != 1 {
		t.Fatalf("unexpected stats %s", w.Body.String())
	}

	w = do(t, h, http.MethodGet, "/v1/companies?search=acm", "")
	if page := decode[models.Page[models.Company]](t, w); page.Total != 1 {
		t.Fatalf("search: unexpected page %+v", page)
	}
}

func TestHugePaginationValues(t *testing.T) {
	h := newRouter(t)
	do(t, h, http.MethodPost, "/v1/companies", `{"name":"Acme"}`)

	for _, path := range []string{
		"/v1/vacancies?page=9223372036854775807",
		"/v1/companies?page=9223372036854775807&pageSize=50",
		"/v1/companies?pageSize=9223372036854775807",
	} {
		w := do(t, h, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", path, w.Code, w.Body.String())
		}
		if page := decode[models.Page[models.Company]](t, w); page.TotalPages < 0 {
			t.Fatalf("%s: negative total pages %d", path, page.TotalPages)
		}
	}
}

func TestPreflight(t *testing.T) {
	h := newRouter(t)
	w := do(t, h, http.MethodOptions, "/v1/vacancies", "")
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("unexpected preflight response %d %v", w.Code, w.Header())
	}
}
