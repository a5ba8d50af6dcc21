package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garnizeh/staffing/api"
)

func TestSystemHandlers(t *testing.T) {
	h := &api.SystemHandler{}

	cases := []struct {
		name    string
		handler http.HandlerFunc
		want    map[string]string
	}{
		{"health", h.HealthHandler, map[string]string{"status": "ok", "service": "staffing"}},
		{"version", h.VersionHandler("1.2.3", "2025-08-24T00:00:00Z"), map[string]string{"version": "1.2.3", "buildTime": "2025-08-24T00:00:00Z"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c.handler(w, httptest.NewRequest(http.MethodGet, "/"+c.name, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 got %d", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
				t.Fatalf("expected json content-type, got %q", ct)
			}
			var got map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode %s: %v", w.Body.String(), err)
			}
			for k, v := range c.want {
				if got[k] != v {
					t.Fatalf("%s = %q, want %q (body %v)", k, got[k], v, got)
				}
			}
		})
	}
}

func TestSystemRoutesThroughRouter(t *testing.T) {
	h := newRouter(t)
	w := do(t, h, http.MethodGet, "/health", "", api.HeaderRequestID, "health-1")
	if w.Code != http.StatusOK || w.Header().Get(api.HeaderRequestID) != "health-1" {
		t.Fatalf("unexpected health response %d %v", w.Code, w.Header())
	}
	if body := decode[map[string]string](t, w); body["service"] != "staffing" {
		t.Fatalf("unexpected health body %v", body)
	}
	if w = do(t, h, http.MethodPost, "/health", ""); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST /health, got %d", w.Code)
	}
}
