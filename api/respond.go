package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/gorilla/mux"

	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// writeError maps the repository error taxonomy onto HTTP status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, repository.ErrInvalidArgument):
		status, msg = http.StatusBadRequest, err.Error()
	default:
		logger.Error("request failed", slog.Any("err", err), slog.String("path", r.URL.Path), slog.String("request_id", RequestID(r.Context())))
	}
	writeJSON(w, errorBody{Error: msg, RequestID: RequestID(r.Context())}, status)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", repository.ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// decodeJSON reads a single JSON document, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return invalid("malformed request body: %v", err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid("invalid %s %q", name, raw)
	}
	return id, nil
}

type enum interface {
	~string
	IsValid() bool
}

func enumParam[T enum](q url.Values, name string) (*T, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v := T(raw)
	if !v.IsValid() {
		return nil, invalid("unknown %s %q", name, raw)
	}
	return &v, nil
}

func intParam(q url.Values, name string) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid("invalid %s %q", name, raw)
	}
	return n, nil
}

// timeParam accepts RFC 3339 timestamps or bare dates.
func timeParam(q url.Values, name string) (*time.Time, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, invalid("invalid %s %q", name, raw)
}

func pagination(q url.Values) (models.Pagination, error) {
	page, err := intParam(q, "page")
	if err != nil {
		return models.Pagination{}, err
	}
	size, err := intParam(q, "pageSize")
	if err != nil {
		return models.Pagination{}, err
	}
	return models.Pagination{
		Page:      page,
		PageSize:  size,
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}, nil
}

func historyFilter[S models.Stage](q url.Values) (models.HistoryFilter[S], error) {
	stage, err := enumParam[S](q, "stage")
	if err != nil {
		return models.HistoryFilter[S]{}, err
	}
	return models.HistoryFilter[S]{
		Stage:    stage,
		User:     q.Get("user"),
		DateFrom: q.Get("dateFrom"),
		DateTo:   q.Get("dateTo"),
	}, nil
}

// transition decodes a state change body. The caller identity from the
// request context fills a missing user.
func transition[S models.Stage](r *http.Request) (models.Transition[S], error) {
	var t models.Transition[S]
	if err := decodeJSON(r, &t); err != nil {
		return t, err
	}
	if strings.TrimSpace(t.User) == "" {
		t.User = repository.ActorFrom(r.Context())
	}
	return t, nil
}
