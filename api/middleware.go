package api

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/garnizeh/staffing/pkg/repository"
)

type ctxKey string

const CtxRequestID ctxKey = "request_id"

const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"
)

// package-level logger used by middleware and helpers; can be set via SetLogger from caller
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger installs a logger for the api package. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// RequestID returns the id assigned by RequestContextMiddleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(CtxRequestID).(string)
	return id
}

// RequestContextMiddleware assigns a request id (echoing X-Request-ID when
// present) and records the X-User-ID caller as the audit actor.
func RequestContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)

		ctx := context.WithValue(r.Context(), CtxRequestID, id)
		if user := strings.TrimSpace(r.Header.Get(HeaderUserID)); user != "" {
			ctx = repository.WithActor(ctx, user)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", RequestID(r.Context())),
		)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID, X-User-ID")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic", slog.Any("err", err), slog.String("request_id", RequestID(r.Context())))
				writeJSON(w, errorBody{Error: "internal server error", RequestID: RequestID(r.Context())}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
