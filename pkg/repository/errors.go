package repository

import (
	"context"
	"errors"
)

// Error taxonomy shared by every repository implementation. Implementations
// wrap these with context; callers match with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

type ctxKey string

const ctxActor ctxKey = "actor"

// SystemActor is recorded when no caller identity was supplied.
const SystemActor = "system"

// WithActor attaches the caller identity used for audit entries.
func WithActor(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, ctxActor, user)
}

// ActorFrom returns the caller identity stored by WithActor, or "" if none.
func ActorFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ctxActor).(string); ok {
		return v
	}
	return ""
}
