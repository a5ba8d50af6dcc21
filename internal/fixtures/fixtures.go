// Package fixtures loads the seed data set that the server restores into an
// empty engine. The data is checked against a JSON schema before decoding.
package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/qri-io/jsonschema"

	"github.com/garnizeh/staffing/pkg/models"
)

const (
	SchemaFile = "seed/fixtures.schema.json"
	DataFile   = "seed/fixtures.json"
)

// Restorer receives a decoded snapshot.
type Restorer interface {
	Restore(s models.Snapshot) error
}

// Loader validates fixture documents against a compiled schema.
type Loader struct {
	schema *jsonschema.Schema
}

func NewLoader(schemaJSON []byte) (*Loader, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(schemaJSON, rs); err != nil {
		return nil, fmt.Errorf("compile fixtures schema: %w", err)
	}
	return &Loader{schema: rs}, nil
}

// Validate reports every schema violation in b as a single joined error.
func (l *Loader) Validate(ctx context.Context, b []byte) error {
	verrs, err := l.schema.ValidateBytes(ctx, b)
	if err != nil {
		return fmt.Errorf("validate fixtures: %w", err)
	}
	if len(verrs) == 0 {
		return nil
	}
	errs := make([]error, 0, len(verrs))
	for _, ke := range verrs {
		errs = append(errs, fmt.Errorf("%s: %s", ke.PropertyPath, ke.Message))
	}
	return fmt.Errorf("fixtures do not match schema: %w", errors.Join(errs...))
}

// Decode validates b and decodes it into a snapshot.
func (l *Loader) Decode(ctx context.Context, b []byte) (*models.Snapshot, error) {
	if err := l.Validate(ctx, b); err != nil {
		return nil, err
	}
	var s models.Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return &s, nil
}

// Load reads the schema and data files from fsys and returns the decoded
// snapshot.
func Load(ctx context.Context, fsys fs.FS) (*models.Snapshot, error) {
	schema, err := fs.ReadFile(fsys, SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SchemaFile, err)
	}
	data, err := fs.ReadFile(fsys, DataFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", DataFile, err)
	}
	l, err := NewLoader(schema)
	if err != nil {
		return nil, err
	}
	return l.Decode(ctx, data)
}

// Seed loads the fixtures from fsys and restores them into r.
func Seed(ctx context.Context, fsys fs.FS, r Restorer) (*models.Snapshot, error) {
	s, err := Load(ctx, fsys)
	if err != nil {
		return nil, err
	}
	if err := r.Restore(*s); err != nil {
		return nil, fmt.Errorf("seed fixtures: %w", err)
	}
	return s, nil
}
