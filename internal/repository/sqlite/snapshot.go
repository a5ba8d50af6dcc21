package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

const (
	kindVacancy = "vacancy"
	kindCompany = "company"
)

// SnapshotInfo describes the last saved snapshot.
type SnapshotInfo struct {
	Saved     time.Time
	Vacancies int
	Companies int
}

// SaveSnapshot replaces the stored state with s in a single transaction.
func (r *SQLiteRepo) SaveSnapshot(ctx context.Context, s models.Snapshot) error {
	err := r.conn.WithTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"companies", "vacancies", "state_changes"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for pos, c := range s.Companies {
			doc, err := json.Marshal(c)
			if err != nil {
				return fmt.Errorf("encode company %d: %w", c.ID, err)
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO companies (id, position, name, doc) VALUES (?, ?, ?, ?)`, c.ID, pos, c.Name, string(doc)); err != nil {
				return fmt.Errorf("insert company %d: %w", c.ID, err)
			}
		}
		for pos, v := range s.Vacancies {
			doc, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("encode vacancy %d: %w", v.ID, err)
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO vacancies (id, position, company_id, doc) VALUES (?, ?, ?, ?)`, v.ID, pos, v.CompanyID, string(doc)); err != nil {
				return fmt.Errorf("insert vacancy %d: %w", v.ID, err)
			}
		}
		if err := insertTrails(ctx, tx, kindCompany, s.CompanyHistory); err != nil {
			return err
		}
		if err := insertTrails(ctx, tx, kindVacancy, s.VacancyHistory); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `INSERT INTO snapshot_meta (id, saved, vacancies, companies) VALUES (1, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET saved = excluded.saved, vacancies = excluded.vacancies, companies = excluded.companies`,
			now(), len(s.Vacancies), len(s.Companies))
		return err
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	r.logger.Info("snapshot saved", "vacancies", len(s.Vacancies), "companies", len(s.Companies))
	return nil
}

func insertTrails[S models.Stage](ctx context.Context, tx *sql.Tx, kind string, trails map[int64][]models.StateChange[S]) error {
	for id, trail := range trails {
		for seq, e := range trail {
			doc, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("encode %s %d history: %w", kind, id, err)
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO state_changes (entity_kind, entity_id, seq, doc) VALUES (?, ?, ?, ?)`, kind, id, seq, string(doc)); err != nil {
				return fmt.Errorf("insert %s %d history: %w", kind, id, err)
			}
		}
	}
	return nil
}

// LoadSnapshot reads the stored state back. It returns ErrNotFound when
// nothing was saved yet.
func (r *SQLiteRepo) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	if _, err := r.Info(ctx); err != nil {
		return nil, err
	}

	var s models.Snapshot
	var err error
	if s.Companies, err = loadDocs[models.Company](ctx, r, `SELECT doc FROM companies ORDER BY position`); err != nil {
		return nil, fmt.Errorf("load companies: %w", err)
	}
	if s.Vacancies, err = loadDocs[models.Vacancy](ctx, r, `SELECT doc FROM vacancies ORDER BY position`); err != nil {
		return nil, fmt.Errorf("load vacancies: %w", err)
	}
	if s.CompanyHistory, err = loadTrails[models.CompanyStage](ctx, r, kindCompany); err != nil {
		return nil, err
	}
	if s.VacancyHistory, err = loadTrails[models.VacancyStage](ctx, r, kindVacancy); err != nil {
		return nil, err
	}
	r.logger.Info("snapshot loaded", "vacancies", len(s.Vacancies), "companies", len(s.Companies))
	return &s, nil
}

// Info reports when the last snapshot was saved.
func (r *SQLiteRepo) Info(ctx context.Context) (*SnapshotInfo, error) {
	var saved int64
	var info SnapshotInfo
	err := r.conn.QueryRow(ctx, `SELECT saved, vacancies, companies FROM snapshot_meta WHERE id = 1`).Scan(&saved, &info.Vacancies, &info.Companies)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no snapshot saved", repository.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	info.Saved = time.UnixMilli(saved).UTC()
	return &info, nil
}

func loadDocs[T any](ctx context.Context, r *SQLiteRepo, query string, args ...any) ([]T, error) {
	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var item T
		if err := json.Unmarshal([]byte(doc), &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func loadTrails[S models.Stage](ctx context.Context, r *SQLiteRepo, kind string) (map[int64][]models.StateChange[S], error) {
	entries, err := loadDocs[models.StateChange[S]](ctx, r, `SELECT doc FROM state_changes WHERE entity_kind = ? ORDER BY entity_id, seq`, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s history: %w", kind, err)
	}
	out := make(map[int64][]models.StateChange[S])
	for _, e := range entries {
		out[e.EntityID] = append(out[e.EntityID], e)
	}
	return out, nil
}
