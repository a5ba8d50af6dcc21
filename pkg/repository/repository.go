package repository

import (
	"context"

	"github.com/garnizeh/staffing/pkg/models"
)

// Repository interfaces for the two entity families. These are the public
// contracts consumers should depend on; the in-memory engine lives in
// pkg/repository/mock.

type VacancyRepo interface {
	Create(ctx context.Context, in models.VacancyInput) (*models.Vacancy, error)
	GetByID(ctx context.Context, id int64) (*models.Vacancy, error)
	Update(ctx context.Context, id int64, patch models.VacancyPatch) (*models.Vacancy, error)
	Delete(ctx context.Context, id int64) error
	Query(ctx context.Context, f models.VacancyFilter) (*models.Page[models.Vacancy], error)
	ChangeState(ctx context.Context, id int64, t models.Transition[models.VacancyStage]) (*models.Vacancy, error)
	GetHistory(ctx context.Context, id int64, f models.HistoryFilter[models.VacancyStage]) ([]models.VacancyStateChange, error)
	CountsByStage(ctx context.Context) (map[models.VacancyStage]int, error)
	CountsByStatus(ctx context.Context) (map[models.VacancyStatus]int, error)
}

type CompanyRepo interface {
	Create(ctx context.Context, in models.CompanyInput) (*models.Company, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	Update(ctx context.Context, id int64, patch models.CompanyPatch) (*models.Company, error)
	Delete(ctx context.Context, id int64) error
	Query(ctx context.Context, f models.CompanyFilter) (*models.Page[models.Company], error)
	ChangeState(ctx context.Context, id int64, t models.Transition[models.CompanyStage]) (*models.Company, error)
	GetHistory(ctx context.Context, id int64, f models.HistoryFilter[models.CompanyStage]) ([]models.CompanyStateChange, error)
	UpdateResearch(ctx context.Context, id int64, patch models.ResearchPatch) (*models.Company, error)
	CountsByStage(ctx context.Context) (map[models.CompanyStage]int, error)
	CountsByRelationship(ctx context.Context) (map[models.RelationshipType]int, error)
}

type ContactRepo interface {
	AddContact(ctx context.Context, companyID int64, in models.ContactInput) (*models.Contact, error)
	UpdateContact(ctx context.Context, companyID, contactID int64, patch models.ContactPatch) (*models.Contact, error)
	RemoveContact(ctx context.Context, companyID, contactID int64) error
}

// SnapshotRepo persists the full engine state.
type SnapshotRepo interface {
	SaveSnapshot(ctx context.Context, s models.Snapshot) error
	LoadSnapshot(ctx context.Context) (*models.Snapshot, error)
}
