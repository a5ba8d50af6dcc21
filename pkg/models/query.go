package models

import "time"

// Pagination is shared by every listing. SortBy and SortOrder are accepted for
// wire compatibility; each listing applies its own fixed ordering.
type Pagination struct {
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`
}

type VacancyFilter struct {
	Pagination
	Status         *VacancyStatus  `json:"status,omitempty"`
	PipelineStage  *VacancyStage   `json:"pipelineStage,omitempty"`
	Source         *Source         `json:"source,omitempty"`
	SeniorityLevel *SeniorityLevel `json:"seniorityLevel,omitempty"`
	JobType        *JobType        `json:"jobType,omitempty"`
	WorkModality   *WorkModality   `json:"workModality,omitempty"`
	CompanyID      *int64          `json:"companyId,omitempty"`
	Search         string          `json:"search,omitempty"`
	CompanyName    string          `json:"companyName,omitempty"`
	Location       string          `json:"location,omitempty"`
	DateFrom       *time.Time      `json:"dateFrom,omitempty"`
	DateTo         *time.Time      `json:"dateTo,omitempty"`
}

type CompanyFilter struct {
	Pagination
	Industry         *Industry         `json:"industry,omitempty"`
	RelationshipType *RelationshipType `json:"relationshipType,omitempty"`
	PipelineStage    *CompanyStage     `json:"pipelineStage,omitempty"`
	Search           string            `json:"search,omitempty"`
	Location         string            `json:"location,omitempty"`
	Country          string            `json:"country,omitempty"`
	DateFrom         *time.Time        `json:"dateFrom,omitempty"`
	DateTo           *time.Time        `json:"dateTo,omitempty"`
}

type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Snapshot is the full engine state, used for fixtures and persistence.
type Snapshot struct {
	Vacancies      []Vacancy                      `json:"vacancies"`
	VacancyHistory map[int64][]VacancyStateChange `json:"vacancyHistory,omitempty"`
	Companies      []Company                      `json:"companies"`
	CompanyHistory map[int64][]CompanyStateChange `json:"companyHistory,omitempty"`
}
