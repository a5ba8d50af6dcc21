package models

import "time"

// Domain models shared by the engine and its transport/persistence collaborators.

type Vacancy struct {
	ID             int64          `json:"id"`
	JobTitle       string         `json:"jobTitle"`
	CompanyID      int64          `json:"companyId"`
	CompanyName    string         `json:"companyName"`
	Location       string         `json:"location"`
	Department     string         `json:"department"`
	SeniorityLevel SeniorityLevel `json:"seniorityLevel"`
	JobType        JobType        `json:"jobType"`
	WorkModality   WorkModality   `json:"workModality"`
	IsRemoteViable bool           `json:"isRemoteViable"`
	SalaryRange    string         `json:"salaryRange"`
	Status         VacancyStatus  `json:"status"`
	PipelineStage  VacancyStage   `json:"pipelineStage"`
	Source         Source         `json:"source"`
	OriginalURL    string         `json:"originalUrl"`
	PublishedDate  time.Time      `json:"publishedDate"`
	ScrapedAt      time.Time      `json:"scrapedAt"`
	Description    string         `json:"description"`
	Notes          string         `json:"notes"`
	AssignedTo     *string        `json:"assignedTo,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// VacancyInput carries a create request. Nil fields are inferred or defaulted.
type VacancyInput struct {
	JobTitle       string          `json:"jobTitle" validate:"required"`
	CompanyID      int64           `json:"companyId" validate:"required,gt=0"`
	CompanyName    *string         `json:"companyName,omitempty"`
	Location       *string         `json:"location,omitempty"`
	Department     *string         `json:"department,omitempty"`
	SeniorityLevel *SeniorityLevel `json:"seniorityLevel,omitempty" validate:"omitempty,enum"`
	JobType        *JobType        `json:"jobType,omitempty" validate:"omitempty,enum"`
	WorkModality   *WorkModality   `json:"workModality,omitempty" validate:"omitempty,enum"`
	IsRemoteViable *bool           `json:"isRemoteViable,omitempty"`
	SalaryRange    *string         `json:"salaryRange,omitempty"`
	Status         *VacancyStatus  `json:"status,omitempty" validate:"omitempty,enum"`
	PipelineStage  *VacancyStage   `json:"pipelineStage,omitempty" validate:"omitempty,enum"`
	Source         *Source         `json:"source,omitempty" validate:"omitempty,enum"`
	OriginalURL    *string         `json:"originalUrl,omitempty" validate:"omitempty,url"`
	PublishedDate  *time.Time      `json:"publishedDate,omitempty"`
	ScrapedAt      *time.Time      `json:"scrapedAt,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	AssignedTo     *string         `json:"assignedTo,omitempty"`
}

// VacancyPatch is a shallow field patch; nil means "leave unchanged". The
// pipeline stage only moves through ChangeState.
type VacancyPatch struct {
	JobTitle       *string         `json:"jobTitle,omitempty" validate:"omitempty,min=1"`
	CompanyID      *int64          `json:"companyId,omitempty" validate:"omitempty,gt=0"`
	CompanyName    *string         `json:"companyName,omitempty"`
	Location       *string         `json:"location,omitempty"`
	Department     *string         `json:"department,omitempty"`
	SeniorityLevel *SeniorityLevel `json:"seniorityLevel,omitempty" validate:"omitempty,enum"`
	JobType        *JobType        `json:"jobType,omitempty" validate:"omitempty,enum"`
	WorkModality   *WorkModality   `json:"workModality,omitempty" validate:"omitempty,enum"`
	IsRemoteViable *bool           `json:"isRemoteViable,omitempty"`
	SalaryRange    *string         `json:"salaryRange,omitempty"`
	Status         *VacancyStatus  `json:"status,omitempty" validate:"omitempty,enum"`
	Source         *Source         `json:"source,omitempty" validate:"omitempty,enum"`
	OriginalURL    *string         `json:"originalUrl,omitempty" validate:"omitempty,url"`
	PublishedDate  *time.Time      `json:"publishedDate,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
	AssignedTo     *string         `json:"assignedTo,omitempty"`
}

type Company struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Industry         Industry         `json:"industry"`
	Location         string           `json:"location"`
	RelationshipType RelationshipType `json:"relationshipType"`
	PipelineStage    CompanyStage     `json:"pipelineStage"`
	Website          string           `json:"website,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	EmployeeCount    string           `json:"employeeCount,omitempty"`
	Country          string           `json:"country,omitempty"`
	Contacts         []Contact        `json:"contacts"`
	Research         *Research        `json:"research,omitempty"`
	AssignedTo       *string          `json:"assignedTo,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// PrimaryContact returns the company's primary contact, if any.
func (c Company) PrimaryContact() (Contact, bool) {
	for _, ct := range c.Contacts {
		if ct.IsPrimary {
			return ct, true
		}
	}
	return Contact{}, false
}

type CompanyInput struct {
	Name             string            `json:"name" validate:"required"`
	Industry         *Industry         `json:"industry,omitempty" validate:"omitempty,enum"`
	Location         *string           `json:"location,omitempty"`
	RelationshipType *RelationshipType `json:"relationshipType,omitempty" validate:"omitempty,enum"`
	PipelineStage    *CompanyStage     `json:"pipelineStage,omitempty" validate:"omitempty,enum"`
	Website          *string           `json:"website,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	EmployeeCount    *string           `json:"employeeCount,omitempty"`
	Country          *string           `json:"country,omitempty"`
	Contacts         []ContactInput    `json:"contacts,omitempty" validate:"dive"`
	AssignedTo       *string           `json:"assignedTo,omitempty"`
}

type CompanyPatch struct {
	Name             *string           `json:"name,omitempty" validate:"omitempty,min=1"`
	Industry         *Industry         `json:"industry,omitempty" validate:"omitempty,enum"`
	Location         *string           `json:"location,omitempty"`
	RelationshipType *RelationshipType `json:"relationshipType,omitempty" validate:"omitempty,enum"`
	Website          *string           `json:"website,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	EmployeeCount    *string           `json:"employeeCount,omitempty"`
	Country          *string           `json:"country,omitempty"`
	AssignedTo       *string           `json:"assignedTo,omitempty"`
}

type Contact struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	JobTitle    string `json:"jobTitle"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LinkedInURL string `json:"linkedinUrl,omitempty"`
	IsPrimary   bool   `json:"isPrimary"`
}

type ContactInput struct {
	FullName    string  `json:"fullName" validate:"required"`
	JobTitle    string  `json:"jobTitle"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	LinkedInURL *string `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	IsPrimary   *bool   `json:"isPrimary,omitempty"`
}

type ContactPatch struct {
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,min=1"`
	JobTitle    *string `json:"jobTitle,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	LinkedInURL *string `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	IsPrimary   *bool   `json:"isPrimary,omitempty"`
}

type Research struct {
	ValueProposition    *string `json:"valueProposition,omitempty"`
	Mission             *string `json:"mission,omitempty"`
	Vision              *string `json:"vision,omitempty"`
	SalesPitch          *string `json:"salesPitch,omitempty"`
	LastResearchDate    string  `json:"lastResearchDate,omitempty"`
	CompletenessPercent int     `json:"completenessPercent"`
}

// ResearchPatch updates research fields. Nil keeps the current value, an empty
// string clears it.
type ResearchPatch struct {
	ValueProposition *string `json:"valueProposition,omitempty"`
	Mission          *string `json:"mission,omitempty"`
	Vision           *string `json:"vision,omitempty"`
	SalesPitch       *string `json:"salesPitch,omitempty"`
}
