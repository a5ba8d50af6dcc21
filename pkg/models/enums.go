package models

// Enum vocabularies are the wire contract with transport and persistence, so
// they stay plain strings.

type VacancyStatus string

const (
	VacancyStatusActive  VacancyStatus = "active"
	VacancyStatusFilled  VacancyStatus = "filled"
	VacancyStatusExpired VacancyStatus = "expired"
)

var VacancyStatuses = []VacancyStatus{VacancyStatusActive, VacancyStatusFilled, VacancyStatusExpired}

func (s VacancyStatus) IsValid() bool { return contains(VacancyStatuses, s) }

type VacancyStage string

const (
	VacancyStageDetected  VacancyStage = "detected"
	VacancyStageContacted VacancyStage = "contacted"
	VacancyStageProposal  VacancyStage = "proposal"
	VacancyStageWon       VacancyStage = "won"
	VacancyStageLost      VacancyStage = "lost"
)

// VacancyStages lists the vacancy pipeline in its advisory order.
var VacancyStages = []VacancyStage{
	VacancyStageDetected,
	VacancyStageContacted,
	VacancyStageProposal,
	VacancyStageWon,
	VacancyStageLost,
}

func (s VacancyStage) IsValid() bool { return contains(VacancyStages, s) }

type Source string

const (
	SourceManual         Source = "manual"
	SourceLinkedIn       Source = "linkedin"
	SourceIndeed         Source = "indeed"
	SourceGlassdoor      Source = "glassdoor"
	SourceCompanyWebsite Source = "company_website"
)

var Sources = []Source{SourceManual, SourceLinkedIn, SourceIndeed, SourceGlassdoor, SourceCompanyWebsite}

func (s Source) IsValid() bool { return contains(Sources, s) }

type SeniorityLevel string

const (
	SeniorityEntry    SeniorityLevel = "entry_level"
	SeniorityMid      SeniorityLevel = "mid_level"
	SenioritySenior   SeniorityLevel = "senior"
	SeniorityLead     SeniorityLevel = "lead"
	SeniorityManager  SeniorityLevel = "manager"
	SeniorityDirector SeniorityLevel = "director"
)

var SeniorityLevels = []SeniorityLevel{
	SeniorityEntry,
	SeniorityMid,
	SenioritySenior,
	SeniorityLead,
	SeniorityManager,
	SeniorityDirector,
}

func (s SeniorityLevel) IsValid() bool { return contains(SeniorityLevels, s) }

type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship}

func (t JobType) IsValid() bool { return contains(JobTypes, t) }

type WorkModality string

const (
	WorkModalityOnSite WorkModality = "on_site"
	WorkModalityRemote WorkModality = "remote"
	WorkModalityHybrid WorkModality = "hybrid"
)

var WorkModalities = []WorkModality{WorkModalityOnSite, WorkModalityRemote, WorkModalityHybrid}

func (m WorkModality) IsValid() bool { return contains(WorkModalities, m) }

type Industry string

const (
	IndustryTechnology    Industry = "technology"
	IndustryHealthcare    Industry = "healthcare"
	IndustryFinance       Industry = "finance"
	IndustryManufacturing Industry = "manufacturing"
	IndustryRetail        Industry = "retail"
	IndustryEducation     Industry = "education"
	IndustryHospitality   Industry = "hospitality"
	IndustryLogistics     Industry = "logistics"
	IndustryConsulting    Industry = "consulting"
	IndustryOther         Industry = "other"
)

var Industries = []Industry{
	IndustryTechnology,
	IndustryHealthcare,
	IndustryFinance,
	IndustryManufacturing,
	IndustryRetail,
	IndustryEducation,
	IndustryHospitality,
	IndustryLogistics,
	IndustryConsulting,
	IndustryOther,
}

func (i Industry) IsValid() bool { return contains(Industries, i) }

type RelationshipType string

const (
	RelationshipClient   RelationshipType = "client"
	RelationshipProspect RelationshipType = "prospect"
	RelationshipLead     RelationshipType = "lead"
	RelationshipInactive RelationshipType = "inactive"
)

var RelationshipTypes = []RelationshipType{
	RelationshipClient,
	RelationshipProspect,
	RelationshipLead,
	RelationshipInactive,
}

func (r RelationshipType) IsValid() bool { return contains(RelationshipTypes, r) }

type CompanyStage string

const (
	CompanyStageLead             CompanyStage = "lead"
	CompanyStageProspecting      CompanyStage = "prospecting"
	CompanyStageEngaged          CompanyStage = "engaged"
	CompanyStageMeetingScheduled CompanyStage = "meeting_scheduled"
	CompanyStageProposalSent     CompanyStage = "proposal_sent"
	CompanyStageNegotiation      CompanyStage = "negotiation"
	CompanyStageOnboarding       CompanyStage = "onboarding"
	CompanyStageActiveClient     CompanyStage = "active_client"
	CompanyStageLost             CompanyStage = "lost"
)

// CompanyStages lists the company pipeline in its advisory order.
var CompanyStages = []CompanyStage{
	CompanyStageLead,
	CompanyStageProspecting,
	CompanyStageEngaged,
	CompanyStageMeetingScheduled,
	CompanyStageProposalSent,
	CompanyStageNegotiation,
	CompanyStageOnboarding,
	CompanyStageActiveClient,
	CompanyStageLost,
}

func (s CompanyStage) IsValid() bool { return contains(CompanyStages, s) }

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
