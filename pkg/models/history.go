package models

import "time"

// Stage is the set of pipeline vocabularies an audit trail can record.
type Stage interface {
	~string
	IsValid() bool
}

// StateChange is one immutable audit entry of a pipeline move. A nil
// FromState marks the entity's creation.
type StateChange[S Stage] struct {
	EntityID  int64     `json:"entityId"`
	Date      time.Time `json:"date"`
	User      string    `json:"user"`
	FromState *S        `json:"fromState"`
	ToState   S         `json:"toState"`
	Note      string    `json:"note"`
	Tags      []string  `json:"tags"`
}

type (
	VacancyStateChange = StateChange[VacancyStage]
	CompanyStateChange = StateChange[CompanyStage]
)

// Transition is a changeState request.
type Transition[S Stage] struct {
	To   S        `json:"toState"`
	Note string   `json:"note"`
	Tags []string `json:"tags,omitempty"`
	User string   `json:"user"`
}

// HistoryFilter narrows an audit trail. DateFrom and DateTo are compared
// lexically against the entry's RFC 3339 UTC timestamp, so a bare date such
// as "2024-03-01" works as a lower bound.
type HistoryFilter[S Stage] struct {
	Stage    *S     `json:"stage,omitempty"`
	User     string `json:"user,omitempty"`
	DateFrom string `json:"dateFrom,omitempty"`
	DateTo   string `json:"dateTo,omitempty"`
}
