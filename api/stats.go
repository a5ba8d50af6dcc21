package api

import (
	"net/http"

	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

type StatsHandler struct {
	vacancies repository.VacancyRepo
	companies repository.CompanyRepo
}

func NewStatsHandler(vr repository.VacancyRepo, cr repository.CompanyRepo) *StatsHandler {
	return &StatsHandler{vacancies: vr, companies: cr}
}

type vacancyStats struct {
	ByStage  map[models.VacancyStage]int  `json:"byStage"`
	ByStatus map[models.VacancyStatus]int `json:"byStatus"`
}

type companyStats struct {
	ByStage        map[models.CompanyStage]int     `json:"byStage"`
	ByRelationship map[models.RelationshipType]int `json:"byRelationship"`
}

type statsResponse struct {
	Vacancies vacancyStats `json:"vacancies"`
	Companies companyStats `json:"companies"`
}

// Pipeline returns the dashboard counts for both entity families.
func (h *StatsHandler) Pipeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var resp statsResponse
	var err error
	if resp.Vacancies.ByStage, err = h.vacancies.CountsByStage(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	if resp.Vacancies.ByStatus, err = h.vacancies.CountsByStatus(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	if resp.Companies.ByStage, err = h.companies.CountsByStage(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	if resp.Companies.ByRelationship, err = h.companies.CountsByRelationship(ctx); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, resp, http.StatusOK)
}
