package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

type VacanciesHandler struct {
	repo repository.VacancyRepo
}

func NewVacanciesHandler(r repository.VacancyRepo) *VacanciesHandler {
	return &VacanciesHandler{repo: r}
}

func vacancyFilter(r *http.Request) (models.VacancyFilter, error) {
	q := r.URL.Query()
	var f models.VacancyFilter
	var err error
	if f.Pagination, err = pagination(q); err != nil {
		return f, err
	}
	if f.Status, err = enumParam[models.VacancyStatus](q, "status"); err != nil {
		return f, err
	}
	if f.PipelineStage, err = enumParam[models.VacancyStage](q, "pipelineStage"); err != nil {
		return f, err
	}
	if f.Source, err = enumParam[models.Source](q, "source"); err != nil {
		return f, err
	}
	if f.SeniorityLevel, err = enumParam[models.SeniorityLevel](q, "seniorityLevel"); err != nil {
		return f, err
	}
	if f.JobType, err = enumParam[models.JobType](q, "jobType"); err != nil {
		return f, err
	}
	if f.WorkModality, err = enumParam[models.WorkModality](q, "workModality"); err != nil {
		return f, err
	}
	if f.DateFrom, err = timeParam(q, "dateFrom"); err != nil {
		return f, err
	}
	if f.DateTo, err = timeParam(q, "dateTo"); err != nil {
		return f, err
	}
	if raw := strings.TrimSpace(q.Get("companyId")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, invalid("invalid companyId %q", raw)
		}
		f.CompanyID = &id
	}
	f.Search = q.Get("search")
	f.CompanyName = q.Get("companyName")
	f.Location = q.Get("location")
	return f, nil
}

func (h *VacanciesHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := vacancyFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := h.repo.Query(r.Context(), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, page, http.StatusOK)
}

func (h *VacanciesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.VacancyInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	v, err := h.repo.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, v, http.StatusCreated)
}

func (h *VacanciesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	v, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, v, http.StatusOK)
}

func (h *VacanciesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var patch models.VacancyPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	v, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, v, http.StatusOK)
}

func (h *VacanciesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VacanciesHandler) ChangeState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	t, err := transition[models.VacancyStage](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	v, err := h.repo.ChangeState(r.Context(), id, t)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, v, http.StatusOK)
}

func (h *VacanciesHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	f, err := historyFilter[models.VacancyStage](r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	hist, err := h.repo.GetHistory(r.Context(), id, f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, hist, http.StatusOK)
}
