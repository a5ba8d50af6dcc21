package api

import (
	"net/http"

	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository"
)

type CompaniesHandler struct {
	repo     repository.CompanyRepo
	contacts repository.ContactRepo
}

func NewCompaniesHandler(cr repository.CompanyRepo, ct repository.ContactRepo) *CompaniesHandler {
	return &CompaniesHandler{repo: cr, contacts: ct}
}

func companyFilter(r *http.Request) (models.CompanyFilter, error) {
	q := r.URL.Query()
	var f models.CompanyFilter
	var err error
	if f.Pagination, err = pagination(q); err != nil {
		return f, err
	}
	if f.Industry, err = enumParam[models.Industry](q, "industry"); err != nil {
		return f, err
	}
	if f.RelationshipType, err = enumParam[models.RelationshipType](q, "relationshipType"); err != nil {
		return f, err
	}
	if f.PipelineStage, err = enumParam[models.CompanyStage](q, "pipelineStage"); err != nil {
		return f, err
	}
	if f.DateFrom, err = timeParam(q, "dateFrom"); err != nil {
		return f, err
	}
	if f.DateTo, err = timeParam(q, "dateTo"); err != nil {
		return f, err
	}
	f.Search = q.Get("search")
	f.Location = q.Get("location")
	f.Country = q.Get("country")
	return f, nil
}

func (h *CompaniesHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := companyFilter(r)
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

func (h *CompaniesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CompanyInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.repo.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, c, http.StatusCreated)
}

func (h *CompaniesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, c, http.StatusOK)
}

func (h *CompaniesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var patch models.CompanyPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, c, http.StatusOK)
}

func (h *CompaniesHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *CompaniesHandler) ChangeState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	t, err := transition[models.CompanyStage](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.repo.ChangeState(r.Context(), id, t)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, c, http.StatusOK)
}

func (h *CompaniesHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	f, err := historyFilter[models.CompanyStage](r.URL.Query())
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

func (h *CompaniesHandler) UpdateResearch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var patch models.ResearchPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.repo.UpdateResearch(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, c, http.StatusOK)
}

func (h *CompaniesHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in models.ContactInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	ct, err := h.contacts.AddContact(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, ct, http.StatusCreated)
}

func (h *CompaniesHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	contactID, err := pathID(r, "contactId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var patch models.ContactPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	ct, err := h.contacts.UpdateContact(r.Context(), id, contactID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, ct, http.StatusOK)
}

func (h *CompaniesHandler) RemoveContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	contactID, err := pathID(r, "contactId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.contacts.RemoveContact(r.Context(), id, contactID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
