package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/staffing/pkg/repository"
)

// Services are the repositories the HTTP layer delegates to.
type Services struct {
	Vacancies repository.VacancyRepo
	Companies repository.CompanyRepo
	Contacts  repository.ContactRepo
}

func SetupRoutes(version, buildTime string, s Services) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestContextMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := &SystemHandler{}
	vacancies := NewVacanciesHandler(s.Vacancies)
	companies := NewCompaniesHandler(s.Companies, s.Contacts)
	stats := NewStatsHandler(s.Vacancies, s.Companies)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods(http.MethodGet)
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods(http.MethodGet)

	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.HandleFunc("/stats", stats.Pipeline).Methods(http.MethodGet)

	// Vacancies endpoints
	apiV1.HandleFunc("/vacancies", vacancies.List).Methods(http.MethodGet)
	apiV1.HandleFunc("/vacancies", vacancies.Create).Methods(http.MethodPost)
	apiV1.HandleFunc("/vacancies/{id:[0-9]+}", vacancies.Get).Methods(http.MethodGet)
	apiV1.HandleFunc("/vacancies/{id:[0-9]+}", vacancies.Update).Methods(http.MethodPatch)
	apiV1.HandleFunc("/vacancies/{id:[0-9]+}", vacancies.Delete).Methods(http.MethodDelete)
	apiV1.HandleFunc("/vacancies/{id:[0-9]+}/state", vacancies.ChangeState).Methods(http.MethodPost)
	apiV1.HandleFunc("/vacancies/{id:[0-9]+}/history", vacancies.History).Methods(http.MethodGet)

	// Companies endpoints
	apiV1.HandleFunc("/companies", companies.List).Methods(http.MethodGet)
	apiV1.HandleFunc("/companies", companies.Create).Methods(http.MethodPost)
	apiV1.HandleFunc("/companies/{id:[0-9]+}", companies.Get).Methods(http.MethodGet)
	apiV1.HandleFunc("/companies/{id:[0-9]+}", companies.Update).Methods(http.MethodPatch)
	apiV1.HandleFunc("/companies/{id:[0-9]+}", companies.Delete).Methods(http.MethodDelete)
	apiV1.HandleFunc("/companies/{id:[0-9]+}/state", companies.ChangeState).Methods(http.MethodPost)
	apiV1.HandleFunc("/companies/{id:[0-9]+}/history", companies.History).Methods(http.MethodGet)
	apiV1.HandleFunc("/companies/{id:[0-9]+}/research", companies.UpdateResearch).Methods(http.MethodPut)

	// Contacts endpoints
	apiV1.HandleFunc("/companies/{id:[0-9]+}/contacts", companies.AddContact).Methods(http.MethodPost)
	apiV1.HandleFunc("/companies/{id:[0-9]+}/contacts/{contactId:[0-9]+}", companies.UpdateContact).Methods(http.MethodPatch)
	apiV1.HandleFunc("/companies/{id:[0-9]+}/contacts/{contactId:[0-9]+}", companies.RemoveContact).Methods(http.MethodDelete)

	// Unmatched routes never reach the middleware chain. Preflight requests
	// land in the method-not-allowed path and are answered by CORSMiddleware.
	r.NotFoundHandler = RequestContextMiddleware(http.HandlerFunc(notFound))
	r.MethodNotAllowedHandler = RequestContextMiddleware(CORSMiddleware(http.HandlerFunc(methodNotAllowed)))

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, errorBody{Error: "route not found", RequestID: RequestID(r.Context())}, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, errorBody{Error: "method not allowed", RequestID: RequestID(r.Context())}, http.StatusMethodNotAllowed)
}
