package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/carlosjramirezg1979/InProject/middleware"
	"github.com/carlosjramirezg1979/InProject/models"
	"github.com/carlosjramirezg1979/InProject/services"
)

type CompanyHandler struct {
	Service *services.CompanyService
}

func NewCompanyHandler(service *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Service: service}
}

// RegisterCompany creates the client company for a project. On conflict
// (409) nothing was written; the form re-prompts the user.
func (h *CompanyHandler) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())
	vars := mux.Vars(r)

	var data models.CompanyFormData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	companyID, err := h.Service.RegisterCompany(r.Context(), &data, managerID, vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"companyId": companyID})
}

func (h *CompanyHandler) GetCompanyByID(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())
	vars := mux.Vars(r)

	company, err := h.Service.GetCompany(r.Context(), vars["id"], managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())

	companies, err := h.Service.ListCompanies(r.Context(), managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

func (h *CompanyHandler) ListCompanyProjects(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())
	vars := mux.Vars(r)

	projects, err := h.Service.ListProjectsForCompany(r.Context(), vars["id"], managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}
