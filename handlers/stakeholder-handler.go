package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/carlosjramirezg1979/InProject/middleware"
	"github.com/carlosjramirezg1979/InProject/models"
	"github.com/carlosjramirezg1979/InProject/services"
)

type StakeholderHandler struct {
	Service *services.StakeholderService
}

func NewStakeholderHandler(service *services.StakeholderService) *StakeholderHandler {
	return &StakeholderHandler{Service: service}
}

func (h *StakeholderHandler) AddStakeholder(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())
	vars := mux.Vars(r)

	var stakeholder models.Stakeholder
	if err := json.NewDecoder(r.Body).Decode(&stakeholder); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}
	stakeholder.ProjectID = vars["id"]

	id, err := h.Service.AddStakeholder(r.Context(), &stakeholder, managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *StakeholderHandler) ListStakeholders(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())
	vars := mux.Vars(r)

	stakeholders, err := h.Service.ListStakeholders(r.Context(), vars["id"], managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stakeholders)
}

func (h *StakeholderHandler) DeleteStakeholder(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())
	vars := mux.Vars(r)

	if err := h.Service.DeleteStakeholder(r.Context(), vars["id"], vars["stakeholderId"], managerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Interesado eliminado."})
}
