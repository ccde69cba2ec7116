package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carlosjramirezg1979/InProject/middleware"
	"github.com/carlosjramirezg1979/InProject/models"
	"github.com/carlosjramirezg1979/InProject/phases"
	"github.com/carlosjramirezg1979/InProject/services"
)

type ProjectHandler struct {
	Service *services.ProjectService
}

func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{Service: service}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}

	id, err := h.Service.CreateProject(r.Context(), &project, managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())

	summaries, err := h.Service.ListProjects(r.Context(), managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *ProjectHandler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())
	vars := mux.Vars(r)

	project, err := h.Service.GetProject(r.Context(), vars["id"], managerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// GetProjectStatus returns the raw status map plus the derived badge and
// progress, so the client renders exactly what the state machine says.
func (h *ProjectHandler) GetProjectStatus(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())
	vars := mux.Vars(r)

	project, err := h.Service.GetProject(r.Context(), vars["id"], managerID)
	if err != nil {
		writeError(w, err)
		return
	}

	unlocked := map[models.ProjectPhase]bool{}
	for _, phase := range phases.Order {
		unlocked[phase] = phases.IsUnlocked(project.Status, phase)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       project.Status,
		"currentPhase": phases.CurrentPhase(project.Status),
		"progress":     phases.ProgressPercentage(project.Status),
		"unlocked":     unlocked,
	})
}

func (h *ProjectHandler) UpdateCharter(w http.ResponseWriter, r *http.Request) {
	managerID := middleware.ManagerIDFromContext(r.Context())
	vars := mux.Vars(r)

	objectID, err := primitive.ObjectIDFromHex(vars["id"])
	if err != nil {
		http.Error(w, "Invalid project ID format", http.StatusBadRequest)
		return
	}

	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "Invalid request data", http.StatusBadRequest)
		return
	}
	project.ID = objectID

	if err := h.Service.UpdateCharter(r.Context(), &project, managerID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Proyecto actualizado."})
}

// phaseAction runs one of the three explicit phase transitions. The
// route decides which; the state machine decides whether it is legal.
func (h *ProjectHandler) phaseAction(w http.ResponseWriter, r *http.Request, action func(projectID, managerID string, phase models.ProjectPhase) (models.ProjectStatus, error)) {
	managerID := middleware.ManagerIDFromContext(r.Context())
	vars := mux.Vars(r)

	status, err := action(vars["id"], managerID, models.ProjectPhase(vars["phase"]))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       status,
		"currentPhase": phases.CurrentPhase(status),
		"progress":     phases.ProgressPercentage(status),
	})
}

func (h *ProjectHandler) CompletePhase(w http.ResponseWriter, r *http.Request) {
	h.phaseAction(w, r, func(projectID, managerID string, phase models.ProjectPhase) (models.ProjectStatus, error) {
		return h.Service.CompletePhase(r.Context(), projectID, managerID, phase)
	})
}

func (h *ProjectHandler) UnlockPhase(w http.ResponseWriter, r *http.Request) {
	h.phaseAction(w, r, func(projectID, managerID string, phase models.ProjectPhase) (models.ProjectStatus, error) {
		return h.Service.UnlockPhase(r.Context(), projectID, managerID, phase)
	})
}

func (h *ProjectHandler) StartPhase(w http.ResponseWriter, r *http.Request) {
	h.phaseAction(w, r, func(projectID, managerID string, phase models.ProjectPhase) (models.ProjectStatus, error) {
		return h.Service.StartPhase(r.Context(), projectID, managerID, phase)
	})
}
