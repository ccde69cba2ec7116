package services

import (
	"context"
	"strings"

	"github.com/carlosjramirezg1979/InProject/apperrors"
	"github.com/carlosjramirezg1979/InProject/models"
	"github.com/carlosjramirezg1979/InProject/phases"
	"github.com/carlosjramirezg1979/InProject/repositories"
)

type ProjectService struct {
	Repo repositories.Repository
}

func NewProjectService(repo repositories.Repository) *ProjectService {
	return &ProjectService{Repo: repo}
}

// ProjectSummary is a project decorated with the derived phase badge and
// progress, for dashboards.
type ProjectSummary struct {
	models.Project
	CurrentPhase phases.Badge `json:"currentPhase"`
	Progress     float64      `json:"progress"`
}

func validateProjectInput(project *models.Project) error {
	if strings.TrimSpace(project.Name) == "" {
		return apperrors.NewValidation("name", "el nombre del proyecto es obligatorio")
	}
	if strings.TrimSpace(project.Description) == "" {
		return apperrors.NewValidation("description", "la descripción es obligatoria")
	}
	if !project.EndDate.IsZero() && !project.StartDate.IsZero() && project.EndDate.Before(project.StartDate) {
		return apperrors.NewValidation("endDate", "la fecha de fin debe ser posterior a la de inicio")
	}
	if project.Budget < 0 {
		return apperrors.NewValidation("budget", "el presupuesto no puede ser negativo")
	}
	return nil
}

// CreateProject validates the charter fields and writes the project with
// its status map freshly initialized. A project never exists without all
// four phase keys.
func (s *ProjectService) CreateProject(ctx context.Context, project *models.Project, managerID string) (string, error) {
	if err := validateProjectInput(project); err != nil {
		return "", err
	}
	if _, err := s.Repo.GetManager(ctx, managerID); err != nil {
		return "", err
	}

	project.ProjectManagerID = managerID
	project.CompanyID = ""
	project.Status = phases.NewStatus()
	return s.Repo.CreateProject(ctx, project)
}

// GetProject fetches a project for the given manager. It refuses
// projects owned by someone else and fails closed on a malformed status
// map: rendering anything from a corrupt document is worse than a 500.
func (s *ProjectService) GetProject(ctx context.Context, projectID, managerID string) (*models.Project, error) {
	project, err := s.Repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.ProjectManagerID != managerID {
		return nil, apperrors.NewPrecondition("project does not belong to this manager")
	}
	if !phases.Valid(project.Status) {
		return nil, apperrors.NewPrecondition("project %s has a malformed status record", projectID)
	}
	return project, nil
}

// ListProjects returns the manager's projects with derived phase info.
func (s *ProjectService) ListProjects(ctx context.Context, managerID string) ([]ProjectSummary, error) {
	projects, err := s.Repo.ProjectsByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, ProjectSummary{
			Project:      p,
			CurrentPhase: phases.CurrentPhase(p.Status),
			Progress:     phases.ProgressPercentage(p.Status),
		})
	}
	return summaries, nil
}

// UpdateCharter persists edits to the charter fields. Status and
// association fields are untouchable through this path.
func (s *ProjectService) UpdateCharter(ctx context.Context, project *models.Project, managerID string) error {
	if err := validateProjectInput(project); err != nil {
		return err
	}
	if _, err := s.GetProject(ctx, project.ID.Hex(), managerID); err != nil {
		return err
	}
	return s.Repo.UpdateProjectCharter(ctx, project)
}

// transitionStatus loads the project, applies fn to its status map and
// persists only the status. Concurrent edits are last-write-wins; phase
// advancement is a manual, single-actor action in this domain.
func (s *ProjectService) transitionStatus(ctx context.Context, projectID, managerID string, fn func(models.ProjectStatus) (models.ProjectStatus, error)) (models.ProjectStatus, error) {
	project, err := s.GetProject(ctx, projectID, managerID)
	if err != nil {
		return models.ProjectStatus{}, err
	}

	status, err := fn(project.Status)
	if err != nil {
		return models.ProjectStatus{}, apperrors.NewValidation("phase", err.Error())
	}
	if err := s.Repo.UpdateProjectStatus(ctx, projectID, status); err != nil {
		return models.ProjectStatus{}, err
	}
	return status, nil
}

// CompletePhase marks a phase completed. The successor stays locked
// until UnlockPhase is called explicitly.
func (s *ProjectService) CompletePhase(ctx context.Context, projectID, managerID string, phase models.ProjectPhase) (models.ProjectStatus, error) {
	return s.transitionStatus(ctx, projectID, managerID, func(status models.ProjectStatus) (models.ProjectStatus, error) {
		return phases.Complete(status, phase)
	})
}

// UnlockPhase opens the next phase once its predecessor is completed.
func (s *ProjectService) UnlockPhase(ctx context.Context, projectID, managerID string, phase models.ProjectPhase) (models.ProjectStatus, error) {
	return s.transitionStatus(ctx, projectID, managerID, func(status models.ProjectStatus) (models.ProjectStatus, error) {
		return phases.Unlock(status, phase)
	})
}

// StartPhase moves an unlocked phase into progress.
func (s *ProjectService) StartPhase(ctx context.Context, projectID, managerID string, phase models.ProjectPhase) (models.ProjectStatus, error) {
	return s.transitionStatus(ctx, projectID, managerID, func(status models.ProjectStatus) (models.ProjectStatus, error) {
		return phases.Start(status, phase)
	})
}
