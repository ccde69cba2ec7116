package services

import (
	"context"
	"strings"

	"github.com/carlosjramirezg1979/InProject/apperrors"
	"github.com/carlosjramirezg1979/InProject/models"
	"github.com/carlosjramirezg1979/InProject/repositories"
)

// StakeholderService maintains a project's stakeholder register, filled
// in during the initiation phase.
type StakeholderService struct {
	Repo repositories.Repository
}

func NewStakeholderService(repo repositories.Repository) *StakeholderService {
	return &StakeholderService{Repo: repo}
}

func (s *StakeholderService) AddStakeholder(ctx context.Context, stakeholder *models.Stakeholder, managerID string) (string, error) {
	if strings.TrimSpace(stakeholder.Name) == "" {
		return "", apperrors.NewValidation("name", "el nombre es obligatorio")
	}
	if strings.TrimSpace(stakeholder.Email) == "" {
		return "", apperrors.NewValidation("email", "el correo es obligatorio")
	}

	project, err := s.Repo.GetProject(ctx, stakeholder.ProjectID)
	if err != nil {
		return "", err
	}
	if project.ProjectManagerID != managerID {
		return "", apperrors.NewPrecondition("project does not belong to this manager")
	}

	return s.Repo.AddStakeholder(ctx, stakeholder)
}

// ListStakeholders returns the register for a project owned by the
// given manager.
func (s *StakeholderService) ListStakeholders(ctx context.Context, projectID, managerID string) ([]models.Stakeholder, error) {
	project, err := s.Repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.ProjectManagerID != managerID {
		return nil, apperrors.NewPrecondition("project does not belong to this manager")
	}
	return s.Repo.StakeholdersByProject(ctx, projectID)
}

func (s *StakeholderService) DeleteStakeholder(ctx context.Context, projectID, stakeholderID, managerID string) error {
	project, err := s.Repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if project.ProjectManagerID != managerID {
		return apperrors.NewPrecondition("project does not belong to this manager")
	}
	return s.Repo.DeleteStakeholder(ctx, projectID, stakeholderID)
}
