package services

import (
	"context"
	"strings"

	"github.com/carlosjramirezg1979/InProject/apperrors"
	"github.com/carlosjramirezg1979/InProject/models"
	"github.com/carlosjramirezg1979/InProject/repositories"
)

// CompanyService owns company registration. Registration is the one
// multi-document transition in the system; everything else here is plain
// reads.
type CompanyService struct {
	Repo repositories.Repository
}

func NewCompanyService(repo repositories.Repository) *CompanyService {
	return &CompanyService{Repo: repo}
}

func validateCompanyInput(data *models.CompanyFormData) error {
	required := []struct {
		field, value string
	}{
		{"name", data.Name},
		{"description", data.Description},
		{"country", data.Country},
		{"department", data.Department},
		{"city", data.City},
		{"address", data.Address},
		{"employeeCount", data.EmployeeCount},
		{"companyType", data.CompanyType},
		{"sector", data.Sector},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return apperrors.NewValidation(r.field, "este campo es obligatorio")
		}
	}
	return nil
}

// RegisterCompany creates a company for a project and wires the
// bidirectional references in one atomic commit. A company with no owner
// link or no project link must never be observable, so partial failures
// leave nothing behind; the caller re-prompts the user on error.
func (s *CompanyService) RegisterCompany(ctx context.Context, data *models.CompanyFormData, managerID, projectID string) (string, error) {
	if managerID == "" || projectID == "" {
		return "", apperrors.NewPrecondition("project manager ID and project ID are required")
	}
	if err := validateCompanyInput(data); err != nil {
		return "", err
	}

	company := &models.Company{
		Name:          data.Name,
		Description:   data.Description,
		Country:       data.Country,
		Department:    data.Department,
		City:          data.City,
		Address:       data.Address,
		Website:       data.Website,
		EmployeeCount: data.EmployeeCount,
		CompanyType:   data.CompanyType,
		Sector:        data.Sector,
	}
	return s.Repo.RegisterCompany(ctx, company, managerID, projectID)
}

// GetCompany fetches a company owned by the given manager. Companies
// belonging to another manager are indistinguishable from missing ones.
func (s *CompanyService) GetCompany(ctx context.Context, companyID, managerID string) (*models.Company, error) {
	company, err := s.Repo.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.OwnerID != managerID {
		return nil, apperrors.NewPrecondition("company does not belong to this manager")
	}
	return company, nil
}

// ListCompanies returns the companies owned by a manager.
func (s *CompanyService) ListCompanies(ctx context.Context, managerID string) ([]models.Company, error) {
	if _, err := s.Repo.GetManager(ctx, managerID); err != nil {
		return nil, err
	}
	return s.Repo.CompaniesByOwner(ctx, managerID)
}

// ListProjectsForCompany resolves the projects that point back at a
// company, the reachability half of the cross-entity invariant. Only the
// owning manager may list them.
func (s *CompanyService) ListProjectsForCompany(ctx context.Context, companyID, managerID string) ([]models.Project, error) {
	if _, err := s.GetCompany(ctx, companyID, managerID); err != nil {
		return nil, err
	}
	return s.Repo.ProjectsByCompany(ctx, companyID)
}
