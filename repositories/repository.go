// Package repositories is the record-store boundary. Services receive a
// Repository instead of reaching for collections themselves, so the same
// flows run against MongoDB in production and against the in-memory store
// in tests.
package repositories

import (
	"context"

	"github.com/carlosjramirezg1979/InProject/models"
)

// Repository covers the three collections (projects, companies,
// projectManagers) plus the stakeholder register. All ids are opaque
// strings.
type Repository interface {
	CreateProject(ctx context.Context, project *models.Project) (string, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	UpdateProjectCharter(ctx context.Context, project *models.Project) error
	UpdateProjectStatus(ctx context.Context, id string, status models.ProjectStatus) error
	ProjectsByManager(ctx context.Context, managerID string) ([]models.Project, error)
	ProjectsByCompany(ctx context.Context, companyID string) ([]models.Project, error)

	GetCompany(ctx context.Context, id string) (*models.Company, error)
	CompaniesByOwner(ctx context.Context, ownerID string) ([]models.Company, error)

	// RegisterCompany performs the one multi-document transition in the
	// system: it inserts the company, sets the project's companyId and
	// adds the company to the manager's companyIds, all in a single
	// atomic commit. Preconditions (manager and project resolve, project
	// not already bound to a different company) are checked inside the
	// commit and surface as *apperrors.PreconditionError; a rejected
	// commit surfaces as *apperrors.WriteConflictError with no partial
	// state retained.
	RegisterCompany(ctx context.Context, company *models.Company, managerID, projectID string) (string, error)

	CreateManager(ctx context.Context, manager *models.ProjectManager) error
	GetManager(ctx context.Context, id string) (*models.ProjectManager, error)
	GetManagerByEmail(ctx context.Context, email string) (*models.ProjectManager, error)
	UpdateManagerProfile(ctx context.Context, manager *models.ProjectManager) error
	UpdateManagerPassword(ctx context.Context, id, passwordHash string) error

	AddStakeholder(ctx context.Context, stakeholder *models.Stakeholder) (string, error)
	StakeholdersByProject(ctx context.Context, projectID string) ([]models.Stakeholder, error)
	DeleteStakeholder(ctx context.Context, projectID, stakeholderID string) error
}
