package repositories

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carlosjramirezg1979/InProject/apperrors"
	"github.com/carlosjramirezg1979/InProject/models"
)

// MemoryRepository keeps the three collections in process. It exists for
// tests and local development; the mutations in RegisterCompany are
// applied under one lock after all preconditions pass, so a caller never
// observes a half-applied commit.
type MemoryRepository struct {
	mu           sync.RWMutex
	projects     map[string]models.Project
	companies    map[string]models.Company
	managers     map[string]models.ProjectManager
	stakeholders map[string]models.Stakeholder
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		projects:     make(map[string]models.Project),
		companies:    make(map[string]models.Company),
		managers:     make(map[string]models.ProjectManager),
		stakeholders: make(map[string]models.Stakeholder),
	}
}

func (r *MemoryRepository) CreateProject(ctx context.Context, project *models.Project) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	r.projects[project.ID.Hex()] = *project
	return project.ID.Hex(), nil
}

func (r *MemoryRepository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, apperrors.NewPrecondition("project not found")
	}
	return &project, nil
}

func (r *MemoryRepository) UpdateProjectCharter(ctx context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.projects[project.ID.Hex()]
	if !ok {
		return apperrors.NewPrecondition("project not found")
	}
	// Status and associations are not charter fields; keep the stored
	// values.
	updated := *project
	updated.Status = stored.Status
	updated.CompanyID = stored.CompanyID
	updated.ProjectManagerID = stored.ProjectManagerID
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	r.projects[project.ID.Hex()] = updated
	return nil
}

func (r *MemoryRepository) UpdateProjectStatus(ctx context.Context, id string, status models.ProjectStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return apperrors.NewPrecondition("project not found")
	}
	project.Status = status
	project.UpdatedAt = time.Now()
	r.projects[id] = project
	return nil
}

func (r *MemoryRepository) ProjectsByManager(ctx context.Context, managerID string) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var projects []models.Project
	for _, p := range r.projects {
		if p.ProjectManagerID == managerID {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *MemoryRepository) ProjectsByCompany(ctx context.Context, companyID string) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var projects []models.Project
	for _, p := range r.projects {
		if p.CompanyID == companyID {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *MemoryRepository) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	company, ok := r.companies[id]
	if !ok {
		return nil, apperrors.NewPrecondition("company not found")
	}
	return &company, nil
}

func (r *MemoryRepository) CompaniesByOwner(ctx context.Context, ownerID string) ([]models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var companies []models.Company
	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			companies = append(companies, c)
		}
	}
	return companies, nil
}

func (r *MemoryRepository) RegisterCompany(ctx context.Context, company *models.Company, managerID, projectID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	manager, ok := r.managers[managerID]
	if !ok {
		return "", apperrors.NewPrecondition("project manager not found")
	}
	project, ok := r.projects[projectID]
	if !ok {
		return "", apperrors.NewPrecondition("project not found")
	}
	if project.CompanyID != "" {
		return "", apperrors.NewPrecondition("project is already bound to a company")
	}

	now := time.Now()
	company.ID = primitive.NewObjectID().Hex()
	company.OwnerID = managerID
	company.ProjectIDs = []string{projectID}
	company.CreatedAt = now
	company.UpdatedAt = now

	r.companies[company.ID] = *company

	project.CompanyID = company.ID
	project.UpdatedAt = now
	r.projects[projectID] = project

	if !contains(manager.CompanyIDs, company.ID) {
		manager.CompanyIDs = append(manager.CompanyIDs, company.ID)
	}
	r.managers[managerID] = manager

	return company.ID, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) CreateManager(ctx context.Context, manager *models.ProjectManager) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.managers {
		if m.Email == manager.Email {
			return apperrors.NewAuth("Este correo electrónico ya está registrado. Por favor, inicia sesión.")
		}
	}
	if manager.CompanyIDs == nil {
		manager.CompanyIDs = []string{}
	}
	r.managers[manager.ID] = *manager
	return nil
}

func (r *MemoryRepository) GetManager(ctx context.Context, id string) (*models.ProjectManager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	manager, ok := r.managers[id]
	if !ok {
		return nil, apperrors.NewPrecondition("project manager not found")
	}
	return &manager, nil
}

func (r *MemoryRepository) GetManagerByEmail(ctx context.Context, email string) (*models.ProjectManager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.managers {
		if m.Email == email {
			manager := m
			return &manager, nil
		}
	}
	return nil, apperrors.NewPrecondition("project manager not found")
}

func (r *MemoryRepository) UpdateManagerProfile(ctx context.Context, manager *models.ProjectManager) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.managers[manager.ID]
	if !ok {
		return apperrors.NewPrecondition("project manager not found")
	}
	stored.FirstName = manager.FirstName
	stored.LastName = manager.LastName
	stored.Phone = manager.Phone
	stored.Country = manager.Country
	stored.Department = manager.Department
	stored.City = manager.City
	r.managers[manager.ID] = stored
	return nil
}

func (r *MemoryRepository) UpdateManagerPassword(ctx context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	manager, ok := r.managers[id]
	if !ok {
		return apperrors.NewPrecondition("project manager not found")
	}
	manager.Password = passwordHash
	r.managers[id] = manager
	return nil
}

func (r *MemoryRepository) AddStakeholder(ctx context.Context, stakeholder *models.Stakeholder) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stakeholder.ID == "" {
		stakeholder.ID = primitive.NewObjectID().Hex()
	}
	r.stakeholders[stakeholder.ID] = *stakeholder
	return stakeholder.ID, nil
}

func (r *MemoryRepository) StakeholdersByProject(ctx context.Context, projectID string) ([]models.Stakeholder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stakeholders []models.Stakeholder
	for _, s := range r.stakeholders {
		if s.ProjectID == projectID {
			stakeholders = append(stakeholders, s)
		}
	}
	return stakeholders, nil
}

func (r *MemoryRepository) DeleteStakeholder(ctx context.Context, projectID, stakeholderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stakeholders[stakeholderID]
	if !ok || s.ProjectID != projectID {
		return apperrors.NewPrecondition("stakeholder not found")
	}
	delete(r.stakeholders, stakeholderID)
	return nil
}
