package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carlosjramirezg1979/InProject/apperrors"
	"github.com/carlosjramirezg1979/InProject/models"
)

// MongoRepository backs the Repository interface with MongoDB. The
// RegisterCompany commit needs a replica-set deployment because it runs
// inside a multi-document transaction.
type MongoRepository struct {
	client       *mongo.Client
	Projects     *mongo.Collection
	Companies    *mongo.Collection
	Managers     *mongo.Collection
	Stakeholders *mongo.Collection
}

func NewMongoRepository(client *mongo.Client, dbName string) *MongoRepository {
	db := client.Database(dbName)
	return &MongoRepository{
		client:       client,
		Projects:     db.Collection("projects"),
		Companies:    db.Collection("companies"),
		Managers:     db.Collection("projectManagers"),
		Stakeholders: db.Collection("stakeholders"),
	}
}

// EnsureIndexes creates the unique index on manager email. Called once at
// startup.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}
	_, err := r.Managers.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create unique index on manager email: %v", err)
	}
	return nil
}

func (r *MongoRepository) CreateProject(ctx context.Context, project *models.Project) (string, error) {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	result, err := r.Projects.InsertOne(ctx, project)
	if err != nil {
		return "", fmt.Errorf("failed to create project: %v", err)
	}
	project.ID = result.InsertedID.(primitive.ObjectID)
	return project.ID.Hex(), nil
}

func (r *MongoRepository) GetProject(ctx context.Context, id string) (*models.Project, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.NewPrecondition("invalid project ID format")
	}

	var project models.Project
	err = r.Projects.FindOne(ctx, bson.M{"_id": objectID}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewPrecondition("project not found")
		}
		return nil, fmt.Errorf("error fetching project: %v", err)
	}
	return &project, nil
}

func (r *MongoRepository) UpdateProjectCharter(ctx context.Context, project *models.Project) error {
	update := bson.M{"$set": bson.M{
		"name":                 project.Name,
		"description":          project.Description,
		"justification":        project.Justification,
		"generalObjective":     project.GeneralObjective,
		"scope":                project.Scope,
		"startDate":            project.StartDate,
		"endDate":              project.EndDate,
		"budget":               project.Budget,
		"currency":             project.Currency,
		"sector":               project.Sector,
		"sponsorName":          project.SponsorName,
		"sponsorPhone":         project.SponsorPhone,
		"sponsorEmail":         project.SponsorEmail,
		"assumptions":          project.Assumptions,
		"constraints":          project.Constraints,
		"highLevelRisks":       project.HighLevelRisks,
		"mainDeliverables":     project.MainDeliverables,
		"approvalRequirements": project.ApprovalRequirements,
		"acceptanceCriteria":   project.AcceptanceCriteria,
		"country":              project.Country,
		"department":           project.Department,
		"city":                 project.City,
		"updatedAt":            time.Now(),
	}}

	result, err := r.Projects.UpdateOne(ctx, bson.M{"_id": project.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update project: %v", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewPrecondition("project not found")
	}
	return nil
}

func (r *MongoRepository) UpdateProjectStatus(ctx context.Context, id string, status models.ProjectStatus) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.NewPrecondition("invalid project ID format")
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.Projects.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update project status: %v", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewPrecondition("project not found")
	}
	return nil
}

func (r *MongoRepository) ProjectsByManager(ctx context.Context, managerID string) ([]models.Project, error) {
	return r.findProjects(ctx, bson.M{"projectManagerId": managerID})
}

func (r *MongoRepository) ProjectsByCompany(ctx context.Context, companyID string) ([]models.Project, error) {
	return r.findProjects(ctx, bson.M{"companyId": companyID})
}

func (r *MongoRepository) findProjects(ctx context.Context, filter bson.M) ([]models.Project, error) {
	cursor, err := r.Projects.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %v", err)
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %v", err)
	}
	return projects, nil
}

func (r *MongoRepository) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	err := r.Companies.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewPrecondition("company not found")
		}
		return nil, fmt.Errorf("error fetching company: %v", err)
	}
	return &company, nil
}

func (r *MongoRepository) CompaniesByOwner(ctx context.Context, ownerID string) ([]models.Company, error) {
	cursor, err := r.Companies.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %v", err)
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, fmt.Errorf("failed to decode companies: %v", err)
	}
	return companies, nil
}

// RegisterCompany runs the three-document commit inside one transaction:
// insert the company, point the project at it, add it to the manager's
// company set. Either all three land or none do.
func (r *MongoRepository) RegisterCompany(ctx context.Context, company *models.Company, managerID, projectID string) (string, error) {
	projectObjectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return "", apperrors.NewPrecondition("invalid project ID format")
	}

	session, err := r.client.StartSession()
	if err != nil {
		return "", fmt.Errorf("failed to start session: %v", err)
	}
	defer session.EndSession(ctx)

	company.ID = primitive.NewObjectID().Hex()
	company.OwnerID = managerID
	company.ProjectIDs = []string{projectID}
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	callback := func(sc mongo.SessionContext) (interface{}, error) {
		var manager models.ProjectManager
		if err := r.Managers.FindOne(sc, bson.M{"_id": managerID}).Decode(&manager); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, apperrors.NewPrecondition("project manager not found")
			}
			return nil, err
		}

		var project models.Project
		if err := r.Projects.FindOne(sc, bson.M{"_id": projectObjectID}).Decode(&project); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, apperrors.NewPrecondition("project not found")
			}
			return nil, err
		}
		if project.CompanyID != "" {
			return nil, apperrors.NewPrecondition("project is already bound to a company")
		}

		if _, err := r.Companies.InsertOne(sc, company); err != nil {
			return nil, err
		}

		projectUpdate := bson.M{"$set": bson.M{"companyId": company.ID, "updatedAt": now}}
		if _, err := r.Projects.UpdateOne(sc, bson.M{"_id": projectObjectID}, projectUpdate); err != nil {
			return nil, err
		}

		// $addToSet keeps the manager's company list a set even if the
		// commit is retried by the driver.
		managerUpdate := bson.M{"$addToSet": bson.M{"companyIds": company.ID}}
		if _, err := r.Managers.UpdateOne(sc, bson.M{"_id": managerID}, managerUpdate); err != nil {
			return nil, err
		}

		return company.ID, nil
	}

	result, err := session.WithTransaction(ctx, callback)
	if err != nil {
		var precondition *apperrors.PreconditionError
		if errors.As(err, &precondition) {
			return "", err
		}
		return "", &apperrors.WriteConflictError{Err: err}
	}
	return result.(string), nil
}

func (r *MongoRepository) CreateManager(ctx context.Context, manager *models.ProjectManager) error {
	if manager.CompanyIDs == nil {
		manager.CompanyIDs = []string{}
	}
	_, err := r.Managers.InsertOne(ctx, manager)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewAuth("Este correo electrónico ya está registrado. Por favor, inicia sesión.")
		}
		return fmt.Errorf("failed to create project manager: %v", err)
	}
	return nil
}

func (r *MongoRepository) GetManager(ctx context.Context, id string) (*models.ProjectManager, error) {
	var manager models.ProjectManager
	err := r.Managers.FindOne(ctx, bson.M{"_id": id}).Decode(&manager)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewPrecondition("project manager not found")
		}
		return nil, fmt.Errorf("error fetching project manager: %v", err)
	}
	return &manager, nil
}

func (r *MongoRepository) GetManagerByEmail(ctx context.Context, email string) (*models.ProjectManager, error) {
	var manager models.ProjectManager
	err := r.Managers.FindOne(ctx, bson.M{"email": email}).Decode(&manager)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewPrecondition("project manager not found")
		}
		return nil, fmt.Errorf("error fetching project manager: %v", err)
	}
	return &manager, nil
}

func (r *MongoRepository) UpdateManagerProfile(ctx context.Context, manager *models.ProjectManager) error {
	update := bson.M{"$set": bson.M{
		"firstName":  manager.FirstName,
		"lastName":   manager.LastName,
		"phone":      manager.Phone,
		"country":    manager.Country,
		"department": manager.Department,
		"city":       manager.City,
	}}

	result, err := r.Managers.UpdateOne(ctx, bson.M{"_id": manager.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update profile: %v", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewPrecondition("project manager not found")
	}
	return nil
}

func (r *MongoRepository) UpdateManagerPassword(ctx context.Context, id, passwordHash string) error {
	update := bson.M{"$set": bson.M{"password": passwordHash}}
	result, err := r.Managers.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update password: %v", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.NewPrecondition("project manager not found")
	}
	return nil
}

func (r *MongoRepository) AddStakeholder(ctx context.Context, stakeholder *models.Stakeholder) (string, error) {
	if stakeholder.ID == "" {
		stakeholder.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Stakeholders.InsertOne(ctx, stakeholder)
	if err != nil {
		return "", fmt.Errorf("failed to add stakeholder: %v", err)
	}
	return stakeholder.ID, nil
}

func (r *MongoRepository) StakeholdersByProject(ctx context.Context, projectID string) ([]models.Stakeholder, error) {
	cursor, err := r.Stakeholders.Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stakeholders: %v", err)
	}
	defer cursor.Close(ctx)

	var stakeholders []models.Stakeholder
	if err := cursor.All(ctx, &stakeholders); err != nil {
		return nil, fmt.Errorf("failed to decode stakeholders: %v", err)
	}
	return stakeholders, nil
}

func (r *MongoRepository) DeleteStakeholder(ctx context.Context, projectID, stakeholderID string) error {
	result, err := r.Stakeholders.DeleteOne(ctx, bson.M{"_id": stakeholderID, "projectId": projectID})
	if err != nil {
		return fmt.Errorf("failed to delete stakeholder: %v", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NewPrecondition("stakeholder not found")
	}
	return nil
}
