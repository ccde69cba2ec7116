package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhaseStatus is the lifecycle state of a single project phase.
type PhaseStatus string

const (
	PhaseLocked     PhaseStatus = "locked"
	PhaseNotStarted PhaseStatus = "not-started"
	PhaseInProgress PhaseStatus = "in-progress"
	PhaseCompleted  PhaseStatus = "completed"
)

// ProjectPhase names one of the four ordered phases of a project.
type ProjectPhase string

const (
	PhaseInitiation ProjectPhase = "initiation"
	PhasePlanning   ProjectPhase = "planning"
	PhaseExecution  ProjectPhase = "execution"
	PhaseClosing    ProjectPhase = "closing"
)

// ProjectStatus holds the persisted state of the phase machine. A project
// is never written without all four fields populated.
type ProjectStatus struct {
	Initiation PhaseStatus `bson:"initiation" json:"initiation"`
	Planning   PhaseStatus `bson:"planning" json:"planning"`
	Execution  PhaseStatus `bson:"execution" json:"execution"`
	Closing    PhaseStatus `bson:"closing" json:"closing"`
}

type Project struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                 string             `bson:"name" json:"name"`
	Description          string             `bson:"description" json:"description"`
	ImageURL             string             `bson:"imageUrl" json:"imageUrl"`
	CompanyID            string             `bson:"companyId,omitempty" json:"companyId,omitempty"`
	Status               ProjectStatus      `bson:"status" json:"status"`
	Justification        string             `bson:"justification" json:"justification"`
	GeneralObjective     string             `bson:"generalObjective" json:"generalObjective"`
	Scope                string             `bson:"scope" json:"scope"`
	StartDate            time.Time          `bson:"startDate" json:"startDate"`
	EndDate              time.Time          `bson:"endDate" json:"endDate"`
	Budget               float64            `bson:"budget" json:"budget"`
	Currency             string             `bson:"currency" json:"currency"`
	Sector               string             `bson:"sector" json:"sector"`
	SponsorName          string             `bson:"sponsorName" json:"sponsorName"`
	SponsorPhone         string             `bson:"sponsorPhone,omitempty" json:"sponsorPhone,omitempty"`
	SponsorEmail         string             `bson:"sponsorEmail" json:"sponsorEmail"`
	Assumptions          string             `bson:"assumptions" json:"assumptions"`
	Constraints          string             `bson:"constraints" json:"constraints"`
	HighLevelRisks       string             `bson:"highLevelRisks" json:"highLevelRisks"`
	MainDeliverables     string             `bson:"mainDeliverables" json:"mainDeliverables"`
	ApprovalRequirements string             `bson:"approvalRequirements" json:"approvalRequirements"`
	AcceptanceCriteria   string             `bson:"acceptanceCriteria" json:"acceptanceCriteria"`
	Country              string             `bson:"country" json:"country"`
	Department           string             `bson:"department" json:"department"`
	City                 string             `bson:"city" json:"city"`
	ProjectManagerID     string             `bson:"projectManagerId" json:"projectManagerId"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}
