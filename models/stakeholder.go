package models

// Stakeholder is one row of a project's stakeholder register, filled in
// during the initiation phase.
type Stakeholder struct {
	ID                       string   `bson:"_id,omitempty" json:"id"`
	ProjectID                string   `bson:"projectId" json:"projectId"`
	Name                     string   `bson:"name" json:"name"`
	Phone                    string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Email                    string   `bson:"email" json:"email"`
	Role                     string   `bson:"role" json:"role"`
	Dependency               string   `bson:"dependency" json:"dependency"`
	Country                  string   `bson:"country" json:"country"`
	Department               string   `bson:"department" json:"department"`
	City                     string   `bson:"city" json:"city"`
	ProjectRole              string   `bson:"projectRole" json:"projectRole"`
	Expectations             string   `bson:"expectations" json:"expectations"`
	Influence                string   `bson:"influence" json:"influence"`
	Power                    string   `bson:"power" json:"power"`
	Impact                   string   `bson:"impact" json:"impact"`
	InterestPhase            string   `bson:"interestPhase" json:"interestPhase"`
	InterestType             string   `bson:"interestType" json:"interestType"`
	InfoToCommunicate        []string `bson:"infoToCommunicate" json:"infoToCommunicate"`
	CommunicationFrequency   string   `bson:"communicationFrequency" json:"communicationFrequency"`
	CommunicationResponsible string   `bson:"communicationResponsible" json:"communicationResponsible"`
	ApprovalResponsible      string   `bson:"approvalResponsible" json:"approvalResponsible"`
	CommunicationMethod      string   `bson:"communicationMethod" json:"communicationMethod"`
}
