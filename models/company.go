package models

import "time"

// Company is the client organization a project is performed for. Company
// ids are opaque strings generated by the repository, never by callers.
type Company struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	Country       string    `bson:"country" json:"country"`
	Department    string    `bson:"department" json:"department"`
	City          string    `bson:"city" json:"city"`
	Address       string    `bson:"address" json:"address"`
	Website       string    `bson:"website,omitempty" json:"website,omitempty"`
	EmployeeCount string    `bson:"employeeCount" json:"employeeCount"`
	CompanyType   string    `bson:"companyType" json:"companyType"`
	Sector        string    `bson:"sector" json:"sector"`
	ProjectIDs    []string  `bson:"projectIds" json:"projectIds"`
	OwnerID       string    `bson:"ownerId" json:"ownerId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CompanyFormData carries the user-supplied attributes of a new company;
// id, project references and ownership are assigned by the writer.
type CompanyFormData struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Country       string `json:"country"`
	Department    string `json:"department"`
	City          string `json:"city"`
	Address       string `json:"address"`
	Website       string `json:"website,omitempty"`
	EmployeeCount string `json:"employeeCount"`
	CompanyType   string `json:"companyType"`
	Sector        string `json:"sector"`
}
