package models

// ProjectManager mirrors an authenticated user into the record store. The
// document id equals the identity provider's user id.
type ProjectManager struct {
	ID         string   `bson:"_id,omitempty" json:"id"`
	FirstName  string   `bson:"firstName" json:"firstName"`
	LastName   string   `bson:"lastName" json:"lastName"`
	Email      string   `bson:"email" json:"email"`
	Password   string   `bson:"password" json:"-"`
	Phone      string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Country    string   `bson:"country,omitempty" json:"country,omitempty"`
	Department string   `bson:"department,omitempty" json:"department,omitempty"`
	City       string   `bson:"city,omitempty" json:"city,omitempty"`
	CompanyIDs []string `bson:"companyIds" json:"companyIds"`
}
