package domain

import "time"

// OpportunityType categorizes a research opportunity.
type OpportunityType string

const (
	OpportunityResearch   OpportunityType = "Research"
	OpportunityInternship OpportunityType = "Internship"
	OpportunityFellowship OpportunityType = "Fellowship"
	OpportunityGrant      OpportunityType = "Grant"
	OpportunityProject    OpportunityType = "Project"
)

// Valid reports whether t is one of the known opportunity types.
func (t OpportunityType) Valid() bool {
	switch t {
	case OpportunityResearch, OpportunityInternship, OpportunityFellowship, OpportunityGrant, OpportunityProject:
		return true
	}
	return false
}

// ResearchOpportunity is a published research/internship listing.
type ResearchOpportunity struct {
	ID           int64           `json:"id" bson:"_id"`
	Title        string          `json:"title" bson:"title"`
	Organization string          `json:"organization" bson:"organization"`
	Description  string          `json:"description" bson:"description"`
	Type         OpportunityType `json:"type" bson:"type"`
	Location     string          `json:"location" bson:"location"`
	Deadline     time.Time       `json:"deadline" bson:"deadline"`
	Duration     string          `json:"duration,omitempty" bson:"duration,omitempty"`
	Compensation string          `json:"compensation,omitempty" bson:"compensation,omitempty"`
	Requirements []string        `json:"requirements" bson:"requirements"`
	Fields       []string        `json:"fields" bson:"fields"`
	ContactEmail string          `json:"contact_email" bson:"contact_email"`
	Virtual      bool            `json:"virtual" bson:"virtual"`
	Tags         []string        `json:"tags" bson:"tags"`
	Applications int64           `json:"applications" bson:"applications"`
	Likes        int64           `json:"likes" bson:"likes"`
	CreatedAt    time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" bson:"updated_at"`
}
