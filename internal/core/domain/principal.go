package domain

import "time"

// PrincipalKind discriminates the two account stores.
type PrincipalKind string

const (
	KindAdmin PrincipalKind = "admin"
	KindUser  PrincipalKind = "user"
)

// Admin is an operator account. It carries credentials only, no profile.
type Admin struct {
	ID           int64     `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// User is a registered member with a profile and saved-content lists.
type User struct {
	ID                 int64     `json:"id" bson:"_id"`
	Email              string    `json:"email" bson:"email"`
	Username           string    `json:"username" bson:"username"`
	PasswordHash       string    `json:"-" bson:"password_hash"`
	FullName           string    `json:"full_name" bson:"full_name"`
	Bio                string    `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfileImage       string    `json:"profile_image,omitempty" bson:"profile_image,omitempty"`
	IsActive           bool      `json:"is_active" bson:"is_active"`
	Interests          []string  `json:"interests" bson:"interests"`
	SavedEvents        []int64   `json:"saved_events" bson:"saved_events"`
	SavedOpportunities []int64   `json:"saved_opportunities" bson:"saved_opportunities"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}

// Principal is the authenticated identity resolved from a bearer token.
// It is a tagged variant: exactly one of Admin/User is set, matching Kind.
type Principal struct {
	Kind  PrincipalKind
	Admin *Admin
	User  *User
}

// Username returns the identity's login name regardless of kind.
func (p *Principal) Username() string {
	switch p.Kind {
	case KindAdmin:
		return p.Admin.Username
	case KindUser:
		return p.User.Username
	}
	return ""
}
