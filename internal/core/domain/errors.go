package domain

import "errors"

// Authentication failures. All of these map to 401 at the HTTP boundary; the
// login path deliberately reports the same error for an unknown identifier and
// a wrong password so responses cannot be used for account enumeration.
var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrPrincipalNotFound  = errors.New("account not found")
)

// Authorization failures.
var (
	ErrForbidden      = errors.New("admin privileges required")
	ErrNotUserAccount = errors.New("admin accounts don't have user profiles")
)

// Registration conflicts.
var (
	ErrAdminExists = errors.New("username already registered")
	ErrUserExists  = errors.New("username already taken")
	ErrEmailExists = errors.New("email already registered")
)

// Content errors.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrInvalidEventType    = errors.New("invalid event type")
	ErrInvalidOppType      = errors.New("invalid opportunity type")
	ErrEndBeforeStart      = errors.New("end date must be after start date")
	ErrDeadlinePast        = errors.New("deadline must be in the future")
)
