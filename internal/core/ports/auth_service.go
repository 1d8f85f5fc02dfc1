package ports

import (
	"context"

	"github.com/techbridge/events-api/internal/core/domain"
)

// LoginResult is returned on successful authentication. UserID is nil for
// admin logins; clients disambiguate through UserType.
type LoginResult struct {
	AccessToken string
	TokenType   string
	UserType    domain.PrincipalKind
	UserID      *int64
	Username    string
}

// AuthService owns credential verification, token issuance and validation.
type AuthService interface {
	// Login checks the identifier against the admin store first, then against
	// users by username or email. Unknown identifier and wrong password both
	// yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)

	// Authenticate verifies a bearer token and resolves it to a live
	// principal record. Failures: domain.ErrInvalidToken,
	// domain.ErrExpiredToken, domain.ErrPrincipalNotFound.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)

	// CreateAdmin registers a new operator account.
	CreateAdmin(ctx context.Context, username, password string) (*domain.Admin, error)

	// EnsureDefaultAdmin inserts the built-in admin when the store is empty.
	EnsureDefaultAdmin(ctx context.Context) error
}
