package ports

import (
	"context"

	"github.com/techbridge/events-api/internal/core/domain"
)

// AdminRepository persists operator accounts.
type AdminRepository interface {
	// FindByUsername returns domain.ErrPrincipalNotFound when no admin matches.
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Insert(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	// Any reports whether at least one admin record exists.
	Any(ctx context.Context) (bool, error)
}

// UserRepository persists member accounts.
type UserRepository interface {
	// FindByID returns domain.ErrPrincipalNotFound when no user matches.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByUsernameOrEmail matches the identifier against either field.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// EmailTaken reports whether email belongs to a user other than excludeID.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}
