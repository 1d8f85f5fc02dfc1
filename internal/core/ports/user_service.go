package ports

import (
	"context"

	"github.com/techbridge/events-api/internal/core/domain"
)

// RegisterUserInput carries the fields required to create a member account.
type RegisterUserInput struct {
	Email    string
	Username string
	Password string
	FullName string
}

// UpdateProfileInput carries a partial profile update. Nil pointers leave the
// corresponding field untouched.
type UpdateProfileInput struct {
	Email        *string
	FullName     *string
	Bio          *string
	ProfileImage *string
	Interests    []string
}

// UserService implements registration and profile operations for members.
type UserService interface {
	Register(ctx context.Context, in RegisterUserInput) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User, in UpdateProfileInput) (*domain.User, error)

	// ToggleSavedEvent adds the event to the user's saved list, or removes it
	// when already present. Returns the updated user.
	ToggleSavedEvent(ctx context.Context, user *domain.User, eventID int64) (*domain.User, error)
	ToggleSavedOpportunity(ctx context.Context, user *domain.User, opportunityID int64) (*domain.User, error)

	SavedEvents(ctx context.Context, user *domain.User) ([]domain.TechEvent, error)
	SavedOpportunities(ctx context.Context, user *domain.User) ([]domain.ResearchOpportunity, error)
}
