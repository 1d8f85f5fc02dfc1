package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

// UserService implements member registration and profile operations.
type UserService struct {
	users         ports.UserRepository
	events        ports.EventRepository
	opportunities ports.OpportunityRepository
	log           zerolog.Logger
}

func NewUserService(users ports.UserRepository, events ports.EventRepository, opportunities ports.OpportunityRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, events: events, opportunities: opportunities, log: log}
}

// Register creates a member account. Email and username must both be unused.
func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrPrincipalNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrPrincipalNotFound) {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Insert(ctx, &domain.User{
		Email:              in.Email,
		Username:           in.Username,
		PasswordHash:       hash,
		FullName:           in.FullName,
		IsActive:           true,
		Interests:          []string{},
		SavedEvents:        []int64{},
		SavedOpportunities: []int64{},
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// UpdateProfile applies a partial update to the user's profile. An email
// change is rejected when the address already belongs to another user.
func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User, in ports.UpdateProfileInput) (*domain.User, error) {
	if in.Email != nil {
		taken, err := s.users.EmailTaken(ctx, *in.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailExists
		}
		user.Email = *in.Email
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.ProfileImage != nil {
		user.ProfileImage = *in.ProfileImage
	}
	if in.Interests != nil {
		user.Interests = in.Interests
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleSavedEvent flips the event's membership in the user's saved list.
func (s *UserService) ToggleSavedEvent(ctx context.Context, user *domain.User, eventID int64) (*domain.User, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	user.SavedEvents = toggleID(user.SavedEvents, eventID)
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleSavedOpportunity flips the opportunity's membership in the saved list.
func (s *UserService) ToggleSavedOpportunity(ctx context.Context, user *domain.User, opportunityID int64) (*domain.User, error) {
	if _, err := s.opportunities.FindByID(ctx, opportunityID); err != nil {
		return nil, err
	}
	user.SavedOpportunities = toggleID(user.SavedOpportunities, opportunityID)
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SavedEvents returns the events the user has saved. IDs pointing at deleted
// events are silently skipped.
func (s *UserService) SavedEvents(ctx context.Context, user *domain.User) ([]domain.TechEvent, error) {
	if len(user.SavedEvents) == 0 {
		return []domain.TechEvent{}, nil
	}
	return s.events.FindByIDs(ctx, user.SavedEvents)
}

// SavedOpportunities returns the opportunities the user has saved.
func (s *UserService) SavedOpportunities(ctx context.Context, user *domain.User) ([]domain.ResearchOpportunity, error) {
	if len(user.SavedOpportunities) == 0 {
		return []domain.ResearchOpportunity{}, nil
	}
	return s.opportunities.FindByIDs(ctx, user.SavedOpportunities)
}

func toggleID(ids []int64, id int64) []int64 {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
