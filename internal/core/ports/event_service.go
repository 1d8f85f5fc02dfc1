package ports

import (
	"context"
	"time"

	"github.com/techbridge/events-api/internal/core/domain"
)

// EventInput carries the writable fields of an event listing.
type EventInput struct {
	Title            string
	Organization     string
	Description      string
	Venue            string
	RegistrationLink string
	StartDate        time.Time
	EndDate          time.Time
	Location         string
	Type             string
	Price            string
	TechStack        []string
	Speakers         []string
	Virtual          bool
	Tags             []string
}

// EventService implements the event listing operations.
type EventService interface {
	List(ctx context.Context, opts ListOptions) ([]domain.TechEvent, error)
	Get(ctx context.Context, id int64) (*domain.TechEvent, error)
	Create(ctx context.Context, in EventInput) (*domain.TechEvent, error)
	Update(ctx context.Context, id int64, in EventInput) (*domain.TechEvent, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter EventFilter) ([]domain.TechEvent, error)
	Stats(ctx context.Context) (*EventStats, error)
	// Like and Register return the new counter value.
	Like(ctx context.Context, id int64) (int64, error)
	Register(ctx context.Context, id int64) (int64, error)
}
