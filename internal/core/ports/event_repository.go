package ports

import (
	"context"
	"time"

	"github.com/techbridge/events-api/internal/core/domain"
)

// ListOptions controls offset pagination and sorting for list endpoints.
type ListOptions struct {
	Skip      int64
	Limit     int64
	SortBy    string
	SortOrder string
}

// EventFilter is the search criteria for events. Nil/zero fields are ignored.
type EventFilter struct {
	Query          string
	Location       string
	Type           domain.EventType
	Virtual        *bool
	StartDateAfter *time.Time
	EndDateBefore  *time.Time
	TechStack      []string
	Tags           []string
}

// EventStats aggregates the events collection for the stats endpoint.
type EventStats struct {
	TotalEvents       int64            `json:"total_events"`
	TotalAttendees    int64            `json:"total_attendees"`
	TotalLikes        int64            `json:"total_likes"`
	Types             map[string]int64 `json:"types"`
	VirtualVsPhysical map[string]int64 `json:"virtual_vs_physical"`
	UpcomingEvents    int64            `json:"upcoming_events"`
}

// EventRepository persists event listings.
type EventRepository interface {
	Insert(ctx context.Context, event *domain.TechEvent) (*domain.TechEvent, error)
	// FindByID returns domain.ErrEventNotFound when no event matches.
	FindByID(ctx context.Context, id int64) (*domain.TechEvent, error)
	// FindByIDs returns the events whose IDs are in ids, unordered.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.TechEvent, error)
	List(ctx context.Context, opts ListOptions) ([]domain.TechEvent, error)
	Search(ctx context.Context, filter EventFilter) ([]domain.TechEvent, error)
	// Update rewrites the mutable fields of the event, preserving counters.
	Update(ctx context.Context, event *domain.TechEvent) (*domain.TechEvent, error)
	Delete(ctx context.Context, id int64) error
	// IncrementLikes / IncrementAttendees return the post-increment value.
	IncrementLikes(ctx context.Context, id int64) (int64, error)
	IncrementAttendees(ctx context.Context, id int64) (int64, error)
	Stats(ctx context.Context, now time.Time) (*EventStats, error)
}
