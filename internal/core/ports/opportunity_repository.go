package ports

import (
	"context"
	"time"

	"github.com/techbridge/events-api/internal/core/domain"
)

// OpportunityFilter is the search criteria for research opportunities.
type OpportunityFilter struct {
	Query         string
	Location      string
	Type          domain.OpportunityType
	Virtual       *bool
	DeadlineAfter *time.Time
	Fields        []string
	Tags          []string
}

// OpportunityStats aggregates the opportunities collection.
type OpportunityStats struct {
	TotalOpportunities    int64            `json:"total_opportunities"`
	TotalApplications     int64            `json:"total_applications"`
	TotalLikes            int64            `json:"total_likes"`
	Types                 map[string]int64 `json:"types"`
	VirtualVsPhysical     map[string]int64 `json:"virtual_vs_physical"`
	UpcomingOpportunities int64            `json:"upcoming_opportunities"`
}

// OpportunityRepository persists research opportunity listings.
type OpportunityRepository interface {
	Insert(ctx context.Context, opp *domain.ResearchOpportunity) (*domain.ResearchOpportunity, error)
	// FindByID returns domain.ErrOpportunityNotFound when nothing matches.
	FindByID(ctx context.Context, id int64) (*domain.ResearchOpportunity, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.ResearchOpportunity, error)
	List(ctx context.Context, opts ListOptions) ([]domain.ResearchOpportunity, error)
	Search(ctx context.Context, filter OpportunityFilter) ([]domain.ResearchOpportunity, error)
	Update(ctx context.Context, opp *domain.ResearchOpportunity) (*domain.ResearchOpportunity, error)
	Delete(ctx context.Context, id int64) error
	IncrementLikes(ctx context.Context, id int64) (int64, error)
	IncrementApplications(ctx context.Context, id int64) (int64, error)
	Stats(ctx context.Context, now time.Time) (*OpportunityStats, error)
}
