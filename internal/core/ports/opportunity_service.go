package ports

import (
	"context"
	"time"

	"github.com/techbridge/events-api/internal/core/domain"
)

// OpportunityInput carries the writable fields of an opportunity listing.
type OpportunityInput struct {
	Title        string
	Organization string
	Description  string
	Type         string
	Location     string
	Deadline     time.Time
	Duration     string
	Compensation string
	Requirements []string
	Fields       []string
	ContactEmail string
	Virtual      bool
	Tags         []string
}

// OpportunityService implements the research opportunity operations.
type OpportunityService interface {
	List(ctx context.Context, opts ListOptions) ([]domain.ResearchOpportunity, error)
	Get(ctx context.Context, id int64) (*domain.ResearchOpportunity, error)
	Create(ctx context.Context, in OpportunityInput) (*domain.ResearchOpportunity, error)
	Update(ctx context.Context, id int64, in OpportunityInput) (*domain.ResearchOpportunity, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter OpportunityFilter) ([]domain.ResearchOpportunity, error)
	Stats(ctx context.Context) (*OpportunityStats, error)
	Like(ctx context.Context, id int64) (int64, error)
	Apply(ctx context.Context, id int64) (int64, error)
}
