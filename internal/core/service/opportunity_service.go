package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

// OpportunityService implements CRUD, search and stats over research
// opportunity listings.
type OpportunityService struct {
	repo ports.OpportunityRepository
	log  zerolog.Logger
}

func NewOpportunityService(repo ports.OpportunityRepository, log zerolog.Logger) *OpportunityService {
	return &OpportunityService{repo: repo, log: log}
}

func (s *OpportunityService) List(ctx context.Context, opts ports.ListOptions) ([]domain.ResearchOpportunity, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultPageSize
	}
	if opts.SortBy == "" {
		opts.SortBy = "deadline"
	}
	return s.repo.List(ctx, opts)
}

func (s *OpportunityService) Get(ctx context.Context, id int64) (*domain.ResearchOpportunity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OpportunityService) Create(ctx context.Context, in ports.OpportunityInput) (*domain.ResearchOpportunity, error) {
	opp, err := opportunityFromInput(in)
	if err != nil {
		return nil, err
	}
	// Deadline must be in the future at creation time only; updates may keep
	// a deadline that has since passed.
	if opp.Deadline.Before(time.Now()) {
		return nil, domain.ErrDeadlinePast
	}

	now := time.Now().UTC()
	opp.CreatedAt = now
	opp.UpdatedAt = now

	created, err := s.repo.Insert(ctx, opp)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("opportunity_id", created.ID).Str("title", created.Title).Msg("opportunity created")
	return created, nil
}

func (s *OpportunityService) Update(ctx context.Context, id int64, in ports.OpportunityInput) (*domain.ResearchOpportunity, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	opp, err := opportunityFromInput(in)
	if err != nil {
		return nil, err
	}
	opp.ID = id
	opp.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, opp)
}

func (s *OpportunityService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("opportunity_id", id).Msg("opportunity deleted")
	return nil
}

func (s *OpportunityService) Search(ctx context.Context, filter ports.OpportunityFilter) ([]domain.ResearchOpportunity, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, domain.ErrInvalidOppType
	}
	return s.repo.Search(ctx, filter)
}

func (s *OpportunityService) Stats(ctx context.Context) (*ports.OpportunityStats, error) {
	return s.repo.Stats(ctx, time.Now().UTC())
}

func (s *OpportunityService) Like(ctx context.Context, id int64) (int64, error) {
	return s.repo.IncrementLikes(ctx, id)
}

func (s *OpportunityService) Apply(ctx context.Context, id int64) (int64, error) {
	return s.repo.IncrementApplications(ctx, id)
}

func opportunityFromInput(in ports.OpportunityInput) (*domain.ResearchOpportunity, error) {
	oppType := domain.OpportunityType(in.Type)
	if !oppType.Valid() {
		return nil, domain.ErrInvalidOppType
	}

	return &domain.ResearchOpportunity{
		Title:        in.Title,
		Organization: in.Organization,
		Description:  in.Description,
		Type:         oppType,
		Location:     in.Location,
		Deadline:     in.Deadline,
		Duration:     in.Duration,
		Compensation: in.Compensation,
		Requirements: cleanList(in.Requirements),
		Fields:       cleanList(in.Fields),
		ContactEmail: in.ContactEmail,
		Virtual:      in.Virtual,
		Tags:         cleanList(in.Tags),
	}, nil
}

// cleanList drops empty and whitespace-only entries and never returns nil.
func cleanList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
