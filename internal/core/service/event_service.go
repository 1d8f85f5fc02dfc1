package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

const defaultPageSize = 20

// EventService implements CRUD, search and stats over event listings.
type EventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

func NewEventService(repo ports.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, log: log}
}

func (s *EventService) List(ctx context.Context, opts ports.ListOptions) ([]domain.TechEvent, error) {
	if opts.Limit <= 0 {
		opts.Limit = defaultPageSize
	}
	if opts.SortBy == "" {
		opts.SortBy = "start_date"
	}
	return s.repo.List(ctx, opts)
}

func (s *EventService) Get(ctx context.Context, id int64) (*domain.TechEvent, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, in ports.EventInput) (*domain.TechEvent, error) {
	event, err := eventFromInput(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	created, err := s.repo.Insert(ctx, event)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("event_id", created.ID).Str("title", created.Title).Msg("event created")
	return created, nil
}

func (s *EventService) Update(ctx context.Context, id int64, in ports.EventInput) (*domain.TechEvent, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	event, err := eventFromInput(in)
	if err != nil {
		return nil, err
	}
	event.ID = id
	event.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, event)
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("event_id", id).Msg("event deleted")
	return nil
}

func (s *EventService) Search(ctx context.Context, filter ports.EventFilter) ([]domain.TechEvent, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, domain.ErrInvalidEventType
	}
	return s.repo.Search(ctx, filter)
}

func (s *EventService) Stats(ctx context.Context) (*ports.EventStats, error) {
	return s.repo.Stats(ctx, time.Now().UTC())
}

func (s *EventService) Like(ctx context.Context, id int64) (int64, error) {
	return s.repo.IncrementLikes(ctx, id)
}

func (s *EventService) Register(ctx context.Context, id int64) (int64, error) {
	return s.repo.IncrementAttendees(ctx, id)
}

// eventFromInput validates the input and maps it to a domain event. Counter
// fields are left at zero; timestamps are set by the caller.
func eventFromInput(in ports.EventInput) (*domain.TechEvent, error) {
	eventType := domain.EventType(in.Type)
	if !eventType.Valid() {
		return nil, domain.ErrInvalidEventType
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrEndBeforeStart
	}

	return &domain.TechEvent{
		Title:            in.Title,
		Organization:     in.Organization,
		Description:      in.Description,
		Venue:            in.Venue,
		RegistrationLink: in.RegistrationLink,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Location:         in.Location,
		Type:             eventType,
		Price:            in.Price,
		TechStack:        emptyIfNil(in.TechStack),
		Speakers:         emptyIfNil(in.Speakers),
		Virtual:          in.Virtual,
		Tags:             emptyIfNil(in.Tags),
	}, nil
}

// emptyIfNil keeps list fields serializing as [] instead of null.
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
