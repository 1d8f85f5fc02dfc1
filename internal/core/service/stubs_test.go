package service

import (
	"context"
	"time"

	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubAdminRepo struct {
	admins map[string]*domain.Admin
	nextID int64
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func cloneAdmin(a *domain.Admin) *domain.Admin {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	if a, ok := r.admins[username]; ok {
		return cloneAdmin(a), nil
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubAdminRepo) Insert(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if _, exists := r.admins[admin.Username]; exists {
		return nil, domain.ErrAdminExists
	}
	r.nextID++
	copy := cloneAdmin(admin)
	copy.ID = r.nextID
	r.admins[copy.Username] = cloneAdmin(copy)
	return copy, nil
}

func (r *stubAdminRepo) Any(_ context.Context) (bool, error) {
	return len(r.admins) > 0, nil
}

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	// Full-slice expressions keep an empty slice non-nil through the copy.
	clone.Interests = append(u.Interests[:0:0], u.Interests...)
	clone.SavedEvents = append(u.SavedEvents[:0:0], u.SavedEvents...)
	clone.SavedOpportunities = append(u.SavedOpportunities[:0:0], u.SavedOpportunities...)
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, identifier string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == identifier || u.Email == identifier {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrPrincipalNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) EmailTaken(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type stubEventRepo struct {
	events map[int64]*domain.TechEvent
	nextID int64
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[int64]*domain.TechEvent)}
}

func cloneEvent(e *domain.TechEvent) *domain.TechEvent {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEventRepo) Insert(_ context.Context, event *domain.TechEvent) (*domain.TechEvent, error) {
	r.nextID++
	copy := cloneEvent(event)
	copy.ID = r.nextID
	r.events[copy.ID] = cloneEvent(copy)
	return copy, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id int64) (*domain.TechEvent, error) {
	if e, ok := r.events[id]; ok {
		return cloneEvent(e), nil
	}
	return nil, domain.ErrEventNotFound
}

func (r *stubEventRepo) FindByIDs(_ context.Context, ids []int64) ([]domain.TechEvent, error) {
	out := []domain.TechEvent{}
	for _, id := range ids {
		if e, ok := r.events[id]; ok {
			out = append(out, *cloneEvent(e))
		}
	}
	return out, nil
}

func (r *stubEventRepo) List(_ context.Context, _ ports.ListOptions) ([]domain.TechEvent, error) {
	out := []domain.TechEvent{}
	for _, e := range r.events {
		out = append(out, *cloneEvent(e))
	}
	return out, nil
}

func (r *stubEventRepo) Search(_ context.Context, _ ports.EventFilter) ([]domain.TechEvent, error) {
	return r.List(context.Background(), ports.ListOptions{})
}

func (r *stubEventRepo) Update(_ context.Context, event *domain.TechEvent) (*domain.TechEvent, error) {
	existing, ok := r.events[event.ID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	copy := cloneEvent(event)
	copy.Likes = existing.Likes
	copy.Attendees = existing.Attendees
	copy.CreatedAt = existing.CreatedAt
	r.events[copy.ID] = cloneEvent(copy)
	return copy, nil
}

func (r *stubEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *stubEventRepo) IncrementLikes(_ context.Context, id int64) (int64, error) {
	e, ok := r.events[id]
	if !ok {
		return 0, domain.ErrEventNotFound
	}
	e.Likes++
	return e.Likes, nil
}

func (r *stubEventRepo) IncrementAttendees(_ context.Context, id int64) (int64, error) {
	e, ok := r.events[id]
	if !ok {
		return 0, domain.ErrEventNotFound
	}
	e.Attendees++
	return e.Attendees, nil
}

func (r *stubEventRepo) Stats(_ context.Context, now time.Time) (*ports.EventStats, error) {
	stats := &ports.EventStats{
		Types:             map[string]int64{},
		VirtualVsPhysical: map[string]int64{},
	}
	for _, e := range r.events {
		stats.TotalEvents++
		stats.TotalAttendees += e.Attendees
		stats.TotalLikes += e.Likes
		stats.Types[string(e.Type)]++
		if e.Virtual {
			stats.VirtualVsPhysical["true"]++
		} else {
			stats.VirtualVsPhysical["false"]++
		}
		if !e.StartDate.Before(now) {
			stats.UpcomingEvents++
		}
	}
	return stats, nil
}

type stubOppRepo struct {
	opps   map[int64]*domain.ResearchOpportunity
	nextID int64
}

func newStubOppRepo() *stubOppRepo {
	return &stubOppRepo{opps: make(map[int64]*domain.ResearchOpportunity)}
}

func cloneOpp(o *domain.ResearchOpportunity) *domain.ResearchOpportunity {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}

func (r *stubOppRepo) Insert(_ context.Context, opp *domain.ResearchOpportunity) (*domain.ResearchOpportunity, error) {
	r.nextID++
	copy := cloneOpp(opp)
	copy.ID = r.nextID
	r.opps[copy.ID] = cloneOpp(copy)
	return copy, nil
}

func (r *stubOppRepo) FindByID(_ context.Context, id int64) (*domain.ResearchOpportunity, error) {
	if o, ok := r.opps[id]; ok {
		return cloneOpp(o), nil
	}
	return nil, domain.ErrOpportunityNotFound
}

func (r *stubOppRepo) FindByIDs(_ context.Context, ids []int64) ([]domain.ResearchOpportunity, error) {
	out := []domain.ResearchOpportunity{}
	for _, id := range ids {
		if o, ok := r.opps[id]; ok {
			out = append(out, *cloneOpp(o))
		}
	}
	return out, nil
}

func (r *stubOppRepo) List(_ context.Context, _ ports.ListOptions) ([]domain.ResearchOpportunity, error) {
	out := []domain.ResearchOpportunity{}
	for _, o := range r.opps {
		out = append(out, *cloneOpp(o))
	}
	return out, nil
}

func (r *stubOppRepo) Search(_ context.Context, _ ports.OpportunityFilter) ([]domain.ResearchOpportunity, error) {
	return r.List(context.Background(), ports.ListOptions{})
}

func (r *stubOppRepo) Update(_ context.Context, opp *domain.ResearchOpportunity) (*domain.ResearchOpportunity, error) {
	existing, ok := r.opps[opp.ID]
	if !ok {
		return nil, domain.ErrOpportunityNotFound
	}
	copy := cloneOpp(opp)
	copy.Likes = existing.Likes
	copy.Applications = existing.Applications
	copy.CreatedAt = existing.CreatedAt
	r.opps[copy.ID] = cloneOpp(copy)
	return copy, nil
}

func (r *stubOppRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.opps[id]; !ok {
		return domain.ErrOpportunityNotFound
	}
	delete(r.opps, id)
	return nil
}

func (r *stubOppRepo) IncrementLikes(_ context.Context, id int64) (int64, error) {
	o, ok := r.opps[id]
	if !ok {
		return 0, domain.ErrOpportunityNotFound
	}
	o.Likes++
	return o.Likes, nil
}

func (r *stubOppRepo) IncrementApplications(_ context.Context, id int64) (int64, error) {
	o, ok := r.opps[id]
	if !ok {
		return 0, domain.ErrOpportunityNotFound
	}
	o.Applications++
	return o.Applications, nil
}

func (r *stubOppRepo) Stats(_ context.Context, now time.Time) (*ports.OpportunityStats, error) {
	stats := &ports.OpportunityStats{
		Types:             map[string]int64{},
		VirtualVsPhysical: map[string]int64{},
	}
	for _, o := range r.opps {
		stats.TotalOpportunities++
		stats.TotalApplications += o.Applications
		stats.TotalLikes += o.Likes
		stats.Types[string(o.Type)]++
		if o.Virtual {
			stats.VirtualVsPhysical["true"]++
		} else {
			stats.VirtualVsPhysical["false"]++
		}
		if !o.Deadline.Before(now) {
			stats.UpcomingOpportunities++
		}
	}
	return stats, nil
}
