package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/techbridge/events-api/internal/core/domain"
	"github.com/techbridge/events-api/internal/core/ports"
)

func newUserService(users *stubUserRepo, events *stubEventRepo, opps *stubOppRepo) *UserService {
	return NewUserService(users, events, opps, zerolog.Nop())
}

func seedEvent(t *testing.T, repo *stubEventRepo, title string) *domain.TechEvent {
	t.Helper()
	event, err := repo.Insert(context.Background(), &domain.TechEvent{
		Title:     title,
		Type:      domain.EventConference,
		StartDate: time.Now().Add(24 * time.Hour),
		EndDate:   time.Now().Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func seedOpportunity(t *testing.T, repo *stubOppRepo, title string) *domain.ResearchOpportunity {
	t.Helper()
	opp, err := repo.Insert(context.Background(), &domain.ResearchOpportunity{
		Title:    title,
		Type:     domain.OpportunityInternship,
		Deadline: time.Now().Add(30 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("seed opportunity: %v", err)
	}
	return opp
}

func TestUserService_Register(t *testing.T) {
	users := newStubUserRepo()
	svc := newUserService(users, newStubEventRepo(), newStubOppRepo())

	created, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "userpass1",
		FullName: "Alice Liddell",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.PasswordHash == "userpass1" {
		t.Fatalf("expected password to be hashed")
	}
	if !created.IsActive {
		t.Fatalf("new accounts must be active")
	}
	if created.Interests == nil || created.SavedEvents == nil || created.SavedOpportunities == nil {
		t.Fatalf("list fields must initialise empty, not nil")
	}
}

func TestUserService_Register_Duplicates(t *testing.T) {
	users := newStubUserRepo()
	svc := newUserService(users, newStubEventRepo(), newStubOppRepo())

	in := ports.RegisterUserInput{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "userpass1",
		FullName: "Alice Liddell",
	}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// Same email, different username: the email check fires first.
	dup := in
	dup.Username = "alice2"
	if _, err := svc.Register(context.Background(), dup); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	dup = in
	dup.Email = "other@example.com"
	if _, err := svc.Register(context.Background(), dup); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	users := newStubUserRepo()
	svc := newUserService(users, newStubEventRepo(), newStubOppRepo())
	user := seedUser(t, users, "alice", "alice@example.com", "userpass1")

	bio := "ML researcher"
	updated, err := svc.UpdateProfile(context.Background(), user, ports.UpdateProfileInput{
		Bio:       &bio,
		Interests: []string{"AI", "Robotics"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Bio != "ML researcher" {
		t.Fatalf("bio not applied: %q", updated.Bio)
	}
	if len(updated.Interests) != 2 {
		t.Fatalf("interests not applied: %v", updated.Interests)
	}
	// Untouched fields survive.
	if updated.Email != "alice@example.com" || updated.Username != "alice" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	users := newStubUserRepo()
	svc := newUserService(users, newStubEventRepo(), newStubOppRepo())
	seedUser(t, users, "alice", "alice@example.com", "userpass1")
	bob := seedUser(t, users, "bob", "bob@example.com", "userpass2")

	takenEmail := "alice@example.com"
	if _, err := svc.UpdateProfile(context.Background(), bob, ports.UpdateProfileInput{Email: &takenEmail}); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	// Re-submitting your own address is fine.
	ownEmail := "bob@example.com"
	if _, err := svc.UpdateProfile(context.Background(), bob, ports.UpdateProfileInput{Email: &ownEmail}); err != nil {
		t.Fatalf("own email rejected: %v", err)
	}
}

func TestUserService_ToggleSavedEvent(t *testing.T) {
	users := newStubUserRepo()
	events := newStubEventRepo()
	svc := newUserService(users, events, newStubOppRepo())
	user := seedUser(t, users, "alice", "alice@example.com", "userpass1")
	event := seedEvent(t, events, "GopherCon")

	saved, err := svc.ToggleSavedEvent(context.Background(), user, event.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if len(saved.SavedEvents) != 1 || saved.SavedEvents[0] != event.ID {
		t.Fatalf("event not saved: %v", saved.SavedEvents)
	}

	// Second toggle removes it.
	saved, err = svc.ToggleSavedEvent(context.Background(), saved, event.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if len(saved.SavedEvents) != 0 {
		t.Fatalf("event not removed: %v", saved.SavedEvents)
	}
}

func TestUserService_ToggleSavedEvent_Missing(t *testing.T) {
	users := newStubUserRepo()
	svc := newUserService(users, newStubEventRepo(), newStubOppRepo())
	user := seedUser(t, users, "alice", "alice@example.com", "userpass1")

	if _, err := svc.ToggleSavedEvent(context.Background(), user, 404); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestUserService_ToggleSavedOpportunity(t *testing.T) {
	users := newStubUserRepo()
	opps := newStubOppRepo()
	svc := newUserService(users, newStubEventRepo(), opps)
	user := seedUser(t, users, "alice", "alice@example.com", "userpass1")
	opp := seedOpportunity(t, opps, "Summer internship")

	saved, err := svc.ToggleSavedOpportunity(context.Background(), user, opp.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(saved.SavedOpportunities) != 1 {
		t.Fatalf("opportunity not saved: %v", saved.SavedOpportunities)
	}

	if _, err := svc.ToggleSavedOpportunity(context.Background(), user, 404); !errors.Is(err, domain.ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
}

func TestUserService_SavedEvents(t *testing.T) {
	users := newStubUserRepo()
	events := newStubEventRepo()
	svc := newUserService(users, events, newStubOppRepo())
	user := seedUser(t, users, "alice", "alice@example.com", "userpass1")

	// Empty list resolves to an empty slice, not nil.
	list, err := svc.SavedEvents(context.Background(), user)
	if err != nil {
		t.Fatalf("SavedEvents: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty slice, got %v", list)
	}

	first := seedEvent(t, events, "GopherCon")
	second := seedEvent(t, events, "KubeCon")
	user.SavedEvents = []int64{first.ID, second.ID, 999} // 999 points at nothing

	list, err = svc.SavedEvents(context.Background(), user)
	if err != nil {
		t.Fatalf("SavedEvents: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 events (dangling id skipped), got %d", len(list))
	}
}
