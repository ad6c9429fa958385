package service

import (
	"errors"
	"testing"
	"time"

	"github.com/cougarhub/cougarhub-backend/internal/apperrors"
	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/repository"
)

func TestCreateEventRequiresOwningClub(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustUser(t, "Ana", "ana@campus.edu", models.RoleOfficer)
	rival := env.mustUser(t, "Bea", "bea@campus.edu", models.RoleOfficer)
	student := env.mustUser(t, "Sam", "sam@campus.edu", models.RoleStudent)
	club := env.mustClub(t, "Chess Club", owner.ID)

	req := models.EventRequest{
		Title:     "Blitz Night",
		Location:  "Student Center",
		StartTime: time.Now().Add(24 * time.Hour),
		ClubID:    club.ID,
	}

	if _, err := env.events.CreateEvent(owner.ID, req); err != nil {
		t.Fatalf("owner create: %v", err)
	}
	if _, err := env.events.CreateEvent(rival.ID, req); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("non-owner officer: expected ErrUnauthorized, got %v", err)
	}
	if _, err := env.events.CreateEvent(student.ID, req); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("student: expected ErrUnauthorized, got %v", err)
	}

	req.ClubID = 9999
	if _, err := env.events.CreateEvent(owner.ID, req); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("missing club: expected ErrNotFound, got %v", err)
	}
}

func TestUpdateEventOnlyCreator(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustUser(t, "Ana", "ana@campus.edu", models.RoleOfficer)
	rival := env.mustUser(t, "Bea", "bea@campus.edu", models.RoleOfficer)
	club := env.mustClub(t, "Chess Club", owner.ID)
	event := env.mustEvent(t, "Blitz Night", club.ID, owner.ID, time.Now().Add(24*time.Hour))

	newTitle := "Bullet Night"
	if _, err := env.events.UpdateEvent(rival.ID, event.ID, models.UpdateEventRequest{Title: &newTitle}); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	updated, err := env.events.UpdateEvent(owner.ID, event.ID, models.UpdateEventRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("creator update: %v", err)
	}
	if updated.Title != "Bullet Night" {
		t.Errorf("title not updated: %q", updated.Title)
	}
}

func TestDeleteEventCascadesRSVPs(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustUser(t, "Ana", "ana@campus.edu", models.RoleOfficer)
	attendee := env.mustUser(t, "Sam", "sam@campus.edu", models.RoleStudent)
	club := env.mustClub(t, "Chess Club", owner.ID)
	event := env.mustEvent(t, "Blitz Night", club.ID, owner.ID, time.Now().Add(24*time.Hour))
	other := env.mustEvent(t, "Endgame Workshop", club.ID, owner.ID, time.Now().Add(48*time.Hour))

	env.mustRSVP(t, attendee.ID, event.ID)
	env.mustRSVP(t, attendee.ID, other.ID)

	if err := env.events.DeleteEvent(owner.ID, event.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}

	if _, err := env.events.GetEvent(event.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected deleted event to be not found, got %v", err)
	}
	if got := env.countRSVPs(t); got != 1 {
		t.Errorf("expected only the other event's RSVP to survive, got %d", got)
	}
}

func TestListEventsSearchAndSort(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustUser(t, "Ana", "ana@campus.edu", models.RoleOfficer)
	a := env.mustUser(t, "A", "a@campus.edu", models.RoleStudent)
	b := env.mustUser(t, "B", "b@campus.edu", models.RoleStudent)
	club := env.mustClub(t, "Chess Club", owner.ID)

	start := time.Now().Add(24 * time.Hour)
	quiet := env.mustEvent(t, "Quiet Study", club.ID, owner.ID, start)
	popular := env.mustEvent(t, "Pizza Social", club.ID, owner.ID, start.Add(time.Hour))
	env.mustRSVP(t, a.ID, popular.ID)
	env.mustRSVP(t, b.ID, popular.ID)
	env.mustRSVP(t, a.ID, quiet.ID)

	// Case-insensitive substring search on the title.
	found, err := env.events.ListEvents(repository.EventFilter{Query: "pIzZa"}, EventSortDate)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].ID != popular.ID {
		t.Fatalf("expected only the pizza event, got %d results", len(found))
	}

	// rsvp sort puts the most-RSVP'd event first.
	ranked, err := env.events.ListEvents(repository.EventFilter{}, EventSortRSVP)
	if err != nil {
		t.Fatalf("rsvp sort: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 events, got %d", len(ranked))
	}
	if ranked[0].ID != popular.ID || ranked[0].RSVPCount != 2 {
		t.Errorf("expected popular event first with 2 RSVPs, got id=%d count=%d", ranked[0].ID, ranked[0].RSVPCount)
	}

	// Empty query returns everything, date-ordered.
	all, err := env.events.ListEvents(repository.EventFilter{}, EventSortDate)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 || all[0].ID != quiet.ID {
		t.Errorf("expected both events in start-time order")
	}
}

func TestGetEventDetailViewerState(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustUser(t, "Ana", "ana@campus.edu", models.RoleOfficer)
	attendee := env.mustUser(t, "Sam", "sam@campus.edu", models.RoleStudent)
	club := env.mustClub(t, "Chess Club", owner.ID)
	event := env.mustEvent(t, "Blitz Night", club.ID, owner.ID, time.Now().Add(24*time.Hour))
	env.mustRSVP(t, attendee.ID, event.ID)

	detail, err := env.events.GetEventDetail(event.ID, attendee.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if !detail.RSVPed || detail.RSVPCount != 1 {
		t.Errorf("expected rsvped=true count=1, got rsvped=%v count=%d", detail.RSVPed, detail.RSVPCount)
	}

	// Anonymous viewer (id 0) never shows as RSVP'd.
	anon, err := env.events.GetEventDetail(event.ID, 0)
	if err != nil {
		t.Fatalf("anonymous detail: %v", err)
	}
	if anon.RSVPed {
		t.Errorf("anonymous viewer should not be rsvped")
	}
}
