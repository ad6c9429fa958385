package service

import (
	"errors"
	"testing"
	"time"

	"github.com/cougarhub/cougarhub-backend/internal/apperrors"
	"github.com/cougarhub/cougarhub-backend/internal/models"
)

func TestCreateClubRequiresOfficer(t *testing.T) {
	env := newTestEnv(t)
	student := env.mustUser(t, "Sam", "sam@campus.edu", models.RoleStudent)

	_, err := env.clubs.CreateClub(student.ID, models.ClubRequest{Name: "Chess Club"})
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateClubNonOwnerOfficerDenied(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustUser(t, "Ana", "ana@campus.edu", models.RoleOfficer)
	rival := env.mustUser(t, "Bea", "bea@campus.edu", models.RoleOfficer)
	club := env.mustClub(t, "Chess Club", owner.ID)

	newName := "Checkers Club"
	_, err := env.clubs.UpdateClub(rival.ID, club.ID, models.UpdateClubRequest{Name: &newName})
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// Denial leaves the club unchanged.
	reloaded, err := env.clubs.GetClub(club.ID)
	if err != nil {
		t.Fatalf("reload club: %v", err)
	}
	if reloaded.Name != "Chess Club" {
		t.Errorf("club name changed after denied update: %q", reloaded.Name)
	}
}

func TestDeleteClubCascades(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustUser(t, "Ana", "ana@campus.edu", models.RoleOfficer)
	attendee := env.mustUser(t, "Sam", "sam@campus.edu", models.RoleStudent)

	club := env.mustClub(t, "Chess Club", owner.ID)
	other := env.mustClub(t, "Robotics", owner.ID)

	start := time.Now().Add(48 * time.Hour)
	e1 := env.mustEvent(t, "Blitz Night", club.ID, owner.ID, start)
	e2 := env.mustEvent(t, "Endgame Workshop", club.ID, owner.ID, start.Add(time.Hour))
	keep := env.mustEvent(t, "Robot Demo", other.ID, owner.ID, start)

	env.mustRSVP(t, attendee.ID, e1.ID)
	env.mustRSVP(t, attendee.ID, e2.ID)
	env.mustRSVP(t, attendee.ID, keep.ID)

	if err := env.clubs.DeleteClub(owner.ID, club.ID); err != nil {
		t.Fatalf("delete club: %v", err)
	}

	if _, err := env.clubs.GetClub(club.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected deleted club to be not found, got %v", err)
	}

	// Both events and their RSVPs are gone; the other club's are not.
	var eventCount int64
	if err := env.db.Model(&models.Event{}).Count(&eventCount).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if eventCount != 1 {
		t.Errorf("expected only the other club's event to survive, got %d events", eventCount)
	}
	if got := env.countRSVPs(t); got != 1 {
		t.Errorf("expected 1 surviving RSVP, got %d", got)
	}
}

func TestDeleteClubNonOwnerLeavesEverything(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustUser(t, "Ana", "ana@campus.edu", models.RoleOfficer)
	rival := env.mustUser(t, "Bea", "bea@campus.edu", models.RoleOfficer)
	club := env.mustClub(t, "Chess Club", owner.ID)
	env.mustEvent(t, "Blitz Night", club.ID, owner.ID, time.Now().Add(time.Hour))

	if err := env.clubs.DeleteClub(rival.ID, club.ID); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	if _, err := env.clubs.GetClub(club.ID); err != nil {
		t.Errorf("club should survive a denied delete: %v", err)
	}
	var eventCount int64
	if err := env.db.Model(&models.Event{}).Count(&eventCount).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if eventCount != 1 {
		t.Errorf("expected the event to survive, got %d", eventCount)
	}
}

func TestListClubEvents(t *testing.T) {
	env := newTestEnv(t)
	owner := env.mustUser(t, "Ana", "ana@campus.edu", models.RoleOfficer)
	club := env.mustClub(t, "Chess Club", owner.ID)
	other := env.mustClub(t, "Robotics", owner.ID)

	later := env.mustEvent(t, "Later", club.ID, owner.ID, time.Now().Add(2*time.Hour))
	earlier := env.mustEvent(t, "Earlier", club.ID, owner.ID, time.Now().Add(time.Hour))
	env.mustEvent(t, "Elsewhere", other.ID, owner.ID, time.Now().Add(time.Hour))

	events, err := env.clubs.ListClubEvents(club.ID)
	if err != nil {
		t.Fatalf("list club events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != earlier.ID || events[1].ID != later.ID {
		t.Errorf("expected start-time ascending order")
	}

	if _, err := env.clubs.ListClubEvents(9999); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing club, got %v", err)
	}
}
