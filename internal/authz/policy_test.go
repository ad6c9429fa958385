package authz

import (
	"testing"

	"github.com/cougarhub/cougarhub-backend/internal/models"
)

func TestCanCreateClub(t *testing.T) {
	officer := &models.User{ID: 1, Role: models.RoleOfficer}
	student := &models.User{ID: 2, Role: models.RoleStudent}

	if !CanCreateClub(officer) {
		t.Errorf("officer should be able to create a club")
	}
	if CanCreateClub(student) {
		t.Errorf("student should not be able to create a club")
	}
	if CanCreateClub(nil) {
		t.Errorf("anonymous should not be able to create a club")
	}
}

func TestCanManageClub(t *testing.T) {
	owner := &models.User{ID: 1, Role: models.RoleOfficer}
	otherOfficer := &models.User{ID: 2, Role: models.RoleOfficer}
	student := &models.User{ID: 3, Role: models.RoleStudent}
	club := &models.Club{ID: 10, OwnerID: 1}

	if !CanManageClub(owner, club) {
		t.Errorf("owning officer should manage their club")
	}
	if CanManageClub(otherOfficer, club) {
		t.Errorf("non-owner officer should not manage someone else's club")
	}
	if CanManageClub(student, club) {
		t.Errorf("student should not manage a club")
	}
	if CanManageClub(nil, club) || CanManageClub(owner, nil) {
		t.Errorf("nil user or club should never be manageable")
	}
}

func TestCanManageEvent(t *testing.T) {
	creator := &models.User{ID: 1, Role: models.RoleOfficer}
	otherOfficer := &models.User{ID: 2, Role: models.RoleOfficer}
	studentCreator := &models.User{ID: 3, Role: models.RoleStudent}
	event := &models.Event{ID: 20, CreatedBy: 1}

	if !CanManageEvent(creator, event) {
		t.Errorf("creating officer should manage their event")
	}
	if CanManageEvent(otherOfficer, event) {
		t.Errorf("officer who did not create the event should not manage it")
	}
	// Role demotion revokes management even for the creator.
	if CanManageEvent(studentCreator, &models.Event{ID: 21, CreatedBy: 3}) {
		t.Errorf("student creator should not manage an event")
	}
}

func TestCanCreateEvent(t *testing.T) {
	owner := &models.User{ID: 1, Role: models.RoleOfficer}
	club := &models.Club{ID: 10, OwnerID: 1}

	if !CanCreateEvent(owner, club) {
		t.Errorf("owning officer should create events for their club")
	}
	if CanCreateEvent(&models.User{ID: 2, Role: models.RoleOfficer}, club) {
		t.Errorf("officer should not create events for a club they don't own")
	}
}
