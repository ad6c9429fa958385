// Package authz holds the ownership and role rules as pure predicates.
// Nothing here touches the database: callers pass the loaded entities in,
// which keeps every rule deterministically testable.
package authz

import (
	"github.com/cougarhub/cougarhub-backend/internal/models"
)

// CanCreateClub reports whether the user may create a club. Officers only.
func CanCreateClub(user *models.User) bool {
	return user != nil && user.IsOfficer()
}

// CanManageClub reports whether the user may edit or delete the club:
// officers who own it.
func CanManageClub(user *models.User, club *models.Club) bool {
	if user == nil || club == nil {
		return false
	}
	return user.IsOfficer() && club.OwnerID == user.ID
}

// CanCreateEvent reports whether the user may create an event under the
// club: officers who own the hosting club.
func CanCreateEvent(user *models.User, club *models.Club) bool {
	return CanManageClub(user, club)
}

// CanManageEvent reports whether the user may edit or delete the event:
// officers who created it.
func CanManageEvent(user *models.User, event *models.Event) bool {
	if user == nil || event == nil {
		return false
	}
	return user.IsOfficer() && event.CreatedBy == user.ID
}
