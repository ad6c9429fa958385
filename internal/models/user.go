package models

import (
	"time"
)

const (
	RoleStudent = "student"
	RoleOfficer = "officer"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:'student'"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsOfficer() bool {
	return u.Role == RoleOfficer
}

type UpdateProfileRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=80"`
	ProfileImage *string `json:"profile_image"`
}

// ProfileResponse is the aggregate behind the profile page: the clubs the
// user runs, everything they created or RSVP'd to (split around now), and
// the headline counts.
type ProfileResponse struct {
	User            User         `json:"user"`
	OfficerClubs    []Club       `json:"officer_clubs"`
	UpcomingCreated []Event      `json:"upcoming_created"`
	PastCreated     []Event      `json:"past_created"`
	UpcomingRSVP    []Event      `json:"upcoming_rsvp"`
	PastRSVP        []Event      `json:"past_rsvp"`
	Stats           ProfileStats `json:"stats"`
}

type ProfileStats struct {
	Clubs           int `json:"clubs"`
	EventsCreated   int `json:"events_created"`
	EventsAttending int `json:"events_attending"`
}

type MyEventsResponse struct {
	Created []Event `json:"created"`
	RSVPed  []Event `json:"rsvped"`
}
