package models

import (
	"time"
)

type Event struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	Location    string     `json:"location" gorm:"not null"`
	StartTime   time.Time  `json:"start_time" gorm:"not null;index"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	ClubID      uint       `json:"club_id" gorm:"not null;index"`
	CreatedBy   uint       `json:"created_by" gorm:"not null;index"`
	Image       string     `json:"image,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EventRequest struct {
	Title       string     `json:"title" validate:"required,max=150"`
	Description string     `json:"description"`
	Location    string     `json:"location" validate:"required,max=150"`
	StartTime   time.Time  `json:"start_time" validate:"required"`
	EndTime     *time.Time `json:"end_time"`
	ClubID      uint       `json:"club_id" validate:"required"`
	Image       string     `json:"image"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=150"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" validate:"omitempty,min=1,max=150"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	ClubID      *uint      `json:"club_id"`
	Image       *string    `json:"image"`
}

// EventWithRSVPCount carries the derived RSVP count used by the featured
// ranking and the rsvp sort on the event list.
type EventWithRSVPCount struct {
	Event
	RSVPCount int64 `json:"rsvp_count"`
}

// EventDetailResponse adds viewer-dependent state to an event: whether the
// requesting user has RSVP'd. RSVPed is always false for anonymous viewers.
type EventDetailResponse struct {
	Event
	RSVPCount int64 `json:"rsvp_count"`
	RSVPed    bool  `json:"rsvped"`
}
