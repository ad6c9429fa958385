package models

import (
	"time"
)

// RSVP links a user to an event they plan to attend. The composite unique
// index is the backstop for the at-most-one-RSVP-per-user-per-event rule;
// the service layer's existence check is advisory only.
type RSVP struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uniq_user_event"`
	EventID   uint      `json:"event_id" gorm:"not null;uniqueIndex:uniq_user_event"`
	CreatedAt time.Time `json:"created_at"`
}

type RSVPResponse struct {
	// Created reports whether this call created the RSVP. False means the
	// RSVP already existed and the call was a no-op.
	Created   bool  `json:"created"`
	RSVPCount int64 `json:"rsvp_count"`
}

type CancelRSVPResponse struct {
	// Removed reports whether this call removed an RSVP. False means there
	// was nothing to cancel.
	Removed   bool  `json:"removed"`
	RSVPCount int64 `json:"rsvp_count"`
}
