package models

import (
	"time"
)

type Club struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	ShortDescription string    `json:"short_description,omitempty"`
	Description      string    `json:"description,omitempty" gorm:"type:text"`
	Logo             string    `json:"logo,omitempty"`
	Banner           string    `json:"banner,omitempty"`
	Website          string    `json:"website,omitempty"`
	ContactEmail     string    `json:"contact_email,omitempty"`
	ContactPhone     string    `json:"contact_phone,omitempty"`
	OwnerID          uint      `json:"owner_id" gorm:"not null;index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ClubRequest struct {
	Name             string `json:"name" validate:"required,max=120"`
	ShortDescription string `json:"short_description" validate:"max=200"`
	Description      string `json:"description"`
	Logo             string `json:"logo"`
	Banner           string `json:"banner"`
	Website          string `json:"website" validate:"omitempty,url"`
	ContactEmail     string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone     string `json:"contact_phone" validate:"max=50"`
}

type UpdateClubRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=120"`
	ShortDescription *string `json:"short_description" validate:"omitempty,max=200"`
	Description      *string `json:"description"`
	Logo             *string `json:"logo"`
	Banner           *string `json:"banner"`
	Website          *string `json:"website" validate:"omitempty,url"`
	ContactEmail     *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone     *string `json:"contact_phone" validate:"omitempty,max=50"`
}

// ClubWithEventCount carries the derived event count used by the featured
// ranking. The count is never stored.
type ClubWithEventCount struct {
	Club
	EventCount int64 `json:"event_count"`
}
