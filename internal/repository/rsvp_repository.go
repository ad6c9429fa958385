package repository

import (
	"github.com/cougarhub/cougarhub-backend/internal/models"
	"gorm.io/gorm"
)

type RSVPRepository struct {
	db *gorm.DB
}

func NewRSVPRepository(db *gorm.DB) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// Create inserts the RSVP. A concurrent duplicate for the same
// (user, event) pair fails here with gorm.ErrDuplicatedKey thanks to the
// composite unique index; callers decide what that means.
func (r *RSVPRepository) Create(rsvp *models.RSVP) error {
	return r.db.Create(rsvp).Error
}

func (r *RSVPRepository) Get(userID, eventID uint) (*models.RSVP, error) {
	var rsvp models.RSVP
	err := r.db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&rsvp).Error
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

func (r *RSVPRepository) Delete(userID, eventID uint) error {
	return r.db.Where("user_id = ? AND event_id = ?", userID, eventID).Delete(&models.RSVP{}).Error
}

// ListForUser returns the user's RSVPs, newest first.
func (r *RSVPRepository) ListForUser(userID uint) ([]models.RSVP, error) {
	var rsvps []models.RSVP
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&rsvps).Error
	return rsvps, err
}

func (r *RSVPRepository) CountForEvent(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.RSVP{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

func (r *RSVPRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.RSVP{}).Count(&count).Error
	return count, err
}
