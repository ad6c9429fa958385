package repository

import (
	"strings"

	"github.com/cougarhub/cougarhub-backend/internal/models"
	"gorm.io/gorm"
)

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// ClubFilter narrows List. Query is a case-insensitive substring match on
// name/description; OwnerID restricts to one owner's clubs.
type ClubFilter struct {
	Query   string
	OwnerID uint
}

func (r *ClubRepository) Create(club *models.Club) error {
	return r.db.Create(club).Error
}

func (r *ClubRepository) GetByID(id uint) (*models.Club, error) {
	var club models.Club
	if err := r.db.First(&club, id).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *ClubRepository) List(filter ClubFilter) ([]models.Club, error) {
	query := r.db.Model(&models.Club{})

	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var clubs []models.Club
	err := query.Order("name ASC").Find(&clubs).Error
	return clubs, err
}

func (r *ClubRepository) ListByOwner(ownerID uint) ([]models.Club, error) {
	var clubs []models.Club
	err := r.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&clubs).Error
	return clubs, err
}

// ListWithEventCounts ranks clubs by how many events they host, descending.
// The outer join keeps zero-event clubs in the ranking. Order between clubs
// with equal counts is the store default and deliberately unspecified.
func (r *ClubRepository) ListWithEventCounts(limit int) ([]models.ClubWithEventCount, error) {
	var clubs []models.ClubWithEventCount
	err := r.db.Model(&models.Club{}).
		Select("clubs.*, COUNT(events.id) AS event_count").
		Joins("LEFT JOIN events ON events.club_id = clubs.id").
		Group("clubs.id").
		Order("COUNT(events.id) DESC").
		Limit(limit).
		Scan(&clubs).Error
	return clubs, err
}

func (r *ClubRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Club{}).Count(&count).Error
	return count, err
}

func (r *ClubRepository) Update(club *models.Club) error {
	return r.db.Save(club).Error
}

// DeleteCascade removes the club and everything under it in one
// transaction, in dependency order: RSVPs on the club's events, then the
// events, then the club itself. No ORM cascade annotations are involved.
func (r *ClubRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		eventIDs := tx.Model(&models.Event{}).Select("id").Where("club_id = ?", id)

		if err := tx.Where("event_id IN (?)", eventIDs).Delete(&models.RSVP{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&models.Event{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Club{}, id).Error
	})
}
