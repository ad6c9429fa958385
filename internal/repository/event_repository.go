package repository

import (
	"strings"
	"time"

	"github.com/cougarhub/cougarhub-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// EventFilter narrows List. Query is a case-insensitive substring match on
// title/description.
type EventFilter struct {
	Query string
}

func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) List(filter EventFilter) ([]models.Event, error) {
	query := r.db.Model(&models.Event{})

	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var events []models.Event
	err := query.Order("start_time ASC").Find(&events).Error
	return events, err
}

func (r *EventRepository) ListForClub(clubID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("club_id = ?", clubID).Order("start_time ASC").Find(&events).Error
	return events, err
}

func (r *EventRepository) ListCreatedBy(userID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("created_by = ?", userID).Order("start_time ASC").Find(&events).Error
	return events, err
}

// ListByIDs fetches the given events in one query. Result order is the
// store's, not the input's; callers reorder if they care.
func (r *EventRepository) ListByIDs(ids []uint) ([]models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var events []models.Event
	err := r.db.Where("id IN ?", ids).Find(&events).Error
	return events, err
}

func (r *EventRepository) Upcoming(now time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("start_time >= ?", now).Order("start_time ASC").Find(&events).Error
	return events, err
}

// Between returns events starting inside [start, end], both ends inclusive.
func (r *EventRepository) Between(start, end time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("start_time >= ? AND start_time <= ?", start, end).
		Order("start_time ASC").
		Find(&events).Error
	return events, err
}

// ListFeatured ranks upcoming events by RSVP count, descending. Zero-RSVP
// events stay in via the outer join; ties keep store-default order.
func (r *EventRepository) ListFeatured(now time.Time, limit int) ([]models.EventWithRSVPCount, error) {
	var events []models.EventWithRSVPCount
	err := r.db.Model(&models.Event{}).
		Select("events.*, COUNT(rsvps.id) AS rsvp_count").
		Joins("LEFT JOIN rsvps ON rsvps.event_id = events.id").
		Where("events.start_time >= ?", now).
		Group("events.id").
		Order("COUNT(rsvps.id) DESC").
		Limit(limit).
		Scan(&events).Error
	return events, err
}

func (r *EventRepository) CountUpcoming(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Event{}).Where("start_time >= ?", now).Count(&count).Error
	return count, err
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// DeleteCascade removes the event and its RSVPs in one transaction,
// RSVPs first.
func (r *EventRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.RSVP{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, id).Error
	})
}
