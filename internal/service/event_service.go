package service

import (
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cougarhub/cougarhub-backend/internal/apperrors"
	"github.com/cougarhub/cougarhub-backend/internal/authz"
	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/repository"
)

const (
	EventSortDate = "date"
	EventSortRSVP = "rsvp"
)

type EventService struct {
	eventRepo *repository.EventRepository
	clubRepo  *repository.ClubRepository
	userRepo  *repository.UserRepository
	rsvpRepo  *repository.RSVPRepository
	logger    *zap.Logger
}

func NewEventService(
	eventRepo *repository.EventRepository,
	clubRepo *repository.ClubRepository,
	userRepo *repository.UserRepository,
	rsvpRepo *repository.RSVPRepository,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		clubRepo:  clubRepo,
		userRepo:  userRepo,
		rsvpRepo:  rsvpRepo,
		logger:    logger,
	}
}

func (s *EventService) CreateEvent(userID uint, req models.EventRequest) (*models.Event, error) {
	user, err := s.actor(userID)
	if err != nil {
		return nil, err
	}

	club, err := s.clubRepo.GetByID(req.ClubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if !authz.CanCreateEvent(user, club) {
		return nil, apperrors.ErrUnauthorized
	}

	event := &models.Event{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Location:    strings.TrimSpace(req.Location),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ClubID:      club.ID,
		CreatedBy:   user.ID,
		Image:       req.Image,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}

	s.logger.Info("event created",
		zap.Uint("event_id", event.ID),
		zap.Uint("club_id", club.ID),
		zap.Uint("created_by", user.ID),
	)
	return event, nil
}

func (s *EventService) GetEvent(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

// GetEventDetail returns the event with its RSVP count and, when viewerID
// is nonzero, whether that viewer has RSVP'd.
func (s *EventService) GetEventDetail(id, viewerID uint) (*models.EventDetailResponse, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}

	count, err := s.rsvpRepo.CountForEvent(event.ID)
	if err != nil {
		return nil, err
	}

	resp := &models.EventDetailResponse{Event: *event, RSVPCount: count}
	if viewerID != 0 {
		if _, err := s.rsvpRepo.Get(viewerID, event.ID); err == nil {
			resp.RSVPed = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return resp, nil
}

// ListEvents returns events matching the filter. sortBy "rsvp" ranks by
// RSVP count descending with a stable sort, so equal counts keep the
// store's start-time order; anything else sorts ascending by start time.
func (s *EventService) ListEvents(filter repository.EventFilter, sortBy string) ([]models.EventWithRSVPCount, error) {
	events, err := s.eventRepo.List(filter)
	if err != nil {
		return nil, err
	}

	out := make([]models.EventWithRSVPCount, 0, len(events))
	for _, e := range events {
		count, err := s.rsvpRepo.CountForEvent(e.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.EventWithRSVPCount{Event: e, RSVPCount: count})
	}

	if sortBy == EventSortRSVP {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RSVPCount > out[j].RSVPCount
		})
	}
	return out, nil
}

func (s *EventService) UpdateEvent(userID, eventID uint, req models.UpdateEventRequest) (*models.Event, error) {
	user, err := s.actor(userID)
	if err != nil {
		return nil, err
	}

	event, err := s.GetEvent(eventID)
	if err != nil {
		return nil, err
	}
	if !authz.CanManageEvent(user, event) {
		return nil, apperrors.ErrUnauthorized
	}

	if req.ClubID != nil && *req.ClubID != event.ClubID {
		club, err := s.clubRepo.GetByID(*req.ClubID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, err
		}
		// Re-homing an event still requires owning the destination club.
		if !authz.CanCreateEvent(user, club) {
			return nil, apperrors.ErrUnauthorized
		}
		event.ClubID = club.ID
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = strings.TrimSpace(*req.Location)
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = req.EndTime
	}
	if req.Image != nil {
		event.Image = *req.Image
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes the event and its RSVPs in one transaction.
func (s *EventService) DeleteEvent(userID, eventID uint) error {
	user, err := s.actor(userID)
	if err != nil {
		return err
	}

	event, err := s.GetEvent(eventID)
	if err != nil {
		return err
	}
	if !authz.CanManageEvent(user, event) {
		return apperrors.ErrUnauthorized
	}

	if err := s.eventRepo.DeleteCascade(eventID); err != nil {
		return err
	}

	s.logger.Info("event deleted", zap.Uint("event_id", eventID), zap.Uint("deleted_by", user.ID))
	return nil
}

func (s *EventService) actor(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
