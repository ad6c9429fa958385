package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cougarhub/cougarhub-backend/internal/apperrors"
	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/repository"
)

type RSVPService struct {
	rsvpRepo  *repository.RSVPRepository
	eventRepo *repository.EventRepository
	logger    *zap.Logger
}

func NewRSVPService(rsvpRepo *repository.RSVPRepository, eventRepo *repository.EventRepository, logger *zap.Logger) *RSVPService {
	return &RSVPService{
		rsvpRepo:  rsvpRepo,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// RSVP records the user's attendance for the event. Calling it again for
// the same pair is a no-op reported through Created=false, never an error.
// A duplicate insert that slips past the existence check (two requests
// racing) hits the unique index and folds into the same outcome.
func (s *RSVPService) RSVP(userID, eventID uint) (*models.RSVPResponse, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	created := false
	_, err = s.rsvpRepo.Get(userID, event.ID)
	switch {
	case err == nil:
		// already RSVP'd
	case errors.Is(err, gorm.ErrRecordNotFound):
		createErr := s.rsvpRepo.Create(&models.RSVP{UserID: userID, EventID: event.ID})
		switch {
		case createErr == nil:
			created = true
		case errors.Is(createErr, gorm.ErrDuplicatedKey):
			// lost the race; same result as already RSVP'd
		default:
			return nil, createErr
		}
	default:
		return nil, err
	}

	count, err := s.rsvpRepo.CountForEvent(event.ID)
	if err != nil {
		return nil, err
	}

	if created {
		s.logger.Info("rsvp recorded", zap.Uint("user_id", userID), zap.Uint("event_id", event.ID))
	}
	return &models.RSVPResponse{Created: created, RSVPCount: count}, nil
}

// Cancel removes the user's RSVP. Cancelling when none exists is a no-op
// reported through Removed=false.
func (s *RSVPService) Cancel(userID, eventID uint) (*models.CancelRSVPResponse, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	removed := false
	if _, err := s.rsvpRepo.Get(userID, event.ID); err == nil {
		if err := s.rsvpRepo.Delete(userID, event.ID); err != nil {
			return nil, err
		}
		removed = true
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	count, err := s.rsvpRepo.CountForEvent(event.ID)
	if err != nil {
		return nil, err
	}

	if removed {
		s.logger.Info("rsvp cancelled", zap.Uint("user_id", userID), zap.Uint("event_id", event.ID))
	}
	return &models.CancelRSVPResponse{Removed: removed, RSVPCount: count}, nil
}
