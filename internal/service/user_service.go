package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/cougarhub/cougarhub-backend/internal/apperrors"
	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/repository"
)

type UserService struct {
	userRepo  *repository.UserRepository
	clubRepo  *repository.ClubRepository
	eventRepo *repository.EventRepository
	rsvpRepo  *repository.RSVPRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	clubRepo *repository.ClubRepository,
	eventRepo *repository.EventRepository,
	rsvpRepo *repository.RSVPRepository,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		clubRepo:  clubRepo,
		eventRepo: eventRepo,
		rsvpRepo:  rsvpRepo,
	}
}

func (s *UserService) GetUser(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Profile assembles the profile page aggregate: owned clubs, created and
// RSVP'd events split into upcoming/past around now, plus counts.
func (s *UserService) Profile(userID uint, now time.Time) (*models.ProfileResponse, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	officerClubs, err := s.clubRepo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}

	created, err := s.eventRepo.ListCreatedBy(userID)
	if err != nil {
		return nil, err
	}

	rsvpEvents, err := s.rsvpedEvents(userID)
	if err != nil {
		return nil, err
	}

	resp := &models.ProfileResponse{
		User:         *user,
		OfficerClubs: officerClubs,
		Stats: models.ProfileStats{
			Clubs:           len(officerClubs),
			EventsCreated:   len(created),
			EventsAttending: len(rsvpEvents),
		},
	}

	for _, e := range created {
		if e.StartTime.After(now) {
			resp.UpcomingCreated = append(resp.UpcomingCreated, e)
		} else {
			resp.PastCreated = append(resp.PastCreated, e)
		}
	}
	for _, e := range rsvpEvents {
		if e.StartTime.After(now) {
			resp.UpcomingRSVP = append(resp.UpcomingRSVP, e)
		} else {
			resp.PastRSVP = append(resp.PastRSVP, e)
		}
	}

	return resp, nil
}

func (s *UserService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// MyEvents returns events the user created and events they RSVP'd to,
// newest RSVP first, with RSVP'd events deduplicated against created ones.
func (s *UserService) MyEvents(userID uint) (*models.MyEventsResponse, error) {
	created, err := s.eventRepo.ListCreatedBy(userID)
	if err != nil {
		return nil, err
	}

	rsvpEvents, err := s.rsvpedEvents(userID)
	if err != nil {
		return nil, err
	}

	createdIDs := make(map[uint]bool, len(created))
	for _, e := range created {
		createdIDs[e.ID] = true
	}

	resp := &models.MyEventsResponse{Created: created}
	for _, e := range rsvpEvents {
		if !createdIDs[e.ID] {
			resp.RSVPed = append(resp.RSVPed, e)
		}
	}
	return resp, nil
}

// rsvpedEvents resolves the user's RSVPs to events, preserving
// newest-RSVP-first order.
func (s *UserService) rsvpedEvents(userID uint) ([]models.Event, error) {
	rsvps, err := s.rsvpRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(rsvps) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(rsvps))
	for _, r := range rsvps {
		ids = append(ids, r.EventID)
	}

	events, err := s.eventRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}

	ordered := make([]models.Event, 0, len(rsvps))
	for _, r := range rsvps {
		if e, ok := byID[r.EventID]; ok {
			ordered = append(ordered, e)
		}
	}
	return ordered, nil
}
