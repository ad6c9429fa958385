package service

import (
	"time"

	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/repository"
)

const (
	featuredClubLimit  = 3
	featuredEventLimit = 6
)

// DiscoveryService builds the read-only aggregates behind the landing
// page: upcoming events, the current week's window, featured rankings and
// the headline stats. Nothing here mutates state.
type DiscoveryService struct {
	clubRepo  *repository.ClubRepository
	eventRepo *repository.EventRepository
	rsvpRepo  *repository.RSVPRepository
}

func NewDiscoveryService(
	clubRepo *repository.ClubRepository,
	eventRepo *repository.EventRepository,
	rsvpRepo *repository.RSVPRepository,
) *DiscoveryService {
	return &DiscoveryService{
		clubRepo:  clubRepo,
		eventRepo: eventRepo,
		rsvpRepo:  rsvpRepo,
	}
}

// WeekWindow returns the Sunday-to-Saturday window containing now: Sunday
// 00:00:00 local through Saturday 23:59:59, both inclusive.
func WeekWindow(now time.Time) (time.Time, time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// time.Weekday counts days since Sunday.
	weekStart := midnight.AddDate(0, 0, -int(now.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return weekStart, weekEnd
}

func (s *DiscoveryService) Upcoming(now time.Time) ([]models.Event, error) {
	return s.eventRepo.Upcoming(now)
}

func (s *DiscoveryService) ThisWeek(now time.Time) ([]models.Event, error) {
	weekStart, weekEnd := WeekWindow(now)
	return s.eventRepo.Between(weekStart, weekEnd)
}

func (s *DiscoveryService) FeaturedClubs() ([]models.ClubWithEventCount, error) {
	return s.clubRepo.ListWithEventCounts(featuredClubLimit)
}

func (s *DiscoveryService) FeaturedEvents(now time.Time) ([]models.EventWithRSVPCount, error) {
	return s.eventRepo.ListFeatured(now, featuredEventLimit)
}

func (s *DiscoveryService) Dashboard(now time.Time) (*models.DashboardResponse, error) {
	upcoming, err := s.Upcoming(now)
	if err != nil {
		return nil, err
	}

	thisWeek, err := s.ThisWeek(now)
	if err != nil {
		return nil, err
	}

	featuredClubs, err := s.FeaturedClubs()
	if err != nil {
		return nil, err
	}

	featuredEvents, err := s.FeaturedEvents(now)
	if err != nil {
		return nil, err
	}

	clubCount, err := s.clubRepo.Count()
	if err != nil {
		return nil, err
	}

	rsvpCount, err := s.rsvpRepo.Count()
	if err != nil {
		return nil, err
	}

	weekStart, _ := WeekWindow(now)

	return &models.DashboardResponse{
		UpcomingEvents: upcoming,
		ThisWeekEvents: thisWeek,
		FeaturedClubs:  featuredClubs,
		FeaturedEvents: featuredEvents,
		WeekStart:      weekStart,
		Stats: models.DashboardStats{
			Clubs:          clubCount,
			UpcomingEvents: int64(len(upcoming)),
			RSVPs:          rsvpCount,
		},
	}, nil
}
