package models

import (
	"time"
)

// DashboardResponse backs the landing page: upcoming events, the current
// Sunday-to-Saturday week, featured clubs/events and the headline stats.
type DashboardResponse struct {
	UpcomingEvents []Event              `json:"upcoming_events"`
	ThisWeekEvents []Event              `json:"this_week_events"`
	FeaturedClubs  []ClubWithEventCount `json:"featured_clubs"`
	FeaturedEvents []EventWithRSVPCount `json:"featured_events"`
	WeekStart      time.Time            `json:"week_start"`
	Stats          DashboardStats       `json:"stats"`
}

type DashboardStats struct {
	Clubs          int64 `json:"clubs"`
	UpcomingEvents int64 `json:"upcoming_events"`
	RSVPs          int64 `json:"rsvps"`
}
