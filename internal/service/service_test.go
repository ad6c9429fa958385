package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/repository"
)

// newTestDB opens a fresh in-memory SQLite database per test, with the
// same TranslateError behavior production uses so unique-index violations
// surface as gorm.ErrDuplicatedKey.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Club{}, &models.Event{}, &models.RSVP{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type testEnv struct {
	db        *gorm.DB
	userRepo  *repository.UserRepository
	clubRepo  *repository.ClubRepository
	eventRepo *repository.EventRepository
	rsvpRepo  *repository.RSVPRepository

	auth      *AuthService
	users     *UserService
	clubs     *ClubService
	events    *EventService
	rsvps     *RSVPService
	discovery *DiscoveryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	clubRepo := repository.NewClubRepository(db)
	eventRepo := repository.NewEventRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	nop := zap.NewNop()

	return &testEnv{
		db:        db,
		userRepo:  userRepo,
		clubRepo:  clubRepo,
		eventRepo: eventRepo,
		rsvpRepo:  rsvpRepo,
		auth:      NewAuthService(userRepo, nil, nop),
		users:     NewUserService(userRepo, clubRepo, eventRepo, rsvpRepo),
		clubs:     NewClubService(clubRepo, eventRepo, userRepo, nop),
		events:    NewEventService(eventRepo, clubRepo, userRepo, rsvpRepo, nop),
		rsvps:     NewRSVPService(rsvpRepo, eventRepo, nop),
		discovery: NewDiscoveryService(clubRepo, eventRepo, rsvpRepo),
	}
}

func (env *testEnv) mustUser(t *testing.T, name, email, role string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "x", Role: role}
	if err := env.userRepo.Create(user); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

func (env *testEnv) mustClub(t *testing.T, name string, ownerID uint) *models.Club {
	t.Helper()
	club := &models.Club{Name: name, OwnerID: ownerID}
	if err := env.clubRepo.Create(club); err != nil {
		t.Fatalf("create club %s: %v", name, err)
	}
	return club
}

func (env *testEnv) mustEvent(t *testing.T, title string, clubID, createdBy uint, startTime time.Time) *models.Event {
	t.Helper()
	event := &models.Event{
		Title:     title,
		Location:  "Student Center",
		StartTime: startTime,
		ClubID:    clubID,
		CreatedBy: createdBy,
	}
	if err := env.eventRepo.Create(event); err != nil {
		t.Fatalf("create event %s: %v", title, err)
	}
	return event
}

func (env *testEnv) mustRSVP(t *testing.T, userID, eventID uint) {
	t.Helper()
	if err := env.rsvpRepo.Create(&models.RSVP{UserID: userID, EventID: eventID}); err != nil {
		t.Fatalf("create rsvp user=%d event=%d: %v", userID, eventID, err)
	}
}

func (env *testEnv) countRSVPs(t *testing.T) int64 {
	t.Helper()
	count, err := env.rsvpRepo.Count()
	if err != nil {
		t.Fatalf("count rsvps: %v", err)
	}
	return count
}
