package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/cougarhub/cougarhub-backend/internal/config"
	"github.com/cougarhub/cougarhub-backend/internal/handler"
	"github.com/cougarhub/cougarhub-backend/internal/middleware"
	"github.com/cougarhub/cougarhub-backend/internal/models"
	"github.com/cougarhub/cougarhub-backend/internal/repository"
	"github.com/cougarhub/cougarhub-backend/internal/service"
	"github.com/cougarhub/cougarhub-backend/pkg/database"
	"github.com/cougarhub/cougarhub-backend/pkg/email"
	"github.com/cougarhub/cougarhub-backend/pkg/logger"
	"github.com/cougarhub/cougarhub-backend/pkg/storage"
	"github.com/cougarhub/cougarhub-backend/pkg/utils"
)

func main() {
	// .env is optional outside local dev
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded")
	}

	cfg := config.LoadConfig()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("database connection failed", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Event{},
		&models.RSVP{},
	); err != nil {
		zapLogger.Fatal("database migration failed", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	clubRepo := repository.NewClubRepository(db)
	eventRepo := repository.NewEventRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)

	// Object storage for image uploads
	r2Storage, err := storage.NewR2Storage(cfg)
	if err != nil {
		zapLogger.Fatal("storage initialization failed", zap.Error(err))
	}

	// Email service
	emailService := email.NewEmailService(cfg)

	// Services
	authService := service.NewAuthService(userRepo, emailService, zapLogger)
	userService := service.NewUserService(userRepo, clubRepo, eventRepo, rsvpRepo)
	clubService := service.NewClubService(clubRepo, eventRepo, userRepo, zapLogger)
	eventService := service.NewEventService(eventRepo, clubRepo, userRepo, rsvpRepo, zapLogger)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo, zapLogger)
	discoveryService := service.NewDiscoveryService(clubRepo, eventRepo, rsvpRepo)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	clubHandler := handler.NewClubHandler(clubService, validator)
	eventHandler := handler.NewEventHandler(eventService, rsvpService, validator)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryService)
	uploadHandler := handler.NewUploadHandler(r2Storage)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Browse routes take optional auth so viewer-dependent fields (rsvped,
	// my-clubs filter) work for logged-in users too.
	api.Get("/home", discoveryHandler.Dashboard)
	api.Get("/clubs", middleware.AuthOptional(), clubHandler.ListClubs)
	api.Get("/clubs/:id", clubHandler.GetClub)
	api.Get("/clubs/:id/events", clubHandler.ListClubEvents)
	api.Get("/events", eventHandler.ListEvents)
	api.Get("/events/:id", middleware.AuthOptional(), eventHandler.GetEvent)

	// Protected routes
	api.Use(middleware.AuthRequired())
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetProfile)
		user.Put("/profile", userHandler.UpdateProfile)
		user.Get("/my-events", userHandler.MyEvents)

		api.Post("/clubs", clubHandler.CreateClub)
		api.Put("/clubs/:id", clubHandler.UpdateClub)
		api.Delete("/clubs/:id", clubHandler.DeleteClub)

		api.Post("/events", eventHandler.CreateEvent)
		api.Put("/events/:id", eventHandler.UpdateEvent)
		api.Delete("/events/:id", eventHandler.DeleteEvent)

		api.Post("/events/:id/rsvp", eventHandler.RSVP)
		api.Delete("/events/:id/rsvp", eventHandler.CancelRSVP)

		api.Post("/uploads", uploadHandler.UploadImage)
	}

	zapLogger.Info("starting server", zap.String("port", cfg.Port))
	log.Fatal(app.Listen(":" + cfg.Port))
}
