package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/Quadmor009/Design-Gym/internal/cache"
	"github.com/Quadmor009/Design-Gym/internal/database"
	"github.com/Quadmor009/Design-Gym/internal/handlers"
	"github.com/Quadmor009/Design-Gym/internal/quiz"
	"github.com/Quadmor009/Design-Gym/internal/repository"
	"github.com/Quadmor009/Design-Gym/internal/service"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("warning: Error loading .env file (this is fine in production): %v", err)
		}
	}

	// 1. External connections. The SQL pool is created lazily on first
	// use; a missing DATABASE_URL surfaces per request, never at boot.
	gateway := database.NewGateway()
	redisClient := database.NewRedisClient()

	// 2. Repositories, services, and handlers
	leaderboardRepo := repository.NewLeaderboardRepository(gateway)
	streakRepo := repository.NewStreakRepository(gateway)
	profileRepo := repository.NewProfileRepository(gateway)
	leaderboardCache := cache.NewLeaderboardCache(redisClient)

	leaderboardService := service.NewLeaderboardService(leaderboardRepo, leaderboardCache)
	streakService := service.NewStreakService(streakRepo)
	profileService := service.NewProfileService(profileRepo, streakRepo)

	bank := quiz.SeededBank()
	sessions := quiz.NewStore()

	h := handlers.NewHandlers(leaderboardService, streakService, profileService, bank, sessions)

	// 3. Fiber instance
	app := fiber.New(fiber.Config{
		AppName: "DesignGym_v1",
	})

	// 4. Middleware for better observability
	app.Use(logger.New())  // Logs every request to console
	app.Use(recover.New()) // Prevents the app from crashing on panics
	app.Use(cors.New())

	// 5. Route definitions
	leaderboard := app.Group("/v1/leaderboard")
	leaderboard.Get("/", h.HandleGetLeaderboard)
	leaderboard.Post("/", handlers.OptionalAuth, writeLimiter(), h.HandleSubmitScore)

	streak := app.Group("/v1/streak", handlers.RequireAuth)
	streak.Get("/", h.HandleGetStreak)
	streak.Post("/", writeLimiter(), h.HandlePostStreak)

	app.Get("/v1/profile", handlers.RequireAuth, h.HandleGetProfile)

	session := app.Group("/v1/session")
	session.Post("/", h.HandleStartSession)
	session.Get("/:id", h.HandleGetSession)
	session.Post("/:id/answer", h.HandleAnswer)
	session.Post("/:id/advance", h.HandleAdvance)
	session.Post("/:id/proceed", h.HandleProceed)
	session.Post("/:id/restart", h.HandleRestart)

	// 6. Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Fatal(app.Listen(":" + port))
}

// writeLimiter limits write routes per user (or IP for anonymous callers).
func writeLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        30,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return handlers.RateLimitKey(c)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
