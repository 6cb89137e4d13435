package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Quadmor009/Design-Gym/internal/database"
	"github.com/Quadmor009/Design-Gym/internal/models"
	"github.com/Quadmor009/Design-Gym/internal/quiz"
	"github.com/Quadmor009/Design-Gym/internal/service"
)

// Handlers contains the HTTP handlers for the training API.
type Handlers struct {
	leaderboardService *service.LeaderboardService
	streakService      *service.StreakService
	profileService     *service.ProfileService
	bank               *quiz.Bank
	sessions           *quiz.Store
}

// NewHandlers creates a new handlers instance.
func NewHandlers(
	leaderboardService *service.LeaderboardService,
	streakService *service.StreakService,
	profileService *service.ProfileService,
	bank *quiz.Bank,
	sessions *quiz.Store,
) *Handlers {
	return &Handlers{
		leaderboardService: leaderboardService,
		streakService:      streakService,
		profileService:     profileService,
		bank:               bank,
		sessions:           sessions,
	}
}

// HandleGetLeaderboard handles GET /v1/leaderboard?level=
func (h *Handlers) HandleGetLeaderboard(c *fiber.Ctx) error {
	level := models.Level(c.Query("level", string(models.LevelAll)))

	entries, err := h.leaderboardService.List(level)
	if err != nil {
		return h.storageError(c, "Failed to get leaderboard", err)
	}
	return c.JSON(entries)
}

// HandleSubmitScore handles POST /v1/leaderboard
func (h *Handlers) HandleSubmitScore(c *fiber.Ctx) error {
	var sub service.Submission
	if err := c.BodyParser(&sub); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// The user link is optional: a signed-in submission gets one, an
	// anonymous one still saves.
	var userID *string
	if id, ok := AuthedUserID(c); ok {
		userID = &id
	}

	entry, err := h.leaderboardService.Submit(&sub, userID)
	if err != nil {
		return h.storageError(c, "Failed to save score", err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// HandleGetStreak handles GET /v1/streak (authenticated)
func (h *Handlers) HandleGetStreak(c *fiber.Ctx) error {
	userID, _ := AuthedUserID(c)

	rec, err := h.streakService.GetStreak(userID)
	if err != nil {
		return h.storageError(c, "Failed to fetch streak", err)
	}
	var lastDate any
	if rec.LastPracticeDate != "" {
		lastDate = rec.LastPracticeDate
	}
	return c.JSON(fiber.Map{
		"currentStreak":    rec.CurrentStreak,
		"lastPracticeDate": lastDate,
	})
}

// HandlePostStreak handles POST /v1/streak (authenticated)
func (h *Handlers) HandlePostStreak(c *fiber.Ctx) error {
	userID, _ := AuthedUserID(c)

	count, err := h.streakService.RecordPractice(userID)
	if err != nil {
		return h.storageError(c, "Failed to record streak", err)
	}
	return c.JSON(fiber.Map{
		"currentStreak": count,
	})
}

// HandleGetProfile handles GET /v1/profile (authenticated)
func (h *Handlers) HandleGetProfile(c *fiber.Ctx) error {
	userID, _ := AuthedUserID(c)
	// GetProfile degrades to zeroed stats internally, so this never
	// fails once authentication has passed.
	return c.JSON(h.profileService.GetProfile(userID, AuthedUser(c)))
}

// storageError maps the error taxonomy onto HTTP statuses. Internal
// diagnostics go to the log; the client gets a generic message.
func (h *Handlers) storageError(c *fiber.Ctx, msg string, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": vErr.Message,
		})
	}
	if errors.Is(err, database.ErrNotConfigured) {
		log.Printf("%s: %v", msg, err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "Database not configured",
			"message": "DATABASE_URL environment variable is missing",
		})
	}
	log.Printf("%s: %v", msg, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
	})
}
