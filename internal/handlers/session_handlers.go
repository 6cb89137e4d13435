package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Quadmor009/Design-Gym/internal/models"
	"github.com/Quadmor009/Design-Gym/internal/quiz"
)

// HandleStartSession handles POST /v1/session
func (h *Handlers) HandleStartSession(c *fiber.Ctx) error {
	session, err := h.sessions.Create(h.bank, quiz.DefaultQuotas)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start session",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(sessionView(session))
}

// HandleGetSession handles GET /v1/session/:id
func (h *Handlers) HandleGetSession(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return sessionNotFound(c)
	}
	return c.JSON(sessionView(session))
}

// HandleAnswer handles POST /v1/session/:id/answer
func (h *Handlers) HandleAnswer(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return sessionNotFound(c)
	}

	var req struct {
		Side models.Side `json:"side"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Side != models.SideLeft && req.Side != models.SideRight {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "side must be \"left\" or \"right\"",
		})
	}

	if _, err := session.Select(req.Side); err != nil {
		return transitionError(c, err)
	}
	return c.JSON(sessionView(session))
}

// HandleAdvance handles POST /v1/session/:id/advance
func (h *Handlers) HandleAdvance(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return sessionNotFound(c)
	}
	if err := session.Advance(); err != nil {
		return transitionError(c, err)
	}
	return c.JSON(sessionView(session))
}

// HandleProceed handles POST /v1/session/:id/proceed
func (h *Handlers) HandleProceed(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return sessionNotFound(c)
	}
	if err := session.Proceed(); err != nil {
		return transitionError(c, err)
	}
	return c.JSON(sessionView(session))
}

// HandleRestart handles POST /v1/session/:id/restart
func (h *Handlers) HandleRestart(c *fiber.Ctx) error {
	session, err := h.sessions.Get(c.Params("id"))
	if err != nil {
		return sessionNotFound(c)
	}
	session.Restart()
	return c.JSON(sessionView(session))
}

func sessionNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Session not found",
	})
}

func transitionError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// sessionView renders the session for the client. The correct side and
// explanation stay hidden until the question has been answered.
func sessionView(s *quiz.Session) fiber.Map {
	view := fiber.Map{
		"sessionId":     s.ID,
		"phase":         s.Phase(),
		"index":         s.Index(),
		"questionCount": s.QuestionCount(),
		"coins":         s.Coins(),
	}

	switch s.Phase() {
	case quiz.PhaseAwaitingAnswer:
		view["question"] = publicQuestion(s.CurrentQuestion())
	case quiz.PhaseShowingExplanation:
		q := s.CurrentQuestion()
		view["question"] = publicQuestion(q)
		rec, _ := s.Answer(s.Index())
		view["selected"] = rec.Selected
		view["correct"] = rec.Correct
		view["correctAnswer"] = q.CorrectAnswer
		view["explanation"] = q.Explanation
		view["principlesTested"] = q.PrinciplesTested
	case quiz.PhaseLevelComplete:
		view["completedLevel"] = s.CompletedLevel()
	case quiz.PhaseSessionComplete:
		view["maxCoins"] = s.MaxCoins()
		view["accuracy"] = s.Accuracy()
		view["feedback"] = s.Feedback()
		view["timeTaken"] = s.TimeTaken()
	}
	return view
}

// publicQuestion strips the fields that would give the answer away.
func publicQuestion(q models.Question) fiber.Map {
	view := fiber.Map{
		"id":       q.ID,
		"level":    q.Level,
		"category": q.Category,
		"question": q.Question,
	}
	if q.PromptContext != "" {
		view["promptContext"] = q.PromptContext
	}
	switch q.Category {
	case models.CategoryFontIdentification:
		view["leftFont"] = q.LeftFont
		view["rightFont"] = q.RightFont
		view["sampleText"] = quiz.FoxQuote
	default:
		view["leftImage"] = q.LeftImage
		view["rightImage"] = q.RightImage
	}
	return view
}
