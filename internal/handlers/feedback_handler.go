package handlers

import (
	"vegfeedback/internal/middleware"
	"vegfeedback/internal/models"
	"vegfeedback/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FeedbackHandler handles HTTP requests for votes and statistics.
type FeedbackHandler struct {
	service  *services.FeedbackService
	authGate fiber.Handler
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(service *services.FeedbackService, authGate fiber.Handler) *FeedbackHandler {
	return &FeedbackHandler{
		service:  service,
		authGate: authGate,
	}
}

// RegisterRoutes registers the feedback routes with the Fiber app.
// Statistics are public; voting requires a signed-in user.
func (h *FeedbackHandler) RegisterRoutes(router fiber.Router) {
	feedbackRoutes := router.Group("/feedback")
	feedbackRoutes.Get("/stats", h.HandleGetStats)
	feedbackRoutes.Get("/stats/summary", h.HandleGetStatsSummary)
	feedbackRoutes.Post("/", h.authGate, h.HandleCreateFeedback)
	feedbackRoutes.Post("/batch", h.authGate, h.HandleSubmitSession)
	feedbackRoutes.Get("/mine", h.authGate, h.HandleGetMine)
}

// HandleCreateFeedback stores one vote for the signed-in user.
func (h *FeedbackHandler) HandleCreateFeedback(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var input models.FeedbackInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, err)
	}

	feedback, err := h.service.SubmitFeedback(c.UserContext(), user.ID, input)
	if err != nil {
		return respondError(c, err, "Error creating feedback")
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// HandleSubmitSession stores a complete submission session.
func (h *FeedbackHandler) HandleSubmitSession(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var input models.BatchFeedbackInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, err)
	}

	rows, err := h.service.SubmitSession(c.UserContext(), user.ID, input)
	if err != nil {
		return respondError(c, err, "Error creating feedback")
	}
	return c.Status(fiber.StatusCreated).JSON(rows)
}

// HandleGetMine lists the votes of the signed-in user.
func (h *FeedbackHandler) HandleGetMine(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	rows, err := h.service.GetUserFeedback(c.UserContext(), user.ID)
	if err != nil {
		return respondError(c, err, "Error fetching feedback")
	}
	return c.JSON(rows)
}

// HandleGetStats returns per-vegetable statistics. A non-empty mealType
// filters the result; unknown values yield an empty array.
func (h *FeedbackHandler) HandleGetStats(c *fiber.Ctx) error {
	var (
		stats []models.FeedbackStats
		err   error
	)
	if mealType := mealTypeQuery(c); mealType != "" {
		stats, err = h.service.GetFeedbackStatsByMealType(c.UserContext(), mealType)
	} else {
		stats, err = h.service.GetFeedbackStats(c.UserContext())
	}
	if err != nil {
		return respondError(c, err, "Error fetching feedback stats")
	}
	return c.JSON(stats)
}

// HandleGetStatsSummary returns the dashboard digest.
func (h *FeedbackHandler) HandleGetStatsSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetStatsSummary(c.UserContext(), mealTypeQuery(c))
	if err != nil {
		return respondError(c, err, "Error fetching feedback stats")
	}
	return c.JSON(summary)
}
