package handlers

import (
	"vegfeedback/internal/middleware"
	"vegfeedback/internal/models"
	"vegfeedback/internal/services"
	"vegfeedback/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	sessions    *session.Store
	authGate    fiber.Handler
}

// NewAuthHandler creates a new AuthHandler. authGate protects the routes
// that need a signed-in user.
func NewAuthHandler(authService *services.AuthService, sessions *session.Store, authGate fiber.Handler) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		authGate:    authGate,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/token", h.HandleToken)
	authRoutes.Get("/user", h.authGate, h.HandleUser)
	authRoutes.Post("/logout", h.authGate, h.HandleLogout)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var input models.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, err)
	}

	user, err := h.authService.Register(c.UserContext(), input)
	if err != nil {
		return respondError(c, err, "Error creating user")
	}

	logger.Info().Uint("user_id", user.ID).Msg("user registered")
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin checks credentials and starts a cookie session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, err)
	}

	user, err := h.authService.Authenticate(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return respondError(c, err, "Authentication failed")
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return respondError(c, err, "Error logging in")
	}
	// A fresh session id on every login.
	if err := sess.Regenerate(); err != nil {
		return respondError(c, err, "Error logging in")
	}
	sess.Set(middleware.SessionUserKey, user.ID)
	if err := sess.Save(); err != nil {
		return respondError(c, err, "Error logging in")
	}

	return c.JSON(user)
}

// HandleToken checks credentials and issues a bearer token.
func (h *AuthHandler) HandleToken(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return invalidBody(c, err)
	}

	user, err := h.authService.Authenticate(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return respondError(c, err, "Authentication failed")
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		return respondError(c, err, "Error issuing token")
	}
	return c.JSON(fiber.Map{
		"token": token,
	})
}

// HandleUser returns the signed-in user.
func (h *AuthHandler) HandleUser(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authenticated",
		})
	}
	return c.JSON(user)
}

// HandleLogout ends the cookie session.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return respondError(c, err, "Error logging out")
	}
	if err := sess.Destroy(); err != nil {
		return respondError(c, err, "Error logging out")
	}
	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}
