package middleware

import (
	"errors"
	"strings"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/models"
	"vegfeedback/internal/services"
	"vegfeedback/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Keys used in the session and in fiber.Ctx locals.
const (
	SessionUserKey = "user_id"
	localsUserKey  = "user"
)

// AuthRequired is a Fiber middleware that resolves the caller from the
// session cookie, falling back to an "Authorization: Bearer <token>"
// header. The user is stored in the context for subsequent handlers.
func AuthRequired(authService *services.AuthService, sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := sessionUserID(c, sessions)
		if !ok {
			userID, ok = bearerUserID(c, authService)
		}
		if !ok {
			return unauthorized(c)
		}

		user, err := authService.CurrentUser(c.UserContext(), userID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUnauthenticated) {
				logger.Error().Err(err).Uint("user_id", userID).Msg("failed to load authenticated user")
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Internal server error",
				})
			}
			return unauthorized(c)
		}

		c.Locals(localsUserKey, user)

		// Continue to the next handler
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(localsUserKey).(*models.User)
	return user, ok && user != nil
}

func sessionUserID(c *fiber.Ctx, sessions *session.Store) (uint, bool) {
	if sessions == nil {
		return 0, false
	}
	sess, err := sessions.Get(c)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load session")
		return 0, false
	}
	id, ok := sess.Get(SessionUserKey).(uint)
	return id, ok && id > 0
}

func bearerUserID(c *fiber.Ctx, authService *services.AuthService) (uint, bool) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return 0, false
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && strings.EqualFold(parts[0], "Bearer")) {
		return 0, false
	}

	id, err := authService.ValidateToken(strings.TrimSpace(parts[1]))
	if err != nil {
		logger.Debug().Err(err).Msg("JWT validation failed")
		return 0, false
	}
	return id, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Unauthorized",
	})
}
