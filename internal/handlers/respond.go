package handlers

import (
	"errors"
	"strconv"

	"vegfeedback/internal/apperrors"
	"vegfeedback/internal/models"
	"vegfeedback/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors to a status code and a {message} body.
// Unexpected errors are logged and answered with fallback.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrConflict):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthenticated):
		status = fiber.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		status = fiber.StatusNotFound
	}

	if status == fiber.StatusInternalServerError {
		logger.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg(fallback)
		return c.Status(status).JSON(fiber.Map{
			"message": fallback,
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": apperrors.Message(err, fallback),
	})
}

func invalidBody(c *fiber.Ctx, err error) error {
	logger.Debug().Err(err).Str("path", c.Path()).Msg("error parsing request body")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
	})
}

func mealTypeQuery(c *fiber.Ctx) models.MealType {
	return models.MealType(c.Query("mealType"))
}

func idParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("Invalid id")
	}
	return uint(id), nil
}
