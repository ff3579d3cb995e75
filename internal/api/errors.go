package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/solfege/internal/services"
)

// respondError maps a service error onto its HTTP status. Unclassified errors
// are logged and answered with fallback so storage details stay server-side.
func (handler *Handler) respondError(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return apiError(c, fiber.StatusBadRequest, validationErr.Error())
	case errors.Is(err, services.ErrValidation):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthenticated):
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	case errors.Is(err, services.ErrForbidden):
		return apiError(c, fiber.StatusForbidden, "insufficient role")
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrConflict):
		return apiError(c, fiber.StatusConflict, err.Error())
	}

	handler.logger.Error("request failed",
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return apiError(c, fiber.StatusInternalServerError, fallback)
}
