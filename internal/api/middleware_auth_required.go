package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/solfege/internal/services"
	"gorm.io/gorm"
)

// AuthRequired resolves the session token and reloads its account, so a
// disabled or demoted user loses access on the next request.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	claims, ok := handler.sessionFromRequest(c)
	if !ok {
		return handler.respondError(c, services.ErrUnauthenticated, "")
	}

	user, err := handler.repositories.Users.FindByID(claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return handler.respondError(c, services.ErrUnauthenticated, "")
	}
	if err != nil {
		return handler.respondError(c, err, "failed to load session")
	}
	if !user.IsActive || user.IsStudent() {
		handler.clearAuthCookie(c)
		return handler.respondError(c, services.ErrUnauthenticated, "")
	}

	c.Locals(contextSessionKey, services.Session{UserID: user.ID, Email: user.Email, Role: user.Role})
	return c.Next()
}

// RequireCapability gates a route on the session role. It must run after
// AuthRequired and never touches storage.
func (handler *Handler) RequireCapability(capability services.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var session *services.Session
		if current, ok := currentSession(c); ok {
			session = &current
		}
		if err := handler.accessPolicy.Authorize(session, capability); err != nil {
			return handler.respondError(c, err, "")
		}
		return c.Next()
	}
}
