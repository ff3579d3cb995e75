package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/solfege/internal/services"
)

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := clientKey(c)
	if handler.loginLimiter.blocked(limiterKey, handler.now()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := loginInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := handler.authService.Authenticate(input.Email, input.Password)
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid), errors.Is(err, services.ErrAuthStudentLogin):
		handler.loginLimiter.recordFailure(limiterKey, handler.now())
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrAuthAccountDisabled):
		return apiError(c, fiber.StatusForbidden, "account disabled")
	case err != nil:
		return handler.respondError(c, err, "failed to sign in")
	}
	handler.loginLimiter.clear(limiterKey)

	token, expiresAt, err := handler.buildSessionToken(session)
	if err != nil {
		return handler.respondError(c, err, "failed to create session")
	}
	handler.setAuthCookie(c, token, expiresAt)

	handler.logger.Info("staff login", "user_id", session.UserID, "role", session.Role)
	return c.JSON(fiber.Map{
		"ok":    true,
		"token": token,
		"user":  session,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CurrentSession(c *fiber.Ctx) error {
	session, ok := currentSession(c)
	if !ok {
		return handler.respondError(c, services.ErrUnauthenticated, "")
	}
	return c.JSON(session)
}
