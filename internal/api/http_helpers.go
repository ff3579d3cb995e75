package api

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/solfege/internal/services"
)

const contextSessionKey = "session"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseBody(c *fiber.Ctx, target any) error {
	if len(strings.TrimSpace(string(c.Body()))) == 0 {
		return fiber.ErrBadRequest
	}
	return c.BodyParser(target)
}

func currentSession(c *fiber.Ctx) (services.Session, bool) {
	session, ok := c.Locals(contextSessionKey).(services.Session)
	return session, ok
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
