package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/solfege/internal/services"
)

type intakeRequest struct {
	StudentInfo    services.StudentInfo `json:"studentInfo"`
	Availabilities []services.TimeSlot  `json:"availabilities"`
}

func (handler *Handler) SubmitAvailability(c *fiber.Ctx) error {
	input := intakeRequest{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := handler.intakeService.SubmitAvailability(input.StudentInfo, input.Availabilities)
	if err != nil {
		return handler.respondError(c, err, "Erreur lors de l'enregistrement des informations")
	}

	return c.JSON(fiber.Map{
		"message":             "Informations enregistrées avec succès",
		"user":                result.User,
		"availabilitiesCount": result.AvailabilitiesCount,
	})
}
