package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetAnalytics(c *fiber.Ctx) error {
	analytics, err := handler.analyticsService.GetAnalytics()
	if err != nil {
		return handler.respondError(c, err, "failed to compute analytics")
	}
	return c.JSON(analytics)
}

func (handler *Handler) SeedTestData(c *fiber.Ctx) error {
	result, err := handler.seedService.Seed()
	if err != nil {
		return handler.respondError(c, err, "Erreur lors de la création des données de test")
	}

	handler.logger.Info("test data seeded", "students", result.Students, "availabilities", result.Availabilities)
	return c.JSON(fiber.Map{
		"message":        "Données de test créées avec succès",
		"students":       result.Students,
		"availabilities": result.Availabilities,
	})
}

func (handler *Handler) ClearTestData(c *fiber.Ctx) error {
	deleted, err := handler.seedService.Clear()
	if err != nil {
		return handler.respondError(c, err, "Erreur lors de la suppression des données de test")
	}

	handler.logger.Info("test data cleared", "students", deleted)
	return c.JSON(fiber.Map{
		"message": "Données de test supprimées avec succès",
		"deleted": deleted,
	})
}
