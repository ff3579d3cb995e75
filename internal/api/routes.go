package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/solfege/internal/services"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	can := handler.RequireCapability

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/session", handler.AuthRequired, handler.CurrentSession)

	api.Post("/availability", handler.SubmitAvailability)

	settings := api.Group("/settings")
	settings.Get("", handler.GetSettings)
	settings.Post("", handler.AuthRequired, can(services.CapabilityManageSettings), handler.PostSettings)
	settings.Put("/:name", handler.AuthRequired, can(services.CapabilityManageSettings), handler.ReplaceSetting)

	availabilities := api.Group("/availabilities", handler.AuthRequired)
	availabilities.Get("", can(services.CapabilityReadAvailabilities), handler.ListAvailabilities)
	availabilities.Get("/export", can(services.CapabilityExportAvailabilities), handler.ExportAvailabilities)

	suggestions := api.Group("/suggestions", handler.AuthRequired)
	suggestions.Post("", can(services.CapabilitySuggestGroups), handler.SuggestGroups)
	suggestions.Post("/accept", can(services.CapabilityCreateGroups), handler.AcceptSuggestion)

	groups := api.Group("/groups", handler.AuthRequired)
	groups.Get("", can(services.CapabilityReadGroups), handler.ListGroups)
	groups.Post("", can(services.CapabilityCreateGroups), handler.CreateGroup)

	students := api.Group("/students", handler.AuthRequired)
	students.Get("", can(services.CapabilityReadStudents), handler.ListStudents)
	students.Patch("/:id", can(services.CapabilityEditStudents), handler.UpdateStudent)

	users := api.Group("/users", handler.AuthRequired, can(services.CapabilityManageUsers))
	users.Get("", handler.ListUsers)
	users.Post("/create", handler.CreateUser)
	users.Patch("/:id", handler.UpdateUser)

	api.Get("/analytics", handler.AuthRequired, can(services.CapabilityViewAnalytics), handler.GetAnalytics)

	seed := api.Group("/seed", handler.AuthRequired, can(services.CapabilityManageTestData))
	seed.Post("", handler.SeedTestData)
	seed.Post("/clear", handler.ClearTestData)

	app.Use(handler.NotFound)
}
