package api

import (
	"github.com/terraincognita07/solfege/internal/db"
	"github.com/terraincognita07/solfege/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	repositories := handler.repositories

	if handler.accessPolicy == nil {
		handler.accessPolicy = services.NewAccessPolicy()
	}
	if handler.authService == nil {
		handler.authService = services.NewAuthService(repositories.Users)
	}
	if handler.settingsService == nil {
		handler.settingsService = services.NewSettingsService(repositories.ConfigurationLists)
	}
	if handler.intakeService == nil {
		handler.intakeService = services.NewIntakeService(repositories.Users, handler.settingsService)
	}
	if handler.groupingService == nil {
		handler.groupingService = services.NewGroupingService(repositories.Availabilities, repositories.Groups)
	}
	if handler.groupService == nil {
		handler.groupService = services.NewGroupService(repositories.Groups)
	}
	if handler.studentService == nil {
		handler.studentService = services.NewStudentService(repositories.Users, handler.settingsService)
	}
	if handler.userService == nil {
		handler.userService = services.NewUserService(repositories.Users)
	}
	if handler.analyticsService == nil {
		handler.analyticsService = services.NewAnalyticsService(repositories.Users, repositories.Groups, repositories.Availabilities)
	}
	if handler.availabilityService == nil {
		handler.availabilityService = services.NewAvailabilityService(repositories.Availabilities)
	}
	if handler.exportService == nil {
		handler.exportService = services.NewExportService(repositories.Availabilities)
	}
	if handler.seedService == nil {
		handler.seedService = services.NewSeedService(repositories.Users)
	}
}
