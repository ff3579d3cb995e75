package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/terraincognita07/solfege/internal/db"
	"github.com/terraincognita07/solfege/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName  = "solfege_auth"
	sessionTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	logger       *slog.Logger
	now          func() time.Time
	loginLimiter *attemptLimiter

	repositories        *db.Repositories
	accessPolicy        *services.AccessPolicy
	authService         *services.AuthService
	intakeService       *services.IntakeService
	groupingService     *services.GroupingService
	groupService        *services.GroupService
	availabilityService *services.AvailabilityService
	studentService      *services.StudentService
	userService         *services.UserService
	settingsService     *services.SettingsService
	analyticsService    *services.AnalyticsService
	exportService       *services.ExportService
	seedService         *services.SeedService
}

func NewHandler(database *gorm.DB, secret string, cookieSecure bool, logger *slog.Logger) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		logger:       logger,
		now:          time.Now,
		loginLimiter: newAttemptLimiter(loginFailureLimit, loginFailureWindow),
	}
	handler.ensureDependencies()
	return handler, nil
}
