package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/solfege/internal/db"
)

const minSecretKeyLength = 32

var placeholderSecrets = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type appConfig struct {
	Port         string
	SecretKey    string
	Database     db.Config
	CookieSecure bool
	LogLevel     slog.Level
	Location     *time.Location
}

func loadConfig() (appConfig, error) {
	secretKey, err := resolveSecretKey()
	if err != nil {
		return appConfig{}, err
	}
	port, err := resolvePort()
	if err != nil {
		return appConfig{}, err
	}
	database, err := resolveDatabaseConfig()
	if err != nil {
		return appConfig{}, err
	}
	cookieSecure, err := resolveBool("COOKIE_SECURE", false)
	if err != nil {
		return appConfig{}, err
	}
	level, err := resolveLogLevel()
	if err != nil {
		return appConfig{}, err
	}

	return appConfig{
		Port:         port,
		SecretKey:    secretKey,
		Database:     database,
		CookieSecure: cookieSecure,
		LogLevel:     level,
		Location:     resolveLocation(getEnv("TZ", "UTC")),
	}, nil
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, placeholder := placeholderSecrets[strings.ToLower(secret)]; placeholder {
		return "", errors.New("SECRET_KEY still holds the example placeholder")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT must be between 1 and 65535, got %q", raw)
	}
	return strconv.Itoa(port), nil
}

// resolveDatabaseConfig picks postgres when DATABASE_URL is set and no driver
// is named, sqlite otherwise.
func resolveDatabaseConfig() (db.Config, error) {
	dsn := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if driver == "" {
		driver = db.DriverSQLite
		if dsn != "" {
			driver = db.DriverPostgres
		}
	}

	switch driver {
	case db.DriverSQLite:
		return db.Config{Driver: driver, Path: getEnv("DB_PATH", filepath.Join("data", "solfege.db"))}, nil
	case db.DriverPostgres:
		if dsn == "" {
			return db.Config{}, errors.New("DATABASE_URL is required for the postgres driver")
		}
		return db.Config{Driver: driver, DSN: dsn}, nil
	default:
		return db.Config{}, fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", driver)
	}
}

func resolveBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return value, nil
}

func resolveLogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func resolveLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("invalid TZ, falling back to UTC", "tz", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
