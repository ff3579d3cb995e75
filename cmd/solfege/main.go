package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/solfege/internal/api"
	"github.com/terraincognita07/solfege/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env", "error", err)
	}

	if len(os.Args) > 1 && os.Args[1] != "serve" {
		if err := runCommand(os.Args[1:]); err != nil {
			if !errors.Is(err, errUsage) {
				slog.Error("command failed", "command", os.Args[1], "error", err)
			}
			os.Exit(1)
		}
		return
	}

	config, err := loadConfig()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	if err := serve(config); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Solfege",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)
	return app
}

func serve(config appConfig) error {
	time.Local = config.Location
	log := newLogger(config.LogLevel)
	slog.SetDefault(log)

	database, err := db.Open(config.Database)
	if err != nil {
		return err
	}

	handler, err := api.NewHandler(database, config.SecretKey, config.CookieSecure, log)
	if err != nil {
		return err
	}
	app := newApp(handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	log.Info("solfege listening",
		"port", config.Port,
		"driver", config.Database.Driver,
		"tz", config.Location.String(),
	)
	return app.Listen(":" + config.Port)
}
