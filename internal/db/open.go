package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Driver string
	// Path is the SQLite database file.
	Path string
	// DSN is the PostgreSQL connection string.
	DSN string
}

func Open(config Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(config)
	if err != nil {
		return nil, err
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialector.Name(), err)
	}

	if err := migrate(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}
	return database, nil
}

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	return Open(Config{Driver: DriverSQLite, Path: dbPath})
}

func dialectorFor(config Config) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(config.Driver)) {
	case "", DriverSQLite:
		if strings.TrimSpace(config.Path) == "" {
			return nil, errors.New("sqlite path is required")
		}
		if err := os.MkdirAll(filepath.Dir(config.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", config.Path)
		return sqlite.Open(dsn), nil
	case DriverPostgres:
		if strings.TrimSpace(config.DSN) == "" {
			return nil, errors.New("postgres DSN is required")
		}
		return postgres.Open(config.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}
