package db

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	embeddedmigrations "github.com/terraincognita07/solfege/migrations"
	"gorm.io/gorm"
)

// Arbitrary key shared by every solfege process migrating the same postgres
// database.
const migrationAdvisoryLockKey = 7_460_221

var migrationNamePattern = regexp.MustCompile(`^(\d+)_[a-z0-9_]+\.sql$`)

// schemaMigration is one embedded SQL file. Version is the zero-padded file
// prefix as recorded in schema_migrations.
type schemaMigration struct {
	Version    string
	Name       string
	Statements []string
	order      int
}

func migrate(database *gorm.DB) error {
	if err := ensureSchemaMigrationsTable(database); err != nil {
		return err
	}

	migrations, err := loadSchemaMigrations(embeddedmigrations.Files)
	if err != nil {
		return err
	}
	for _, migration := range migrations {
		if err := applySchemaMigration(database, migration); err != nil {
			return err
		}
	}
	return nil
}

func ensureSchemaMigrationsTable(database *gorm.DB) error {
	err := database.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`).Error
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	return nil
}

// loadSchemaMigrations reads every *.sql file of files in version order.
// Files not named NNN_description.sql are an error rather than skipped.
func loadSchemaMigrations(files fs.FS) ([]schemaMigration, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	migrations := make([]schemaMigration, 0, len(names))
	byOrder := make(map[int]string, len(names))
	for _, name := range names {
		matches := migrationNamePattern.FindStringSubmatch(path.Base(name))
		if matches == nil {
			return nil, fmt.Errorf("migration %s: name must look like 001_description.sql", name)
		}
		order, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", name, err)
		}
		if previous, taken := byOrder[order]; taken {
			return nil, fmt.Errorf("migrations %s and %s share version %d", previous, name, order)
		}
		byOrder[order] = name

		body, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		statements := splitSQLStatements(string(body))
		if len(statements) == 0 {
			return nil, fmt.Errorf("migration %s is empty", name)
		}

		migrations = append(migrations, schemaMigration{
			Version:    matches[1],
			Name:       name,
			Statements: statements,
			order:      order,
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].order < migrations[j].order
	})
	return migrations, nil
}

// applySchemaMigration runs one file in its own transaction. The applied check
// happens inside the transaction so concurrent starters apply it once.
func applySchemaMigration(database *gorm.DB, migration schemaMigration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == DriverPostgres {
			if err := tx.Exec(`SELECT pg_advisory_xact_lock(?)`, migrationAdvisoryLockKey).Error; err != nil {
				return fmt.Errorf("lock migrations: %w", err)
			}
		}

		applied, err := migrationApplied(tx, migration.Version)
		if err != nil || applied {
			return err
		}

		for index, statement := range migration.Statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s, statement %d: %w", migration.Name, index+1, err)
			}
		}
		if err := tx.Exec(
			`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
			migration.Version, migration.Name,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.Name, err)
		}
		return nil
	})
}

func migrationApplied(tx *gorm.DB, version string) (bool, error) {
	var recorded string
	err := tx.Raw(`SELECT version FROM schema_migrations WHERE version = ?`, version).Row().Scan(&recorded)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		return false, fmt.Errorf("check migration %s: %w", version, err)
	}
}

// splitSQLStatements breaks a file on semicolons and drops blank pieces and
// lines that only hold "--" comments.
func splitSQLStatements(sqlText string) []string {
	statements := make([]string, 0)
	for _, piece := range strings.Split(sqlText, ";") {
		lines := make([]string, 0)
		for _, line := range strings.Split(piece, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		if statement := strings.TrimSpace(strings.Join(lines, "\n")); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
