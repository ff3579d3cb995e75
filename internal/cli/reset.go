package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/solfege/internal/db"
	"github.com/terraincognita07/solfege/internal/services"
	"github.com/terraincognita07/solfege/internal/security"
	"gorm.io/gorm"
)

const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// RunResetPasswordCommand replaces the password of a staff account with a
// generated one and prints it once.
func RunResetPasswordCommand(config db.Config, email string) error {
	database, err := db.Open(config)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	temporaryPassword, err := resetStaffPassword(database, email)
	if err != nil {
		return err
	}

	fmt.Println("Password reset successful")
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	return nil
}

func resetStaffPassword(database *gorm.DB, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.New("email is required")
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return "", fmt.Errorf("generate temporary password: %w", err)
	}

	users := services.NewUserService(db.NewRepositories(database).Users)
	if err := users.SetPasswordByEmail(email, temporaryPassword); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return "", fmt.Errorf("staff account %s not found", email)
		}
		return "", fmt.Errorf("update password: %w", err)
	}
	return temporaryPassword, nil
}

// RunCreateAdminCommand creates or promotes a SUPER_ADMIN account, reading the
// password from the terminal without echo.
func RunCreateAdminCommand(config db.Config, email string, firstName string, lastName string) error {
	password, err := promptPassword(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	database, err := db.Open(config)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	return createSuperAdmin(database, os.Stdout, email, firstName, lastName, password)
}

func createSuperAdmin(database *gorm.DB, out io.Writer, email string, firstName string, lastName string, password string) error {
	users := services.NewUserService(db.NewRepositories(database).Users)
	user, err := users.EnsureSuperAdmin(email, firstName, lastName, password)
	if errors.Is(err, services.ErrConflict) {
		return fmt.Errorf("%s belongs to a student and cannot become an administrator", strings.TrimSpace(email))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Super admin ready: %s (%s)\n", user.Email, user.ID)
	return nil
}

// generateTemporaryPassword draws from an alphabet without look-alike
// characters until the result passes the staff password policy.
func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	for {
		candidate, err := security.RandomString(length, temporaryPasswordAlphabet)
		if err != nil {
			return "", err
		}
		if services.ValidatePasswordStrength(candidate) == nil {
			return candidate, nil
		}
	}
}

func closeDatabase(database *gorm.DB) {
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
