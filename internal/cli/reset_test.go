package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/solfege/internal/db"
	"github.com/terraincognita07/solfege/internal/models"
	"github.com/terraincognita07/solfege/internal/services"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "solfege-cli-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		closeDatabase(database)
	})
	return database
}

func TestGenerateTemporaryPasswordMeetsPolicy(t *testing.T) {
	t.Parallel()

	short, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(short) != 8 {
		t.Fatalf("generateTemporaryPassword minimum len = %d, want 8", len(short))
	}

	password, err := generateTemporaryPassword(24)
	if err != nil {
		t.Fatalf("generateTemporaryPassword returned error: %v", err)
	}
	if len(password) != 24 {
		t.Fatalf("generateTemporaryPassword len = %d, want 24", len(password))
	}
	for _, char := range password {
		if !strings.ContainsRune(temporaryPasswordAlphabet, char) {
			t.Fatalf("password %q contains char %q outside alphabet", password, char)
		}
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		t.Fatalf("expected a policy-compliant password, got %v", err)
	}
}

func TestCreateSuperAdminThenResetPassword(t *testing.T) {
	database := openTestDatabase(t)
	var out bytes.Buffer

	if err := createSuperAdmin(database, &out, "direction@example.com", "Claire", "Direction", "Conserv4toire"); err != nil {
		t.Fatalf("createSuperAdmin() unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "direction@example.com") {
		t.Fatalf("expected confirmation output, got %q", out.String())
	}

	auth := services.NewAuthService(db.NewRepositories(database).Users)
	session, err := auth.Authenticate("direction@example.com", "Conserv4toire")
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}
	if session.Role != models.RoleSuperAdmin {
		t.Fatalf("expected SUPER_ADMIN, got %s", session.Role)
	}

	temporary, err := resetStaffPassword(database, "direction@example.com")
	if err != nil {
		t.Fatalf("resetStaffPassword() unexpected error: %v", err)
	}
	if _, err := auth.Authenticate("direction@example.com", temporary); err != nil {
		t.Fatalf("expected the temporary password to work, got %v", err)
	}
	if _, err := auth.Authenticate("direction@example.com", "Conserv4toire"); err == nil {
		t.Fatal("expected the old password to stop working")
	}
}

func TestAdminCommandsRefuseStudentAccounts(t *testing.T) {
	database := openTestDatabase(t)
	repositories := db.NewRepositories(database)
	if _, _, err := repositories.Users.SaveStudentWithAvailabilities(models.User{
		Email:      "eleve@example.com",
		FirstName:  "Eleve",
		LastName:   "Test",
		Instrument: "Violon",
		Level:      "3CD1",
	}, nil); err != nil {
		t.Fatalf("seed student: %v", err)
	}

	if _, err := resetStaffPassword(database, "eleve@example.com"); err == nil {
		t.Fatal("expected reset to refuse a student account")
	}
	if _, err := resetStaffPassword(database, "ghost@example.com"); err == nil {
		t.Fatal("expected reset to fail for an unknown email")
	}
	if err := createSuperAdmin(database, &bytes.Buffer{}, "eleve@example.com", "", "", "Conserv4toire"); err == nil {
		t.Fatal("expected promotion of a student to fail")
	}
}
