package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/solfege/internal/db"
	"github.com/terraincognita07/solfege/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testStaffPassword = "Partition42"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "solfege-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler, err := NewHandler(database, "test-secret-key-with-enough-length", false, logger)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func createStaffUser(t *testing.T, database *gorm.DB, email string, role string, active bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testStaffPassword), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	stored := string(hash)

	user := models.User{
		Email:        email,
		FirstName:    "Staff",
		LastName:     role,
		Role:         role,
		IsActive:     active,
		PasswordHash: &stored,
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginAs(t *testing.T, app *fiber.App, database *gorm.DB, role string) string {
	t.Helper()

	email := "staff-" + role + "@example.com"
	createStaffUser(t, database, email, role, true)
	return loginAndExtractAuthCookie(t, app, email, testStaffPassword)
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}
	cookie := responseCookie(response.Cookies(), authCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("auth cookie is missing in login response")
	}
	return cookie.Name + "=" + cookie.Value
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		serialized, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(serialized)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func expectStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, body)
	}
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	payload := map[string]string{}
	decodeBody(t, response, &payload)
	return payload["error"]
}

func intakeBody(email string, instrument string, level string, slots ...map[string]any) map[string]any {
	if slots == nil {
		slots = []map[string]any{}
	}
	return map[string]any{
		"studentInfo": map[string]any{
			"email":      email,
			"firstName":  "Prénom",
			"lastName":   email,
			"instrument": instrument,
			"level":      level,
		},
		"availabilities": slots,
	}
}

func slot(day int, start string, end string) map[string]any {
	return map[string]any{"dayOfWeek": day, "startTime": start, "endTime": end}
}

func doJSONWithHeader(t *testing.T, app *fiber.App, method string, path string, header string, value string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, nil)
	request.Header.Set(header, value)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func doRaw(t *testing.T, app *fiber.App, method string, path string, contentType string, body io.Reader) *http.Response {
	t.Helper()

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", contentType)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}
