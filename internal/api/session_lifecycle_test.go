package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/terraincognita07/solfege/internal/models"
)

func TestPasswordWithOuterWhitespaceLogsInAsCreated(t *testing.T) {
	app, database := newTestApp(t)
	superAdmin := loginAs(t, app, database, models.RoleSuperAdmin)

	create := doJSON(t, app, http.MethodPost, "/api/users/create", superAdmin, map[string]string{
		"email":    "spaced@example.com",
		"password": "Partition42 ",
		"role":     models.RoleTeacher,
	})
	expectStatus(t, create, http.StatusCreated)
	create.Body.Close()

	loginAndExtractAuthCookie(t, app, "spaced@example.com", "Partition42 ")

	trimmed := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "spaced@example.com",
		"password": "Partition42",
	})
	expectStatus(t, trimmed, http.StatusUnauthorized)
	trimmed.Body.Close()
}

func TestDemotedOrDisabledAccountLosesOpenSession(t *testing.T) {
	app, database := newTestApp(t)
	owner := loginAs(t, app, database, models.RoleSuperAdmin)

	other := createStaffUser(t, database, "second@example.com", models.RoleSuperAdmin, true)
	otherCookie := loginAndExtractAuthCookie(t, app, "second@example.com", testStaffPassword)

	allowed := doJSON(t, app, http.MethodGet, "/api/analytics", otherCookie, nil)
	expectStatus(t, allowed, http.StatusOK)
	allowed.Body.Close()

	demote := doJSON(t, app, http.MethodPatch, "/api/users/"+other.ID, owner, map[string]any{"role": models.RoleTeacher})
	expectStatus(t, demote, http.StatusOK)
	demote.Body.Close()

	analytics := doJSON(t, app, http.MethodGet, "/api/analytics", otherCookie, nil)
	expectStatus(t, analytics, http.StatusForbidden)
	analytics.Body.Close()

	session := doJSON(t, app, http.MethodGet, "/api/auth/session", otherCookie, nil)
	expectStatus(t, session, http.StatusOK)
	claims := map[string]string{}
	decodeBody(t, session, &claims)
	if claims["role"] != models.RoleTeacher {
		t.Fatalf("expected the session to carry the stored role, got %q", claims["role"])
	}

	disable := doJSON(t, app, http.MethodPatch, "/api/users/"+other.ID, owner, map[string]any{"isActive": false})
	expectStatus(t, disable, http.StatusOK)
	disable.Body.Close()

	groups := doJSON(t, app, http.MethodGet, "/api/groups", otherCookie, nil)
	expectStatus(t, groups, http.StatusUnauthorized)
	groups.Body.Close()
}

func TestStaleCookieFallsBackToBearerToken(t *testing.T) {
	app, database := newTestApp(t)
	createStaffUser(t, database, "prof@example.com", models.RoleTeacher, true)

	login := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "prof@example.com",
		"password": testStaffPassword,
	})
	expectStatus(t, login, http.StatusOK)
	payload := struct {
		Token string `json:"token"`
	}{}
	decodeBody(t, login, &payload)

	request := httptest.NewRequest(http.MethodGet, "/api/groups", nil)
	request.Header.Set("Cookie", authCookieName+"=expired-or-garbage")
	request.Header.Set("Authorization", "Bearer "+payload.Token)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("groups request failed: %v", err)
	}
	expectStatus(t, response, http.StatusOK)
	response.Body.Close()

	onlyStale := doJSON(t, app, http.MethodGet, "/api/groups", authCookieName+"=expired-or-garbage", nil)
	expectStatus(t, onlyStale, http.StatusUnauthorized)
	onlyStale.Body.Close()
}
