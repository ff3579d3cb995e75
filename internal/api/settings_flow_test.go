package api

import (
	"net/http"
	"testing"

	"github.com/terraincognita07/solfege/internal/models"
)

func TestSettingsArePublicAndDefaultToBuiltInLists(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodGet, "/api/settings", "", nil)
	expectStatus(t, response, http.StatusOK)
	lists := map[string]models.ConfigurationList{}
	decodeBody(t, response, &lists)

	if !lists[models.ListInstruments].Contains("Violon") {
		t.Fatalf("expected default instruments, got %+v", lists[models.ListInstruments])
	}
	if len(lists[models.ListLevels].Entries) == 0 || lists[models.ListLevels].Entries[0].Description == "" {
		t.Fatalf("expected levels with descriptions, got %+v", lists[models.ListLevels])
	}
}

func TestAdminReplacesListsAndIntakeFollows(t *testing.T) {
	app, database := newTestApp(t)
	admin := loginAs(t, app, database, models.RoleAdmin)

	update := doJSON(t, app, http.MethodPost, "/api/settings", admin, map[string]any{
		"type": "teachers",
		"data": []string{"A. NOUVEAU"},
	})
	expectStatus(t, update, http.StatusOK)
	update.Body.Close()

	levels := doJSON(t, app, http.MethodPut, "/api/settings/levels", admin, map[string]any{
		"entries": []map[string]string{{"code": "DEB", "description": "Débutant"}},
	})
	expectStatus(t, levels, http.StatusOK)
	levels.Body.Close()

	body := intakeBody("kid@example.com", "Violon", "DEB")
	body["studentInfo"].(map[string]any)["teacher"] = "J. MEUNIER"
	rejected := doJSON(t, app, http.MethodPost, "/api/availability", "", body)
	expectStatus(t, rejected, http.StatusBadRequest)
	if message := readAPIError(t, rejected); message != "studentInfo.teacher must be one of the configured teachers" {
		t.Fatalf("unexpected error %q", message)
	}

	body["studentInfo"].(map[string]any)["teacher"] = "A. NOUVEAU"
	accepted := doJSON(t, app, http.MethodPost, "/api/availability", "", body)
	expectStatus(t, accepted, http.StatusOK)
	accepted.Body.Close()
}

func TestSettingsValidation(t *testing.T) {
	app, database := newTestApp(t)
	admin := loginAs(t, app, database, models.RoleAdmin)

	cases := []struct {
		name string
		body map[string]any
	}{
		{name: "unknown list", body: map[string]any{"type": "colors", "data": []string{"red"}}},
		{name: "level without description", body: map[string]any{"type": "levels", "data": []string{"3CD1"}}},
		{name: "missing data", body: map[string]any{"type": "teachers"}},
		{name: "wrong data shape", body: map[string]any{"type": "teachers", "data": "J. MEUNIER"}},
	}
	for _, testCase := range cases {
		response := doJSON(t, app, http.MethodPost, "/api/settings", admin, testCase.body)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", testCase.name, response.StatusCode)
		}
		response.Body.Close()
	}
}
