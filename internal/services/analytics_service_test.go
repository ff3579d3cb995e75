package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/terraincognita07/solfege/internal/models"
)

type stubAnalyticsUsers struct {
	total       int64
	active      int64
	byRole      map[string]int64
	instruments map[string]int64
	levels      map[string]int64
	recent      []models.User
	err         error
	recentLimit int
}

func (stub *stubAnalyticsUsers) CountAll() (int64, error)    { return stub.total, stub.err }
func (stub *stubAnalyticsUsers) CountActive() (int64, error) { return stub.active, nil }
func (stub *stubAnalyticsUsers) CountByRole() (map[string]int64, error) {
	return stub.byRole, nil
}
func (stub *stubAnalyticsUsers) InstrumentDistribution() (map[string]int64, error) {
	return stub.instruments, nil
}
func (stub *stubAnalyticsUsers) LevelDistribution() (map[string]int64, error) {
	return stub.levels, nil
}
func (stub *stubAnalyticsUsers) ListRecentStaff(limit int) ([]models.User, error) {
	stub.recentLimit = limit
	return stub.recent, nil
}

type stubCounter int64

func (stub stubCounter) Count() (int64, error) {
	return int64(stub), nil
}

func TestGetAnalyticsReportsAllRoleKeys(t *testing.T) {
	updated := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	users := &stubAnalyticsUsers{
		total:       4,
		active:      3,
		byRole:      map[string]int64{models.RoleStudent: 3, models.RoleSuperAdmin: 1},
		instruments: map[string]int64{"Violon": 3},
		recent:      []models.User{{ID: "root", Email: "root@example.com", Role: models.RoleSuperAdmin, UpdatedAt: updated}},
	}
	service := NewAnalyticsService(users, stubCounter(2), stubCounter(6))

	analytics, err := service.GetAnalytics()
	if err != nil {
		t.Fatalf("GetAnalytics() unexpected error: %v", err)
	}

	wantRoles := map[string]int64{models.RoleStudent: 3, models.RoleTeacher: 0, models.RoleAdmin: 0, models.RoleSuperAdmin: 1}
	if !reflect.DeepEqual(analytics.UsersByRole, wantRoles) {
		t.Fatalf("usersByRole = %v, want %v", analytics.UsersByRole, wantRoles)
	}
	if analytics.TotalUsers != 4 || analytics.ActiveUsers != 3 || analytics.TotalGroups != 2 || analytics.TotalAvailabilities != 6 {
		t.Fatalf("unexpected totals %+v", analytics)
	}
	if analytics.LevelDistribution == nil || len(analytics.LevelDistribution) != 0 {
		t.Fatalf("expected an empty level distribution, got %v", analytics.LevelDistribution)
	}
	if users.recentLimit != 10 {
		t.Fatalf("expected recent connections limit 10, got %d", users.recentLimit)
	}
	if len(analytics.RecentConnections) != 1 || !analytics.RecentConnections[0].LastConnection.Equal(updated) {
		t.Fatalf("unexpected recent connections %+v", analytics.RecentConnections)
	}

	again, err := service.GetAnalytics()
	if err != nil {
		t.Fatalf("second GetAnalytics() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(analytics, again) {
		t.Fatal("expected repeated calls without writes to be identical")
	}
}

func TestGetAnalyticsPropagatesStorageErrors(t *testing.T) {
	service := NewAnalyticsService(&stubAnalyticsUsers{err: errors.New("boom")}, stubCounter(0), stubCounter(0))

	if _, err := service.GetAnalytics(); err == nil {
		t.Fatal("expected storage error")
	}
}
