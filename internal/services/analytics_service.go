package services

import (
	"time"

	"github.com/terraincognita07/solfege/internal/models"
)

const recentConnectionsLimit = 10

type RecentConnection struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	LastConnection time.Time `json:"lastConnection"`
}

type Analytics struct {
	TotalUsers             int64              `json:"totalUsers"`
	UsersByRole            map[string]int64   `json:"usersByRole"`
	ActiveUsers            int64              `json:"activeUsers"`
	TotalGroups            int64              `json:"totalGroups"`
	TotalAvailabilities    int64              `json:"totalAvailabilities"`
	InstrumentDistribution map[string]int64   `json:"instrumentDistribution"`
	LevelDistribution      map[string]int64   `json:"levelDistribution"`
	RecentConnections      []RecentConnection `json:"recentConnections"`
}

type AnalyticsUserRepository interface {
	CountAll() (int64, error)
	CountActive() (int64, error)
	CountByRole() (map[string]int64, error)
	InstrumentDistribution() (map[string]int64, error)
	LevelDistribution() (map[string]int64, error)
	ListRecentStaff(limit int) ([]models.User, error)
}

type Counter interface {
	Count() (int64, error)
}

type AnalyticsService struct {
	users          AnalyticsUserRepository
	groups         Counter
	availabilities Counter
}

func NewAnalyticsService(users AnalyticsUserRepository, groups Counter, availabilities Counter) *AnalyticsService {
	return &AnalyticsService{
		users:          users,
		groups:         groups,
		availabilities: availabilities,
	}
}

// GetAnalytics computes every figure on each call. The individual counts are
// separate reads and are not a consistent snapshot.
func (service *AnalyticsService) GetAnalytics() (Analytics, error) {
	totalUsers, err := service.users.CountAll()
	if err != nil {
		return Analytics{}, classifyStorageError("count users", err)
	}
	activeUsers, err := service.users.CountActive()
	if err != nil {
		return Analytics{}, classifyStorageError("count active users", err)
	}
	roleCounts, err := service.users.CountByRole()
	if err != nil {
		return Analytics{}, classifyStorageError("count users by role", err)
	}
	instruments, err := service.users.InstrumentDistribution()
	if err != nil {
		return Analytics{}, classifyStorageError("instrument distribution", err)
	}
	levels, err := service.users.LevelDistribution()
	if err != nil {
		return Analytics{}, classifyStorageError("level distribution", err)
	}
	totalGroups, err := service.groups.Count()
	if err != nil {
		return Analytics{}, classifyStorageError("count groups", err)
	}
	totalAvailabilities, err := service.availabilities.Count()
	if err != nil {
		return Analytics{}, classifyStorageError("count availabilities", err)
	}
	recent, err := service.users.ListRecentStaff(recentConnectionsLimit)
	if err != nil {
		return Analytics{}, classifyStorageError("list recent connections", err)
	}

	usersByRole := make(map[string]int64, len(models.Roles()))
	for _, role := range models.Roles() {
		usersByRole[role] = roleCounts[role]
	}

	connections := make([]RecentConnection, 0, len(recent))
	for _, user := range recent {
		connections = append(connections, RecentConnection{
			ID:             user.ID,
			Email:          user.Email,
			Role:           user.Role,
			LastConnection: user.UpdatedAt,
		})
	}

	return Analytics{
		TotalUsers:             totalUsers,
		UsersByRole:            usersByRole,
		ActiveUsers:            activeUsers,
		TotalGroups:            totalGroups,
		TotalAvailabilities:    totalAvailabilities,
		InstrumentDistribution: nonNilCounts(instruments),
		LevelDistribution:      nonNilCounts(levels),
		RecentConnections:      connections,
	}, nil
}

func nonNilCounts(counts map[string]int64) map[string]int64 {
	if counts == nil {
		return map[string]int64{}
	}
	return counts
}
