package db

import (
	"github.com/terraincognita07/solfege/internal/models"
	"gorm.io/gorm"
)

// AvailabilityQuery narrows ListWithStudents. Nil fields and an empty
// Instruments slice match everything.
type AvailabilityQuery struct {
	Instrument  *string
	Instruments []string
	Level       *string
	DayOfWeek   *int
	StartTime   *string
	EndTime     *string
}

type AvailabilityRepository struct {
	database *gorm.DB
}

func NewAvailabilityRepository(database *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{database: database}
}

func (repo *AvailabilityRepository) ListForUser(userID string) ([]models.Availability, error) {
	availabilities := make([]models.Availability, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("day_of_week ASC, start_time ASC, end_time ASC, id ASC").
		Find(&availabilities).Error; err != nil {
		return nil, err
	}
	return availabilities, nil
}

// ListWithStudents returns availabilities owned by STUDENT accounts joined with
// the owner's profile, ordered by slot then by student name.
func (repo *AvailabilityRepository) ListWithStudents(query AvailabilityQuery) ([]models.AvailabilityWithStudent, error) {
	statement := repo.database.
		Table("availabilities").
		Select(`availabilities.id, availabilities.user_id, availabilities.day_of_week,
availabilities.start_time, availabilities.end_time,
users.first_name, users.last_name, users.email, users.instrument, users.level`).
		Joins("JOIN users ON users.id = availabilities.user_id").
		Where("users.role = ?", models.RoleStudent)

	if query.Instrument != nil {
		statement = statement.Where("users.instrument = ?", *query.Instrument)
	}
	if len(query.Instruments) > 0 {
		statement = statement.Where("users.instrument IN ?", query.Instruments)
	}
	if query.Level != nil {
		statement = statement.Where("users.level = ?", *query.Level)
	}
	if query.DayOfWeek != nil {
		statement = statement.Where("availabilities.day_of_week = ?", *query.DayOfWeek)
	}
	if query.StartTime != nil {
		statement = statement.Where("availabilities.start_time = ?", *query.StartTime)
	}
	if query.EndTime != nil {
		statement = statement.Where("availabilities.end_time = ?", *query.EndTime)
	}

	rows := make([]models.AvailabilityWithStudent, 0)
	if err := statement.
		Order("availabilities.day_of_week ASC, availabilities.start_time ASC, availabilities.end_time ASC").
		Order("users.last_name ASC, users.first_name ASC, users.id ASC, availabilities.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *AvailabilityRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Availability{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
