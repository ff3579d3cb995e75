package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/solfege/internal/models"
)

type SeedRepository interface {
	SaveStudentWithAvailabilities(profile models.User, slots []models.Availability) (models.User, int, error)
	DeleteStudentsAndAvailabilities() (int64, error)
}

type SeedResult struct {
	Students       int `json:"students"`
	Availabilities int `json:"availabilities"`
}

type SeedService struct {
	students SeedRepository
}

func NewSeedService(students SeedRepository) *SeedService {
	return &SeedService{students: students}
}

// Seed loads the demo students, upserting them by email. Rerunning it resets
// their availabilities to the fixture slots.
func (service *SeedService) Seed() (SeedResult, error) {
	var result SeedResult
	for _, fixture := range seedStudents {
		profile, err := studentProfileFromInfo(StudentInfo{
			Email:               fixture.Email,
			FirstName:           fixture.FirstName,
			LastName:            fixture.LastName,
			DateOfBirth:         fixture.DateOfBirth,
			Phone:               fixture.Phone,
			Instrument:          fixture.Instrument,
			SecondaryInstrument: fixture.SecondaryInstrument,
			Level:               fixture.Level,
			Teacher:             fixture.Teacher,
		})
		if err != nil {
			return result, fmt.Errorf("seed %s: %w", fixture.Email, err)
		}

		availabilities := make([]models.Availability, 0, len(fixture.Slots))
		for _, slot := range fixture.Slots {
			availabilities = append(availabilities, models.Availability{
				DayOfWeek: slot.DayOfWeek,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}

		_, created, err := service.students.SaveStudentWithAvailabilities(profile, availabilities)
		if errors.Is(err, models.ErrStaffAccountEmail) {
			return result, fmt.Errorf("seed %s: %w", fixture.Email, ErrConflict)
		}
		if err != nil {
			return result, classifyStorageError("seed "+fixture.Email, err)
		}
		result.Students++
		result.Availabilities += created
	}
	return result, nil
}

// Clear deletes every STUDENT account and the availabilities they own.
func (service *SeedService) Clear() (int64, error) {
	deleted, err := service.students.DeleteStudentsAndAvailabilities()
	if err != nil {
		return 0, classifyStorageError("clear students", err)
	}
	return deleted, nil
}
