package services

import (
	"github.com/terraincognita07/solfege/internal/db"
	"github.com/terraincognita07/solfege/internal/models"
)

type AvailabilityReader interface {
	ListWithStudents(query db.AvailabilityQuery) ([]models.AvailabilityWithStudent, error)
}

type AvailabilityService struct {
	availabilities AvailabilityReader
}

func NewAvailabilityService(availabilities AvailabilityReader) *AvailabilityService {
	return &AvailabilityService{availabilities: availabilities}
}

// ListAvailabilities returns every student availability ordered by day, then
// slot, then student name.
func (service *AvailabilityService) ListAvailabilities() ([]models.AvailabilityWithStudent, error) {
	rows, err := service.availabilities.ListWithStudents(db.AvailabilityQuery{})
	if err != nil {
		return nil, classifyStorageError("list availabilities", err)
	}
	return rows, nil
}
