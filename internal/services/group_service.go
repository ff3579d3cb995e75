package services

import (
	"strings"

	"github.com/terraincognita07/solfege/internal/models"
)

type GroupInput struct {
	Name      string `json:"name" validate:"required"`
	DayOfWeek int    `json:"dayOfWeek" validate:"min=1,max=6"`
	StartTime string `json:"startTime" validate:"clock"`
	EndTime   string `json:"endTime" validate:"clock"`
	Level     string `json:"level" validate:"required"`
}

type GroupRepository interface {
	List() ([]models.Group, error)
	Create(group *models.Group) error
}

type GroupService struct {
	groups GroupRepository
}

func NewGroupService(groups GroupRepository) *GroupService {
	return &GroupService{groups: groups}
}

// ListGroups returns every group ordered by day of week, then start time.
func (service *GroupService) ListGroups() ([]models.Group, error) {
	groups, err := service.groups.List()
	if err != nil {
		return nil, classifyStorageError("list groups", err)
	}
	return groups, nil
}

func (service *GroupService) CreateGroup(input GroupInput) (models.Group, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Level = strings.TrimSpace(input.Level)
	if err := validateInput(input); err != nil {
		return models.Group{}, err
	}

	group := models.Group{
		Name:      input.Name,
		DayOfWeek: input.DayOfWeek,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Level:     input.Level,
	}
	if err := service.groups.Create(&group); err != nil {
		return models.Group{}, classifyStorageError("create group", err)
	}
	return group, nil
}
