package db

import (
	"github.com/terraincognita07/solfege/internal/models"
	"gorm.io/gorm"
)

type GroupRepository struct {
	database *gorm.DB
}

func NewGroupRepository(database *gorm.DB) *GroupRepository {
	return &GroupRepository{database: database}
}

func (repo *GroupRepository) List() ([]models.Group, error) {
	groups := make([]models.Group, 0)
	if err := repo.database.
		Order("day_of_week ASC, start_time ASC, id ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (repo *GroupRepository) Create(group *models.Group) error {
	return repo.database.Create(group).Error
}

func (repo *GroupRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Group{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
