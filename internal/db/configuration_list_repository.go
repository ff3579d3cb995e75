package db

import (
	"github.com/terraincognita07/solfege/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigurationListRepository struct {
	database *gorm.DB
}

func NewConfigurationListRepository(database *gorm.DB) *ConfigurationListRepository {
	return &ConfigurationListRepository{database: database}
}

func (repo *ConfigurationListRepository) Find(name string) (models.ConfigurationList, error) {
	var list models.ConfigurationList
	if err := repo.database.Where("name = ?", name).First(&list).Error; err != nil {
		return models.ConfigurationList{}, err
	}
	return list, nil
}

func (repo *ConfigurationListRepository) ListAll() ([]models.ConfigurationList, error) {
	lists := make([]models.ConfigurationList, 0)
	if err := repo.database.Order("name ASC").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// Save replaces the stored entries of list.Name, inserting the row on first use.
func (repo *ConfigurationListRepository) Save(list *models.ConfigurationList) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"entries", "updated_at"}),
	}).Create(list).Error
}
