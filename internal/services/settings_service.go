package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/solfege/internal/models"
	"gorm.io/gorm"
)

type ConfigurationListRepository interface {
	Find(name string) (models.ConfigurationList, error)
	Save(list *models.ConfigurationList) error
}

type SettingsService struct {
	lists ConfigurationListRepository
}

func NewSettingsService(lists ConfigurationListRepository) *SettingsService {
	return &SettingsService{lists: lists}
}

// GetList returns the saved list or its built-in default.
func (service *SettingsService) GetList(name string) (models.ConfigurationList, error) {
	fallback, known := models.DefaultConfigurationList(name)
	if !known {
		return models.ConfigurationList{}, newValidationError("name", "must be one of instruments, levels, teachers")
	}

	list, err := service.lists.Find(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return models.ConfigurationList{}, classifyStorageError("load "+name, err)
	}
	if list.Entries == nil {
		list.Entries = []models.ConfigurationEntry{}
	}
	return list, nil
}

// GetLists returns every configurable list keyed by name.
func (service *SettingsService) GetLists() (map[string]models.ConfigurationList, error) {
	lists := make(map[string]models.ConfigurationList, len(models.ConfigurationListNames()))
	for _, name := range models.ConfigurationListNames() {
		list, err := service.GetList(name)
		if err != nil {
			return nil, err
		}
		lists[name] = list
	}
	return lists, nil
}

// ReplaceList overwrites the entries of a list. Codes must be unique and
// levels need a description.
func (service *SettingsService) ReplaceList(name string, entries []models.ConfigurationEntry) (models.ConfigurationList, error) {
	if _, known := models.DefaultConfigurationList(name); !known {
		return models.ConfigurationList{}, newValidationError("name", "must be one of instruments, levels, teachers")
	}

	cleaned := make([]models.ConfigurationEntry, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		entry.Code = strings.TrimSpace(entry.Code)
		entry.Description = strings.TrimSpace(entry.Description)
		if entry.Code == "" {
			return models.ConfigurationList{}, newValidationError("code", "is required")
		}
		if name == models.ListLevels && entry.Description == "" {
			return models.ConfigurationList{}, newValidationError("description", "is required for levels")
		}
		if _, duplicate := seen[entry.Code]; duplicate {
			return models.ConfigurationList{}, newValidationError("code", "must be unique: "+entry.Code)
		}
		seen[entry.Code] = struct{}{}
		cleaned = append(cleaned, entry)
	}

	list := models.ConfigurationList{Name: name, Entries: cleaned}
	if err := service.lists.Save(&list); err != nil {
		return models.ConfigurationList{}, classifyStorageError("save "+name, err)
	}
	return list, nil
}
