package db

import "gorm.io/gorm"

type Repositories struct {
	Users              *UserRepository
	Availabilities     *AvailabilityRepository
	Groups             *GroupRepository
	ConfigurationLists *ConfigurationListRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:              NewUserRepository(database),
		Availabilities:     NewAvailabilityRepository(database),
		Groups:             NewGroupRepository(database),
		ConfigurationLists: NewConfigurationListRepository(database),
	}
}
