package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Group is a fixed teaching group. It keeps no link to the students that
// justified it.
type Group struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	DayOfWeek int       `gorm:"not null" json:"dayOfWeek"`
	StartTime string    `gorm:"not null" json:"startTime"`
	EndTime   string    `gorm:"not null" json:"endTime"`
	Level     string    `gorm:"not null" json:"level"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Group) TableName() string {
	return "teaching_groups"
}

func (group *Group) BeforeCreate(*gorm.DB) error {
	if group.ID == "" {
		group.ID = uuid.NewString()
	}
	return nil
}
