package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinDayOfWeek = 1 // Monday
	MaxDayOfWeek = 6 // Saturday
)

// Availability is one weekly recurring window owned by a single user.
type Availability struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	DayOfWeek int       `gorm:"not null" json:"dayOfWeek"`
	StartTime string    `gorm:"not null" json:"startTime"`
	EndTime   string    `gorm:"not null" json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
}

func (availability *Availability) BeforeCreate(*gorm.DB) error {
	if availability.ID == "" {
		availability.ID = uuid.NewString()
	}
	return nil
}

func IsValidDayOfWeek(day int) bool {
	return day >= MinDayOfWeek && day <= MaxDayOfWeek
}
