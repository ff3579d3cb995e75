package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent    = "STUDENT"
	RoleTeacher    = "TEACHER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Roles lists every role in ascending order of privilege.
func Roles() []string {
	return []string{RoleStudent, RoleTeacher, RoleAdmin, RoleSuperAdmin}
}

func IsKnownRole(role string) bool {
	switch role {
	case RoleStudent, RoleTeacher, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// IsStaffRole reports whether the role belongs to an account that logs in
// with a password.
func IsStaffRole(role string) bool {
	return role == RoleTeacher || role == RoleAdmin || role == RoleSuperAdmin
}

type User struct {
	ID                  string     `gorm:"primaryKey" json:"id"`
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	FirstName           string     `gorm:"not null" json:"firstName"`
	LastName            string     `gorm:"not null" json:"lastName"`
	DateOfBirth         *time.Time `json:"dateOfBirth"`
	Phone               *string    `json:"phone"`
	Instrument          string     `gorm:"not null" json:"instrument"`
	SecondaryInstrument *string    `json:"secondaryInstrument"`
	Level               string     `gorm:"not null" json:"level"`
	Teacher             *string    `json:"teacher"`
	Role                string     `gorm:"not null" json:"role"`
	IsActive            bool       `gorm:"not null" json:"isActive"`
	PasswordHash        *string    `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func (user *User) BeforeCreate(*gorm.DB) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return nil
}

func (user *User) IsStudent() bool {
	return user != nil && user.Role == RoleStudent
}

// ErrStaffAccountEmail is returned when a student-only write targets an email
// owned by a staff account.
var ErrStaffAccountEmail = errors.New("email belongs to a staff account")
