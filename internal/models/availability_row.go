package models

// AvailabilityWithStudent is an availability joined with the profile fields of
// its owning student.
type AvailabilityWithStudent struct {
	ID         string `gorm:"column:id" json:"id"`
	UserID     string `gorm:"column:user_id" json:"userId"`
	DayOfWeek  int    `gorm:"column:day_of_week" json:"dayOfWeek"`
	StartTime  string `gorm:"column:start_time" json:"startTime"`
	EndTime    string `gorm:"column:end_time" json:"endTime"`
	FirstName  string `gorm:"column:first_name" json:"firstName"`
	LastName   string `gorm:"column:last_name" json:"lastName"`
	Email      string `gorm:"column:email" json:"email"`
	Instrument string `gorm:"column:instrument" json:"instrument"`
	Level      string `gorm:"column:level" json:"level"`
}
