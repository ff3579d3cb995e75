package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/solfege/internal/models"
)

const dateOfBirthLayout = "2006-01-02"

type StudentInfo struct {
	Email               string `json:"email" validate:"required,email"`
	FirstName           string `json:"firstName" validate:"required"`
	LastName            string `json:"lastName" validate:"required"`
	DateOfBirth         string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Phone               string `json:"phone"`
	Instrument          string `json:"instrument"`
	SecondaryInstrument string `json:"secondaryInstrument"`
	Level               string `json:"level"`
	Teacher             string `json:"teacher"`
}

type TimeSlot struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"min=1,max=6"`
	StartTime string `json:"startTime" validate:"clock"`
	EndTime   string `json:"endTime" validate:"clock"`
}

type IntakeResult struct {
	User                models.User
	AvailabilitiesCount int
}

type intakeSubmission struct {
	StudentInfo    StudentInfo `json:"studentInfo"`
	Availabilities []TimeSlot  `json:"availabilities" validate:"dive"`
}

type IntakeStudentRepository interface {
	SaveStudentWithAvailabilities(profile models.User, slots []models.Availability) (models.User, int, error)
}

// ConfigurationListProvider resolves an admin-editable list, falling back to
// its defaults when nothing was saved.
type ConfigurationListProvider interface {
	GetList(name string) (models.ConfigurationList, error)
}

type IntakeService struct {
	students IntakeStudentRepository
	lists    ConfigurationListProvider
}

func NewIntakeService(students IntakeStudentRepository, lists ConfigurationListProvider) *IntakeService {
	return &IntakeService{
		students: students,
		lists:    lists,
	}
}

// SubmitAvailability upserts the student identified by info.Email and replaces
// their whole weekly availability set with slots.
func (service *IntakeService) SubmitAvailability(info StudentInfo, slots []TimeSlot) (IntakeResult, error) {
	info = normalizeStudentInfo(info)
	if err := validateInput(intakeSubmission{StudentInfo: info, Availabilities: slots}); err != nil {
		return IntakeResult{}, err
	}
	if err := service.validateAgainstLists(info); err != nil {
		if errors.Is(err, ErrValidation) {
			return IntakeResult{}, err
		}
		return IntakeResult{}, fmt.Errorf("%w: %w", ErrIntakeFailed, err)
	}

	profile, err := studentProfileFromInfo(info)
	if err != nil {
		return IntakeResult{}, err
	}

	availabilities := make([]models.Availability, 0, len(slots))
	for _, slot := range slots {
		availabilities = append(availabilities, models.Availability{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	user, created, err := service.students.SaveStudentWithAvailabilities(profile, availabilities)
	if errors.Is(err, models.ErrStaffAccountEmail) {
		return IntakeResult{}, fmt.Errorf("%w: email reserved for a staff account", ErrConflict)
	}
	if err != nil {
		return IntakeResult{}, fmt.Errorf("%w: %w", ErrIntakeFailed, err)
	}
	return IntakeResult{User: user, AvailabilitiesCount: created}, nil
}

func (service *IntakeService) validateAgainstLists(info StudentInfo) error {
	return validateListMembership(service.lists, []listCheck{
		{field: "studentInfo.instrument", list: models.ListInstruments, value: info.Instrument},
		{field: "studentInfo.secondaryInstrument", list: models.ListInstruments, value: info.SecondaryInstrument, optional: true},
		{field: "studentInfo.level", list: models.ListLevels, value: info.Level},
		{field: "studentInfo.teacher", list: models.ListTeachers, value: info.Teacher, optional: true},
	})
}

type listCheck struct {
	field    string
	list     string
	value    string
	optional bool
}

// validateListMembership requires each value to be a code of its configured
// list. An empty list accepts anything; optional values may be blank.
func validateListMembership(lists ConfigurationListProvider, checks []listCheck) error {
	for _, check := range checks {
		if check.optional && check.value == "" {
			continue
		}
		list, err := lists.GetList(check.list)
		if err != nil {
			return fmt.Errorf("load %s: %w", check.list, err)
		}
		if len(list.Entries) == 0 {
			continue
		}
		if !list.Contains(check.value) {
			return newValidationError(check.field, "must be one of the configured "+check.list)
		}
	}
	return nil
}

func normalizeStudentInfo(info StudentInfo) StudentInfo {
	info.Email = strings.TrimSpace(info.Email)
	info.FirstName = strings.TrimSpace(info.FirstName)
	info.LastName = strings.TrimSpace(info.LastName)
	info.DateOfBirth = strings.TrimSpace(info.DateOfBirth)
	info.Phone = strings.TrimSpace(info.Phone)
	info.Instrument = strings.TrimSpace(info.Instrument)
	info.SecondaryInstrument = strings.TrimSpace(info.SecondaryInstrument)
	info.Level = strings.TrimSpace(info.Level)
	info.Teacher = strings.TrimSpace(info.Teacher)
	return info
}

func studentProfileFromInfo(info StudentInfo) (models.User, error) {
	profile := models.User{
		Email:               info.Email,
		FirstName:           info.FirstName,
		LastName:            info.LastName,
		Phone:               optionalString(info.Phone),
		Instrument:          info.Instrument,
		SecondaryInstrument: optionalString(info.SecondaryInstrument),
		Level:               info.Level,
		Teacher:             optionalString(info.Teacher),
		Role:                models.RoleStudent,
		IsActive:            true,
	}
	if info.DateOfBirth != "" {
		parsed, err := time.ParseInLocation(dateOfBirthLayout, info.DateOfBirth, time.UTC)
		if err != nil {
			return models.User{}, newValidationError("studentInfo.dateOfBirth", "must use the YYYY-MM-DD format")
		}
		profile.DateOfBirth = &parsed
	}
	return profile, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
