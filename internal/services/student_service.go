package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/solfege/internal/models"
)

// StudentPatch carries the profile fields an administrator may edit. Nil
// fields are left unchanged; an empty string clears an optional field.
type StudentPatch struct {
	FirstName           *string `json:"firstName"`
	LastName            *string `json:"lastName"`
	DateOfBirth         *string `json:"dateOfBirth"`
	Instrument          *string `json:"instrument"`
	SecondaryInstrument *string `json:"secondaryInstrument"`
	Level               *string `json:"level"`
	Teacher             *string `json:"teacher"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
}

type StudentRepository interface {
	ListStudents() ([]models.User, error)
	FindByID(userID string) (models.User, error)
	ExistsByEmail(email string) (bool, error)
	UpdateByID(userID string, updates map[string]any) error
}

type StudentService struct {
	users StudentRepository
	lists ConfigurationListProvider
}

func NewStudentService(users StudentRepository, lists ConfigurationListProvider) *StudentService {
	return &StudentService{
		users: users,
		lists: lists,
	}
}

func (service *StudentService) ListStudents() ([]models.User, error) {
	students, err := service.users.ListStudents()
	if err != nil {
		return nil, classifyStorageError("list students", err)
	}
	return students, nil
}

func (service *StudentService) UpdateStudent(studentID string, patch StudentPatch) (models.User, error) {
	student, err := service.findStudent(studentID)
	if err != nil {
		return models.User{}, err
	}

	updates, err := studentPatchUpdates(patch)
	if err != nil {
		return models.User{}, err
	}
	if err := service.validatePatchAgainstLists(updates); err != nil {
		return models.User{}, err
	}
	if email, ok := updates["email"].(string); ok && email != student.Email {
		exists, err := service.users.ExistsByEmail(email)
		if err != nil {
			return models.User{}, classifyStorageError("check email", err)
		}
		if exists {
			return models.User{}, fmt.Errorf("%w: email already in use", ErrConflict)
		}
	}
	if len(updates) == 0 {
		return student, nil
	}

	if err := service.users.UpdateByID(student.ID, updates); err != nil {
		return models.User{}, classifyStorageError("update student", err)
	}
	return service.findStudent(student.ID)
}

// validatePatchAgainstLists holds edited list-backed fields to the same
// configured codes as intake.
func (service *StudentService) validatePatchAgainstLists(updates map[string]any) error {
	checks := make([]listCheck, 0, 4)
	if value, ok := updates["instrument"].(string); ok {
		checks = append(checks, listCheck{field: "instrument", list: models.ListInstruments, value: value})
	}
	if value, ok := updates["secondary_instrument"].(*string); ok && value != nil {
		checks = append(checks, listCheck{field: "secondaryInstrument", list: models.ListInstruments, value: *value, optional: true})
	}
	if value, ok := updates["level"].(string); ok {
		checks = append(checks, listCheck{field: "level", list: models.ListLevels, value: value})
	}
	if value, ok := updates["teacher"].(*string); ok && value != nil {
		checks = append(checks, listCheck{field: "teacher", list: models.ListTeachers, value: *value, optional: true})
	}
	if len(checks) == 0 {
		return nil
	}
	return validateListMembership(service.lists, checks)
}

func (service *StudentService) findStudent(studentID string) (models.User, error) {
	student, err := service.users.FindByID(studentID)
	if err != nil {
		return models.User{}, classifyStorageError("load student", err)
	}
	if !student.IsStudent() {
		return models.User{}, fmt.Errorf("load student: %w", ErrNotFound)
	}
	return student, nil
}

func studentPatchUpdates(patch StudentPatch) (map[string]any, error) {
	updates := make(map[string]any)

	required := []struct {
		field  string
		column string
		value  *string
	}{
		{field: "firstName", column: "first_name", value: patch.FirstName},
		{field: "lastName", column: "last_name", value: patch.LastName},
		{field: "instrument", column: "instrument", value: patch.Instrument},
		{field: "level", column: "level", value: patch.Level},
	}
	for _, entry := range required {
		if entry.value == nil {
			continue
		}
		value := strings.TrimSpace(*entry.value)
		if value == "" {
			return nil, newValidationError(entry.field, "is required")
		}
		updates[entry.column] = value
	}

	nullable := []struct {
		column string
		value  *string
	}{
		{column: "secondary_instrument", value: patch.SecondaryInstrument},
		{column: "teacher", value: patch.Teacher},
		{column: "phone", value: patch.Phone},
	}
	for _, entry := range nullable {
		if entry.value == nil {
			continue
		}
		updates[entry.column] = optionalString(strings.TrimSpace(*entry.value))
	}

	if patch.Email != nil {
		email := strings.TrimSpace(*patch.Email)
		if err := inputValidator.Var(email, "required,email"); err != nil {
			return nil, newValidationError("email", "must be a valid email address")
		}
		updates["email"] = email
	}

	if patch.DateOfBirth != nil {
		raw := strings.TrimSpace(*patch.DateOfBirth)
		if raw == "" {
			updates["date_of_birth"] = nil
		} else {
			parsed, err := time.ParseInLocation(dateOfBirthLayout, raw, time.UTC)
			if err != nil {
				return nil, newValidationError("dateOfBirth", "must use the YYYY-MM-DD format")
			}
			updates["date_of_birth"] = parsed
		}
	}
	return updates, nil
}
