package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/solfege/internal/models"
	"gorm.io/gorm"
)

type CreateUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role" validate:"required,oneof=TEACHER ADMIN SUPER_ADMIN"`
}

type UserPatch struct {
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type UserRepository interface {
	ListStaff() ([]models.User, error)
	FindByID(userID string) (models.User, error)
	FindByEmail(email string) (models.User, error)
	ExistsByEmail(email string) (bool, error)
	Create(user *models.User) error
	UpdateByID(userID string, updates map[string]any) error
}

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

func (service *UserService) ListUsers() ([]models.User, error) {
	users, err := service.users.ListStaff()
	if err != nil {
		return nil, classifyStorageError("list users", err)
	}
	return users, nil
}

func (service *UserService) CreateUser(input CreateUserInput) (models.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Role = strings.TrimSpace(input.Role)
	if err := validateInput(input); err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return models.User{}, newValidationError("password", "must be at least 8 characters with upper case, lower case and digits")
	}

	exists, err := service.users.ExistsByEmail(input.Email)
	if err != nil {
		return models.User{}, classifyStorageError("check email", err)
	}
	if exists {
		return models.User{}, fmt.Errorf("%w: email already in use", ErrConflict)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		IsActive:     true,
		PasswordHash: &hash,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, classifyStorageError("create user", err)
	}
	return user, nil
}

// UpdateUser edits a staff account. Student ids are reported as not found.
func (service *UserService) UpdateUser(userID string, patch UserPatch) (models.User, error) {
	user, err := service.findStaff(userID)
	if err != nil {
		return models.User{}, err
	}

	updates := make(map[string]any)
	if patch.Role != nil {
		role := strings.TrimSpace(*patch.Role)
		if !models.IsStaffRole(role) {
			return models.User{}, newValidationError("role", "must be one of TEACHER ADMIN SUPER_ADMIN")
		}
		updates["role"] = role
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if patch.Password != nil {
		if err := ValidatePasswordStrength(*patch.Password); err != nil {
			return models.User{}, newValidationError("password", "must be at least 8 characters with upper case, lower case and digits")
		}
		hash, err := HashPassword(*patch.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		updates["password_hash"] = hash
	}
	if patch.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*patch.LastName)
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := service.users.UpdateByID(user.ID, updates); err != nil {
		return models.User{}, classifyStorageError("update user", err)
	}
	return service.findStaff(user.ID)
}

// EnsureSuperAdmin creates or promotes the account at email to an active
// SUPER_ADMIN with the given password. A student account is never promoted.
func (service *UserService) EnsureSuperAdmin(email string, firstName string, lastName string, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if err := inputValidator.Var(email, "required,email"); err != nil {
		return models.User{}, newValidationError("email", "must be a valid email address")
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, newValidationError("password", "must be at least 8 characters with upper case, lower case and digits")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	existing, err := service.users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user := models.User{
			Email:        email,
			FirstName:    strings.TrimSpace(firstName),
			LastName:     strings.TrimSpace(lastName),
			Role:         models.RoleSuperAdmin,
			IsActive:     true,
			PasswordHash: &hash,
		}
		if err := service.users.Create(&user); err != nil {
			return models.User{}, classifyStorageError("create super admin", err)
		}
		return user, nil
	}
	if err != nil {
		return models.User{}, classifyStorageError("load user", err)
	}
	if existing.IsStudent() {
		return models.User{}, fmt.Errorf("%w: email belongs to a student", ErrConflict)
	}

	updates := map[string]any{
		"role":          models.RoleSuperAdmin,
		"is_active":     true,
		"password_hash": hash,
	}
	if name := strings.TrimSpace(firstName); name != "" {
		updates["first_name"] = name
	}
	if name := strings.TrimSpace(lastName); name != "" {
		updates["last_name"] = name
	}
	if err := service.users.UpdateByID(existing.ID, updates); err != nil {
		return models.User{}, classifyStorageError("promote super admin", err)
	}
	return service.findStaff(existing.ID)
}

// SetPasswordByEmail replaces the password of a staff account without a
// strength check; it backs the operator reset command.
func (service *UserService) SetPasswordByEmail(email string, password string) error {
	user, err := service.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return classifyStorageError("load user", err)
	}
	if user.IsStudent() {
		return fmt.Errorf("load user: %w", ErrNotFound)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return classifyStorageError("update password", service.users.UpdateByID(user.ID, map[string]any{"password_hash": hash}))
}

func (service *UserService) findStaff(userID string) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, classifyStorageError("load user", err)
	}
	if user.IsStudent() {
		return models.User{}, fmt.Errorf("load user: %w", ErrNotFound)
	}
	return user, nil
}
