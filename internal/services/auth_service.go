package services

import (
	"errors"

	"github.com/terraincognita07/solfege/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	FindByEmail(email string) (models.User, error)
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate checks credentials for a staff login and returns the session to
// issue. Students never authenticate.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (Session, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return Session{}, err
	}

	user, err := service.users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Equalize timing with the known-email path.
		_ = bcrypt.CompareHashAndPassword(timingHash, []byte(password))
		return Session{}, ErrAuthCredentialsInvalid
	}
	if err != nil {
		return Session{}, classifyStorageError("load user", err)
	}

	if user.Role == models.RoleStudent {
		_ = bcrypt.CompareHashAndPassword(timingHash, []byte(password))
		return Session{}, ErrAuthStudentLogin
	}
	if user.PasswordHash == nil || *user.PasswordHash == "" {
		return Session{}, ErrAuthCredentialsInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrAuthCredentialsInvalid
	}
	if !user.IsActive {
		return Session{}, ErrAuthAccountDisabled
	}

	return Session{UserID: user.ID, Email: user.Email, Role: user.Role}, nil
}

var timingHash = mustHashPassword("solfege-timing-equalizer")

func mustHashPassword(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}
