package services

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minimumPasswordLength = 8

var ErrWeakPassword = errors.New("weak password")

// ValidatePasswordStrength requires at least eight characters mixing upper
// case, lower case and digits.
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < minimumPasswordLength {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if hasUpper && hasLower && hasDigit {
		return nil
	}
	return ErrWeakPassword
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
