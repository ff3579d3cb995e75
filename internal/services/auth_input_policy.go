package services

import (
	"errors"
	"strings"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrAuthAccountDisabled    = errors.New("auth account disabled")
	ErrAuthStudentLogin       = errors.New("auth student accounts cannot log in")
)

// NormalizeCredentialsInput trims the email only. Passwords are compared
// byte for byte with what was hashed, and emails exactly as stored.
func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := strings.TrimSpace(emailRaw)
	if email == "" || strings.TrimSpace(passwordRaw) == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, passwordRaw, nil
}
