package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrIntakeFailed    = errors.New("intake failed")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient role")
)

// ValidationError describes the first invalid field of an input. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (err *ValidationError) Error() string {
	if err.Field == "" {
		return err.Message
	}
	return fmt.Sprintf("%s %s", err.Field, err.Message)
}

func (err *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field string, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// classifyStorageError maps gorm sentinels onto service errors and wraps
// anything else with the operation name.
func classifyStorageError(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", operation, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", operation, ErrConflict)
	default:
		return fmt.Errorf("%s: %w", operation, err)
	}
}
