package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})
	if err := validate.RegisterValidation("clock", func(level validator.FieldLevel) bool {
		return IsClockTime(level.Field().String())
	}); err != nil {
		panic(err)
	}
	return validate
}

// IsClockTime reports whether value is a 24h "HH:MM" time.
func IsClockTime(value string) bool {
	return clockPattern.MatchString(value)
}

func validateInput(input any) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return newValidationError("", "invalid input")
	}
	first := fieldErrors[0]
	return newValidationError(fieldPath(first.Namespace()), validationMessage(first))
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if index := strings.Index(namespace, "."); index >= 0 {
		return namespace[index+1:]
	}
	return namespace
}

func validationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "clock":
		return "must use the HH:MM format"
	case "datetime":
		return "must use the YYYY-MM-DD format"
	case "min":
		return "must be at least " + fieldError.Param()
	case "max":
		return "must be at most " + fieldError.Param()
	case "oneof":
		return "must be one of " + fieldError.Param()
	default:
		return "is invalid"
	}
}
