package services

import (
	"errors"
	"testing"
)

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput(" Prof@Example.com ", "  StrongPass1  ")
	if err != nil {
		t.Fatalf("expected valid credentials input, got %v", err)
	}
	if email != "Prof@Example.com" {
		t.Fatalf("expected case to be preserved, got %q", email)
	}
	if password != "  StrongPass1  " {
		t.Fatalf("expected password to be kept verbatim, got %q", password)
	}

	_, _, err = NormalizeCredentialsInput("  ", "StrongPass1")
	if !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for empty email, got %v", err)
	}

	_, _, err = NormalizeCredentialsInput("user@example.com", " ")
	if !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for blank password, got %v", err)
	}
}
