package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/solfege/internal/services"
)

func newTokenHandler(secret string, now time.Time) *Handler {
	return &Handler{
		secretKey: []byte(secret),
		now:       func() time.Time { return now },
	}
}

func TestSessionTokenRoundTripAndAbsoluteExpiry(t *testing.T) {
	issuedAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	issuer := newTokenHandler("session-secret", issuedAt)
	session := services.Session{UserID: "u-1", Email: "prof@example.com", Role: "TEACHER"}

	token, expiresAt, err := issuer.buildSessionToken(session)
	if err != nil {
		t.Fatalf("buildSessionToken() unexpected error: %v", err)
	}
	if !expiresAt.Equal(issuedAt.Add(30 * 24 * time.Hour)) {
		t.Fatalf("expected a 30 day lifetime, got %s", expiresAt)
	}

	parsed, err := newTokenHandler("session-secret", issuedAt.Add(29*24*time.Hour)).parseSessionToken(token)
	if err != nil {
		t.Fatalf("parseSessionToken() unexpected error: %v", err)
	}
	if parsed != session {
		t.Fatalf("expected %+v, got %+v", session, parsed)
	}

	if _, err := newTokenHandler("session-secret", issuedAt.Add(31*24*time.Hour)).parseSessionToken(token); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
	if _, err := newTokenHandler("other-secret", issuedAt).parseSessionToken(token); err == nil {
		t.Fatal("expected a token signed with another secret to be rejected")
	}
}

func TestSessionTokenRejectsOtherAlgorithms(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	claims := sessionClaims{
		UserID: "u-1",
		Role:   "SUPER_ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	if _, err := newTokenHandler("session-secret", now).parseSessionToken(unsigned); err == nil {
		t.Fatal("expected an unsigned token to be rejected")
	}
}
