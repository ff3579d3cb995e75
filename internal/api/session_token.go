package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/solfege/internal/services"
)

type sessionClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildSessionToken(session services.Session) (string, time.Time, error) {
	now := handler.now()
	expiresAt := now.Add(sessionTokenTTL)

	claims := sessionClaims{
		UserID: session.UserID,
		Email:  session.Email,
		Role:   session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (handler *Handler) parseSessionToken(raw string) (services.Session, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return handler.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(handler.now),
	)
	if err != nil || !token.Valid {
		return services.Session{}, errors.New("invalid session token")
	}
	if claims.UserID == "" {
		return services.Session{}, errors.New("session token has no user")
	}
	return services.Session{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

// sessionFromRequest tries the auth cookie first, then a bearer
// Authorization header. An unusable cookie does not hide a valid header.
func (handler *Handler) sessionFromRequest(c *fiber.Ctx) (services.Session, bool) {
	for _, raw := range requestTokens(c) {
		if session, err := handler.parseSessionToken(raw); err == nil {
			return session, true
		}
	}
	return services.Session{}, false
}

func requestTokens(c *fiber.Ctx) []string {
	tokens := make([]string, 0, 2)
	if cookie := strings.TrimSpace(c.Cookies(authCookieName)); cookie != "" {
		tokens = append(tokens, cookie)
	}
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, value, found := strings.Cut(header, " ")
	if found && strings.EqualFold(scheme, "Bearer") && strings.TrimSpace(value) != "" {
		tokens = append(tokens, strings.TrimSpace(value))
	}
	return tokens
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  expiresAt,
	})
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  handler.now().Add(-time.Hour),
	})
}
