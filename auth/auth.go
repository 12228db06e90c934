// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/danielhkuo/censo-electoral/models"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token format")
)

// SessionClaims are the claims the auth provider puts in a session token
type SessionClaims struct {
	Role            string `json:"role"`
	LocalDistrictID *int64 `json:"distritoLocalId,omitempty"`
	MunicipalityID  *int64 `json:"municipioId,omitempty"`
	jwt.RegisteredClaims
}

// ParseSession verifies an HS256 session token and returns the caller identity.
// Every failure is reported as ErrUnauthorized.
func ParseSession(tokenString, secret string) (models.Session, error) {
	if tokenString == "" || secret == "" {
		return models.Session{}, ErrUnauthorized
	}

	var claims SessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if !token.Valid {
		return models.Session{}, ErrUnauthorized
	}

	role := models.Role(claims.Role)
	if !role.Valid() {
		return models.Session{}, fmt.Errorf("%w: unknown role %q", ErrUnauthorized, claims.Role)
	}

	return models.Session{
		UserID:          claims.Subject,
		Role:            role,
		LocalDistrictID: claims.LocalDistrictID,
		MunicipalityID:  claims.MunicipalityID,
	}, nil
}

// IssueSession signs a session token. The auth provider does this in
// production; the service only needs it for tooling and tests.
func IssueSession(session models.Session, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("session secret required")
	}

	now := time.Now()
	claims := SessionClaims{
		Role:            string(session.Role),
		LocalDistrictID: session.LocalDistrictID,
		MunicipalityID:  session.MunicipalityID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// BearerToken extracts the token from an Authorization header value
func BearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}
