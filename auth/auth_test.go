// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/danielhkuo/censo-electoral/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestIssueAndParseSession(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
	}{
		{"super user", models.Session{UserID: "u1", Role: models.RoleSuper}},
		{"admin", models.Session{UserID: "u2", Role: models.RoleAdmin}},
		{
			"editor with jurisdiction",
			models.Session{UserID: "u3", Role: models.RoleEditor, LocalDistrictID: int64Ptr(4), MunicipalityID: int64Ptr(12)},
		},
		{"basic without jurisdiction", models.Session{UserID: "u4", Role: models.RoleBasic}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := IssueSession(tt.session, "secret", time.Hour)
			if err != nil {
				t.Fatalf("IssueSession() error = %v", err)
			}

			got, err := ParseSession(token, "secret")
			if err != nil {
				t.Fatalf("ParseSession() error = %v", err)
			}

			if got.UserID != tt.session.UserID {
				t.Errorf("UserID = %q, want %q", got.UserID, tt.session.UserID)
			}
			if got.Role != tt.session.Role {
				t.Errorf("Role = %q, want %q", got.Role, tt.session.Role)
			}
			if (got.LocalDistrictID == nil) != (tt.session.LocalDistrictID == nil) {
				t.Fatalf("LocalDistrictID presence mismatch: got %v", got.LocalDistrictID)
			}
			if got.LocalDistrictID != nil && *got.LocalDistrictID != *tt.session.LocalDistrictID {
				t.Errorf("LocalDistrictID = %d, want %d", *got.LocalDistrictID, *tt.session.LocalDistrictID)
			}
			if (got.MunicipalityID == nil) != (tt.session.MunicipalityID == nil) {
				t.Fatalf("MunicipalityID presence mismatch: got %v", got.MunicipalityID)
			}
		})
	}
}

func TestParseSession_Rejects(t *testing.T) {
	valid, _ := IssueSession(models.Session{UserID: "u1", Role: models.RoleAdmin}, "secret", time.Hour)
	expired, _ := IssueSession(models.Session{UserID: "u1", Role: models.RoleAdmin}, "secret", -time.Minute)
	unknownRole, _ := IssueSession(models.Session{UserID: "u1", Role: models.Role("ROOT")}, "secret", time.Hour)

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{Role: string(models.RoleSuper)})
	unsigned, _ := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"empty token", "", "secret"},
		{"empty secret", valid, ""},
		{"wrong secret", valid, "other"},
		{"expired", expired, "secret"},
		{"unknown role", unknownRole, "secret"},
		{"alg none", unsigned, "secret"},
		{"garbage", "not.a.token", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSession(tt.token, tt.secret)
			if !errors.Is(err, ErrUnauthorized) {
				t.Errorf("ParseSession() error = %v, want ErrUnauthorized", err)
			}
		})
	}
}

func TestIssueSession_RequiresSecret(t *testing.T) {
	if _, err := IssueSession(models.Session{Role: models.RoleAdmin}, "", time.Hour); err == nil {
		t.Error("IssueSession() with empty secret should fail")
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"extra spaces", "Bearer   abc  ", "abc", false},
		{"missing prefix", "abc.def.ghi", "", true},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", true},
		{"empty token", "Bearer ", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidToken {
				t.Errorf("BearerToken() error = %v, want %v", err, ErrInvalidToken)
			}
			if got != tt.want {
				t.Errorf("BearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
