// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/config"
)

func testSecurityConfig() config.SecurityConfig {
	return config.SecurityConfig{
		AuthMode:       "jwt",
		JWTSecret:      "0123456789abcdef0123456789abcdef",
		SessionTimeout: time.Hour,
		AdminUsername:  "admin",
		AdminPassword:  "hunter2-local-dev",
	}
}

func TestAuthenticateAndValidate(t *testing.T) {
	m := NewManager(testSecurityConfig())

	token, err := m.Authenticate("admin", "hunter2-local-dev")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("username claim = %q", claims.Username)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Error("expiry should be bounded by session timeout")
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	m := NewManager(testSecurityConfig())

	if _, err := m.Authenticate("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, err := m.Authenticate("root", "hunter2-local-dev"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong username: err = %v", err)
	}
}

func TestAuthenticateBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	cfg := testSecurityConfig()
	cfg.AdminPassword = string(hash)
	m := NewManager(cfg)

	if _, err := m.Authenticate("admin", "s3cret"); err != nil {
		t.Errorf("bcrypt hash should verify: %v", err)
	}
	if _, err := m.Authenticate("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password against hash: err = %v", err)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	m := NewManager(testSecurityConfig())
	token, err := m.Authenticate("admin", "hunter2-local-dev")
	if err != nil {
		t.Fatal(err)
	}

	other := testSecurityConfig()
	other.JWTSecret = "ffffffffffffffffffffffffffffffff"
	if _, err := NewManager(other).ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token signed with another secret must fail, got %v", err)
	}

	if _, err := m.ValidateToken(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("mangled token must fail, got %v", err)
	}
	if _, err := m.ValidateToken(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("empty token must fail, got %v", err)
	}
}

func TestMiddleware(t *testing.T) {
	m := NewManager(testSecurityConfig())
	token, err := m.Authenticate("admin", "hunter2-local-dev")
	if err != nil {
		t.Fatal(err)
	}

	unauthorized := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}
	handler := m.Middleware(unauthorized)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		header   string
		expected int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.expected {
				t.Errorf("status = %d, want %d", rec.Code, tt.expected)
			}
		})
	}
}

func TestMiddlewarePassthroughWhenDisabled(t *testing.T) {
	cfg := testSecurityConfig()
	cfg.AuthMode = "none"
	m := NewManager(cfg)

	handler := m.Middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("disabled auth must pass through, got %d", rec.Code)
	}
}
