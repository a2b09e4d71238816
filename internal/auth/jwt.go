// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

// Package auth implements the dashboard's placeholder authentication:
// a single configured admin credential exchanged for an HS256 JWT. The
// middleware is a passthrough when auth mode is "none", which is the
// default for local development.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/config"
)

// Errors surfaced to the API layer.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Manager issues and validates access tokens against the configured
// admin credential.
type Manager struct {
	cfg config.SecurityConfig
}

// NewManager builds a Manager from the security config.
func NewManager(cfg config.SecurityConfig) *Manager {
	return &Manager{cfg: cfg}
}

// Enabled reports whether token auth is enforced.
func (m *Manager) Enabled() bool {
	return m.cfg.AuthMode == "jwt"
}

// Claims is the token payload.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Authenticate checks a username/password pair and returns a signed
// token on success.
func (m *Manager) Authenticate(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.cfg.AdminUsername)) == 1
	if !userOK || !verifyPassword(m.cfg.AdminPassword, password) {
		return "", ErrInvalidCredentials
	}
	return m.generateToken(username)
}

func (m *Manager) generateToken(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.SessionTimeout)),
			Issuer:    "amazonq-dashboard",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token string.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(m.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Middleware enforces bearer-token auth when enabled. The unauthorized
// response body is written by the handler-layer wrapper passed in, so
// the API error envelope stays consistent.
func (m *Manager) Middleware(unauthorized http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				unauthorized(w, r)
				return
			}
			if _, err := m.ValidateToken(tokenString); err != nil {
				unauthorized(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// verifyPassword accepts either a bcrypt hash or, for local
// development, a plain configured value. Hashes are detected by the
// "$2" prefix bcrypt always emits.
func verifyPassword(configured, supplied string) bool {
	if configured == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(supplied)) == 1
}
