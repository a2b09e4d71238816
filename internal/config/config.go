// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

// Package config provides layered application configuration:
// built-in defaults, an optional YAML file, and environment variables,
// in increasing order of precedence. Handlers and the analytics core never
// read environment variables directly; everything flows through the Config
// struct assembled at startup.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for the dashboard backend.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// StoreConfig holds document store settings.
type StoreConfig struct {
	// Path is the BadgerDB data directory.
	Path string `koanf:"path"`

	// InMemory runs the store without persistence. Used by tests and demos.
	InMemory bool `koanf:"in_memory"`

	// SeedMockData loads demo activity/prompt/subscription records at startup
	// when the store is empty.
	SeedMockData bool `koanf:"seed_mock_data"`
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds authentication and rate limiting settings.
type SecurityConfig struct {
	// AuthMode is "none" (placeholder check disabled) or "jwt".
	AuthMode string `koanf:"auth_mode"`

	JWTSecret      string        `koanf:"jwt_secret"`
	SessionTimeout time.Duration `koanf:"session_timeout"`

	AdminUsername string `koanf:"admin_username"`
	// AdminPassword is a bcrypt hash, or a plain value for local development.
	AdminPassword string `koanf:"admin_password"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// AnalyticsConfig holds tunables for the analytics endpoints.
type AnalyticsConfig struct {
	// DefaultDaysBeforeAfter is the adoption comparison window when the
	// caller does not supply daysBeforeAfter.
	DefaultDaysBeforeAfter int `koanf:"default_days_before_after"`

	// TopTopicsLimit caps the prompt topic frequency list.
	TopTopicsLimit int `koanf:"top_topics_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Store: StoreConfig{
			Path:         "/data/dashboard",
			InMemory:     false,
			SeedMockData: false,
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Security: SecurityConfig{
			AuthMode:          "none",
			JWTSecret:         "",
			SessionTimeout:    24 * time.Hour,
			AdminUsername:     "",
			AdminPassword:     "",
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Analytics: AnalyticsConfig{
			DefaultDaysBeforeAfter: 30,
			TopTopicsLimit:         20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for invalid or inconsistent values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path is required when store.in_memory is false")
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("api.default_page_size must be between 1 and api.max_page_size (%d)", c.API.MaxPageSize)
	}

	switch strings.ToLower(c.Security.AuthMode) {
	case "none":
	case "jwt":
		if c.Security.JWTSecret == "" {
			return fmt.Errorf("security.jwt_secret is required when security.auth_mode is jwt")
		}
		if len(c.Security.JWTSecret) < 32 && c.Server.Environment == "production" {
			return fmt.Errorf("security.jwt_secret must be at least 32 characters in production")
		}
	default:
		return fmt.Errorf("security.auth_mode must be none or jwt, got %q", c.Security.AuthMode)
	}

	if c.Analytics.DefaultDaysBeforeAfter < 1 || c.Analytics.DefaultDaysBeforeAfter > 365 {
		return fmt.Errorf("analytics.default_days_before_after must be between 1 and 365, got %d", c.Analytics.DefaultDaysBeforeAfter)
	}
	if c.Analytics.TopTopicsLimit < 1 {
		return fmt.Errorf("analytics.top_topics_limit must be positive, got %d", c.Analytics.TopTopicsLimit)
	}

	return nil
}
