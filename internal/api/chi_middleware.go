// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// RateLimitConfig defines one endpoint group's rate limit.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Endpoint-group presets. Login is strict against credential stuffing;
// analytics reads are permissive because a dashboard load fans out
// into several chart requests; exports are capped because they scan
// the full keyspace.
var (
	rateLimitLogin     = RateLimitConfig{Requests: 5, Window: 5 * time.Minute}
	rateLimitHealth    = RateLimitConfig{Requests: 1000, Window: time.Minute}
	rateLimitAnalytics = RateLimitConfig{Requests: 600, Window: time.Minute}
	rateLimitExport    = RateLimitConfig{Requests: 10, Window: time.Minute}
)

// ChiMiddleware builds CORS and rate-limit middleware from config.
type ChiMiddleware struct {
	cors              func(http.Handler) http.Handler
	defaultLimit      RateLimitConfig
	rateLimitDisabled bool
}

// NewChiMiddleware wires the cors handler and the default API limit.
func NewChiMiddleware(corsOrigins []string, rateLimitReqs int, rateLimitWindow time.Duration, rateLimitDisabled bool) *ChiMiddleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	return &ChiMiddleware{
		cors:              corsHandler,
		defaultLimit:      RateLimitConfig{Requests: rateLimitReqs, Window: rateLimitWindow},
		rateLimitDisabled: rateLimitDisabled,
	}
}

// CORS returns the shared CORS middleware. It must be global so
// OPTIONS preflights reach it.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

func (m *ChiMiddleware) limit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if m.rateLimitDisabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(cfg.Requests, cfg.Window)
}

// RateLimit is the default per-IP API limit.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.limit(m.defaultLimit)
}

// RateLimitLogin is the strict login limit.
func (m *ChiMiddleware) RateLimitLogin() func(http.Handler) http.Handler {
	return m.limit(rateLimitLogin)
}

// RateLimitHealth allows frequent monitoring probes.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.limit(rateLimitHealth)
}

// RateLimitAnalytics is the permissive read-path limit.
func (m *ChiMiddleware) RateLimitAnalytics() func(http.Handler) http.Handler {
	return m.limit(rateLimitAnalytics)
}

// RateLimitExport caps CSV generation.
func (m *ChiMiddleware) RateLimitExport() func(http.Handler) http.Handler {
	return m.limit(rateLimitExport)
}
