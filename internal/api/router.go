// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/auth"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/config"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/store"
)

// Router assembles the middleware stack and route groups.
type Router struct {
	handler       *Handler
	authMgr       *auth.Manager
	chiMiddleware *ChiMiddleware
}

// NewRouter wires handlers and middleware from config.
func NewRouter(st *store.Store, cfg *config.Config) *Router {
	authMgr := auth.NewManager(cfg.Security)
	return &Router{
		handler: NewHandler(st, authMgr, cfg),
		authMgr: authMgr,
		chiMiddleware: NewChiMiddleware(
			cfg.Security.CORSOrigins,
			cfg.Security.RateLimitReqs,
			cfg.Security.RateLimitWindow,
			cfg.Security.RateLimitDisabled,
		),
	}
}

// Setup builds the chi handler tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global stack, in order: tracing context first so every later
	// log line carries IDs, then proxy-aware IP, panic recovery, CORS.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, models.ErrCodeNotFound, "Route not found", nil)
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
	})

	authMW := router.authMgr.Middleware(router.handler.unauthorized)

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(PrometheusMetrics())
		r.Use(authMW)
		r.Get("/", router.handler.Users)
	})

	r.Route("/api/v1/activity", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(PrometheusMetrics())
		r.Use(authMW)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitAnalytics())
			r.Get("/logs", router.handler.ActivityLogs)
			r.Get("/summary", router.handler.Summary)
			r.Get("/trends", router.handler.Trends)
			r.Get("/adoption", router.handler.Adoption)
			r.Get("/correlation", router.handler.Correlation)
		})

		r.With(router.chiMiddleware.RateLimitExport()).Get("/export", router.handler.Export)
	})

	r.Route("/api/v1/prompts", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAnalytics())
		r.Use(APISecurityHeaders())
		r.Use(PrometheusMetrics())
		r.Use(authMW)
		r.Get("/", router.handler.PromptLogs)
		r.Get("/insights", router.handler.PromptInsights)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
