// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/auth"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/config"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/store"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/validation"
)

// Handler holds the dependencies shared by all endpoints.
type Handler struct {
	store   *store.Store
	authMgr *auth.Manager
	cfg     *config.Config
	started time.Time
}

// NewHandler builds the handler set.
func NewHandler(st *store.Store, authMgr *auth.Manager, cfg *config.Config) *Handler {
	return &Handler{
		store:   st,
		authMgr: authMgr,
		cfg:     cfg,
		started: time.Now(),
	}
}

// Health reports liveness plus a store reachability probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status := "healthy"
	storeStatus := "ok"
	if _, err := h.store.ListUserIDs(r.Context()); err != nil {
		status = "degraded"
		storeStatus = "unreachable"
	}

	respondSuccess(w, r, map[string]interface{}{
		"status":         status,
		"store":          storeStatus,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
	}, start)
}

// Login exchanges the configured admin credential for a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeInvalidParameters, "Request body must be JSON with username and password", err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	token, err := h.authMgr.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(w, r, http.StatusUnauthorized, models.ErrCodeUnauthorized, "Invalid username or password", nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternalError, "Login failed", err)
		return
	}

	respondSuccess(w, r, map[string]interface{}{
		"token":      token,
		"token_type": "Bearer",
		"expires_in": int64(h.cfg.Security.SessionTimeout.Seconds()),
	}, start)
}

// Users lists the subscription directory.
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	subs, err := h.store.ListSubscriptions(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabaseError, "Failed to list users", err)
		return
	}
	if subs == nil {
		subs = []models.Subscription{}
	}

	respondSuccess(w, r, subs, start)
}

// unauthorized is the middleware callback keeping 401 responses in the
// standard envelope.
func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusUnauthorized, models.ErrCodeUnauthorized, "Authentication required", nil)
}
