// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package api

import "net/http"

// Request structs carry query parameters through validation. Tags
// mirror the boundary contract: dates are YYYY-MM-DD, enums are closed
// sets, the adoption window is 1-365 days.

// ActivityQuery is shared by logs, summary, trends, and correlation.
type ActivityQuery struct {
	UserID    string `validate:"omitempty,max=128"`
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	Interval  string `validate:"omitempty,oneof=day week month"`
	Metric    string `validate:"omitempty,oneof=aiCodeLines chatInteractions inlineSuggestions inlineAcceptances"`
	Limit     int    `validate:"min=1"`
	Offset    int    `validate:"min=0"`
}

// AdoptionQuery drives the before/after comparison.
type AdoptionQuery struct {
	UserID          string `validate:"omitempty,max=128"`
	DaysBeforeAfter int    `validate:"min=1,max=365"`
}

// ExportQuery drives CSV downloads. Dates are required because they
// name the attachment.
type ExportQuery struct {
	UserID    string `validate:"omitempty,max=128"`
	Type      string `validate:"required,oneof=productivity adoption correlation"`
	StartDate string `validate:"required,datetime=2006-01-02"`
	EndDate   string `validate:"required,datetime=2006-01-02"`
	Interval  string `validate:"omitempty,oneof=day week month"`
	Metric    string `validate:"omitempty,oneof=aiCodeLines chatInteractions inlineSuggestions inlineAcceptances"`
}

// PromptQuery is shared by the prompt log and insights endpoints.
type PromptQuery struct {
	UserID    string `validate:"omitempty,max=128"`
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	Taxonomy  string `validate:"omitempty,oneof=broad narrow"`
	Limit     int    `validate:"min=1"`
	Offset    int    `validate:"min=0"`
}

// LoginRequest is the JSON body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) activityQuery(r *http.Request) ActivityQuery {
	return ActivityQuery{
		UserID:    r.URL.Query().Get("userId"),
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
		Interval:  getStringParam(r, "interval", "day"),
		Metric:    getStringParam(r, "metric", "aiCodeLines"),
		Limit:     h.clampLimit(getIntParam(r, "limit", h.cfg.API.DefaultPageSize)),
		Offset:    getIntParam(r, "offset", 0),
	}
}

func (h *Handler) adoptionQuery(r *http.Request) AdoptionQuery {
	return AdoptionQuery{
		UserID:          r.URL.Query().Get("userId"),
		DaysBeforeAfter: getIntParam(r, "daysBeforeAfter", h.cfg.Analytics.DefaultDaysBeforeAfter),
	}
}

func (h *Handler) exportQuery(r *http.Request) ExportQuery {
	return ExportQuery{
		UserID:    r.URL.Query().Get("userId"),
		Type:      r.URL.Query().Get("type"),
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
		Interval:  getStringParam(r, "interval", "day"),
		Metric:    getStringParam(r, "metric", "aiCodeLines"),
	}
}

func (h *Handler) promptQuery(r *http.Request) PromptQuery {
	return PromptQuery{
		UserID:    r.URL.Query().Get("userId"),
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
		Taxonomy:  getStringParam(r, "taxonomy", "broad"),
		Limit:     h.clampLimit(getIntParam(r, "limit", h.cfg.API.DefaultPageSize)),
		Offset:    getIntParam(r, "offset", 0),
	}
}

// clampLimit caps requested page sizes to the configured maximum.
func (h *Handler) clampLimit(limit int) int {
	if limit > h.cfg.API.MaxPageSize {
		return h.cfg.API.MaxPageSize
	}
	return limit
}
