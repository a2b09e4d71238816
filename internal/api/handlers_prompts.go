// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package api

import (
	"net/http"
	"time"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/prompts"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/store"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/validation"
)

// promptLogEntry is one classified prompt in the log listing.
type promptLogEntry struct {
	UserID   string               `json:"userId"`
	Prompt   string               `json:"prompt"`
	Response string               `json:"response,omitempty"`
	Category prompts.Category     `json:"category"`
	Quality  prompts.QualityScore `json:"quality"`
}

// promptInsights aggregates classification output for the dashboard.
type promptInsights struct {
	Taxonomy            string                   `json:"taxonomy"`
	TotalPrompts        int                      `json:"totalPrompts"`
	CategoryCounts      map[prompts.Category]int `json:"categoryCounts"`
	AverageQualityScore float64                  `json:"averageQualityScore"`
	TopTopics           []prompts.Topic          `json:"topTopics"`
}

// PromptLogs lists classified prompts, date-filtered and paginated.
func (h *Handler) PromptLogs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := h.promptQuery(r)
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	raw, err := h.store.ScanPrompts(r.Context(), store.PromptFilter{UserID: q.UserID})
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabaseError, "Failed to fetch prompts", err)
		return
	}
	if q.UserID != "" && len(raw) == 0 {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No prompts found for user", nil)
		return
	}

	taxonomy := prompts.TaxonomyByName(q.Taxonomy)
	filtered := filterPrompts(r.Context(), raw, parseDateRange(q.StartDate, q.EndDate))

	entries := make([]promptLogEntry, len(filtered))
	for i, rec := range filtered {
		entries[i] = promptLogEntry{
			UserID:   rec.UserID,
			Prompt:   rec.Prompt,
			Response: rec.Response,
			Category: taxonomy.Categorize(rec.Prompt),
			Quality:  prompts.ScoreQuality(rec.Prompt),
		}
	}

	total := len(entries)
	lo, hi := pageBounds(total, q.Limit, q.Offset)

	respondSuccess(w, r, models.PagedResult{
		Items:   entries[lo:hi],
		Total:   total,
		Limit:   q.Limit,
		Offset:  q.Offset,
		HasMore: hi < total,
	}, start)
}

// PromptInsights returns category counts, quality statistics, and top
// topics over the filter window.
func (h *Handler) PromptInsights(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := h.promptQuery(r)
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	raw, err := h.store.ScanPrompts(r.Context(), store.PromptFilter{UserID: q.UserID})
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabaseError, "Failed to fetch prompts", err)
		return
	}
	if q.UserID != "" && len(raw) == 0 {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No prompts found for user", nil)
		return
	}

	taxonomy := prompts.TaxonomyByName(q.Taxonomy)
	filtered := filterPrompts(r.Context(), raw, parseDateRange(q.StartDate, q.EndDate))

	counts := make(map[prompts.Category]int)
	texts := make([]string, len(filtered))
	var qualitySum int
	for i, rec := range filtered {
		counts[taxonomy.Categorize(rec.Prompt)]++
		qualitySum += prompts.ScoreQuality(rec.Prompt).Score
		texts[i] = rec.Prompt
	}

	insights := promptInsights{
		Taxonomy:       taxonomy.Name,
		TotalPrompts:   len(filtered),
		CategoryCounts: counts,
		TopTopics:      prompts.ExtractTopics(texts, h.cfg.Analytics.TopTopicsLimit),
	}
	if len(filtered) > 0 {
		insights.AverageQualityScore = float64(qualitySum) / float64(len(filtered))
	}

	respondSuccess(w, r, insights, start)
}
