// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/analytics"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/export"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/logging"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/metrics"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/normalize"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/store"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/validation"
)

// fetchActivities scans, normalizes, and date-filters activity records
// for the query. The NOT_FOUND condition (userId given, nothing stored
// for it) is reported before date filtering so an empty window is not
// mistaken for a missing user.
func (h *Handler) fetchActivities(ctx context.Context, userID, startDate, endDate string) ([]models.NormalizedActivity, bool, error) {
	raw, err := h.store.ScanActivities(ctx, store.ActivityFilter{UserID: userID})
	if err != nil {
		return nil, false, err
	}
	if userID != "" && len(raw) == 0 {
		return nil, false, nil
	}

	normalized := normalize.Activities(raw)
	return filterActivities(ctx, normalized, parseDateRange(startDate, endDate)), true, nil
}

// ActivityLogs returns normalized activity records, paginated.
func (h *Handler) ActivityLogs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := h.activityQuery(r)
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	records, found, err := h.fetchActivities(r.Context(), q.UserID, q.StartDate, q.EndDate)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabaseError, "Failed to fetch activity records", err)
		return
	}
	if !found {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No records found for user", nil)
		return
	}

	total := len(records)
	lo, hi := pageBounds(total, q.Limit, q.Offset)

	respondSuccess(w, r, models.PagedResult{
		Items:   records[lo:hi],
		Total:   total,
		Limit:   q.Limit,
		Offset:  q.Offset,
		HasMore: hi < total,
	}, start)
}

// Summary returns AggregateMetrics for the filter window.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := h.activityQuery(r)
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	records, found, err := h.fetchActivities(r.Context(), q.UserID, q.StartDate, q.EndDate)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabaseError, "Failed to fetch activity records", err)
		return
	}
	if !found {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No records found for user", nil)
		return
	}

	respondSuccess(w, r, analytics.Aggregate(records), start)
}

// Trends returns the bucketed trend series for the window.
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := h.activityQuery(r)
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	records, found, err := h.fetchActivities(r.Context(), q.UserID, q.StartDate, q.EndDate)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabaseError, "Failed to fetch activity records", err)
		return
	}
	if !found {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No records found for user", nil)
		return
	}

	buckets := analytics.BucketRecords(records, analytics.Granularity(q.Interval))
	respondSuccess(w, r, analytics.ComputeTrends(buckets), start)
}

// Adoption returns the before/after comparison anchored on the user's
// earliest activity.
func (h *Handler) Adoption(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := h.adoptionQuery(r)
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	records, found, err := h.fetchActivities(r.Context(), q.UserID, "", "")
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabaseError, "Failed to fetch activity records", err)
		return
	}
	if !found {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No records found for user", nil)
		return
	}

	report, err := analytics.BuildAdoptionReport(records, q.DaysBeforeAfter)
	if err != nil {
		if errors.Is(err, analytics.ErrNoDatedRecords) {
			respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No dated records to anchor adoption on", nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternalError, "Failed to build adoption report", err)
		return
	}

	respondSuccess(w, r, report, start)
}

// Correlation returns Pearson coefficients for the target metric over
// daily series.
func (h *Handler) Correlation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := h.activityQuery(r)
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	records, found, err := h.fetchActivities(r.Context(), q.UserID, q.StartDate, q.EndDate)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabaseError, "Failed to fetch activity records", err)
		return
	}
	if !found {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No records found for user", nil)
		return
	}

	respondSuccess(w, r, analytics.Correlate(records, q.Metric), start)
}

// Export streams one of the three CSV reports as an attachment.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	q := h.exportQuery(r)
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	records, found, err := h.fetchActivities(r.Context(), q.UserID, q.StartDate, q.EndDate)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeDatabaseError, "Failed to fetch activity records", err)
		return
	}
	if !found {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No records found for user", nil)
		return
	}

	var body string
	switch q.Type {
	case export.TypeProductivity:
		body = export.ProductivityCSV(analytics.BucketRecords(records, analytics.Granularity(q.Interval)))
	case export.TypeAdoption:
		report, err := analytics.BuildAdoptionReport(records, h.cfg.Analytics.DefaultDaysBeforeAfter)
		if err != nil {
			if errors.Is(err, analytics.ErrNoDatedRecords) {
				respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "No dated records to anchor adoption on", nil)
				return
			}
			respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternalError, "Failed to build adoption report", err)
			return
		}
		body = export.AdoptionCSV(report)
	case export.TypeCorrelation:
		body = export.CorrelationCSV(analytics.Correlate(records, q.Metric))
	}

	metrics.ExportsGenerated.WithLabelValues(q.Type).Inc()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=`+export.Filename(q.Type, q.StartDate, q.EndDate))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write CSV response")
	}
}
