// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package api

import (
	"context"
	"time"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/logging"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/normalize"
)

// dateRange is an inclusive [start, end] day window. Zero bounds are
// open on that side.
type dateRange struct {
	start time.Time
	end   time.Time
	open  bool
}

// parseDateRange builds a range from validated YYYY-MM-DD parameters.
// Both empty means no filtering.
func parseDateRange(startDate, endDate string) dateRange {
	var dr dateRange
	if startDate == "" && endDate == "" {
		dr.open = true
		return dr
	}
	if startDate != "" {
		dr.start, _ = normalize.Day(startDate)
	}
	if endDate != "" {
		dr.end, _ = normalize.Day(endDate)
	}
	return dr
}

func (dr dateRange) contains(t time.Time) bool {
	if dr.open {
		return true
	}
	if !dr.start.IsZero() && t.Before(dr.start) {
		return false
	}
	if !dr.end.IsZero() && t.After(dr.end) {
		return false
	}
	return true
}

// filterActivities applies the date range as a secondary pass over the
// store scan. Records whose dates cannot be normalized are excluded
// from a bounded range with a warning, never dropped silently and never
// fatal; with an open range they pass through untouched.
func filterActivities(ctx context.Context, records []models.NormalizedActivity, dr dateRange) []models.NormalizedActivity {
	if dr.open {
		return records
	}

	filtered := make([]models.NormalizedActivity, 0, len(records))
	for _, rec := range records {
		day, ok := normalize.Day(rec.Date)
		if !ok {
			logging.Ctx(ctx).Warn().
				Str("userId", rec.UserID).
				Str("date", rec.Date).
				Msg("Activity record excluded from date filter: unparsable date")
			continue
		}
		if dr.contains(day) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// filterPrompts applies the same range over prompt timestamps using the
// normalizer's precedence rules.
func filterPrompts(ctx context.Context, records []models.PromptRecord, dr dateRange) []models.PromptRecord {
	if dr.open {
		return records
	}

	filtered := make([]models.PromptRecord, 0, len(records))
	for i := range records {
		ts, ok := normalize.PromptTime(&records[i])
		if !ok {
			logging.Ctx(ctx).Warn().
				Str("userId", records[i].UserID).
				Msg("Prompt record excluded from date filter: unresolvable timestamp")
			continue
		}
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		if dr.contains(day) {
			filtered = append(filtered, records[i])
		}
	}
	return filtered
}

// pageBounds clamps limit/offset paging to the slice size.
func pageBounds(total, limit, offset int) (int, int) {
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return offset, end
}
