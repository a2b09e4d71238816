// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

// Package normalize reconciles the heterogeneous field encodings found in
// stored records into comparable values.
//
// Upstream writers were not consistent: metric counts arrive as numbers or
// numeric strings, prompt timestamps arrive as a plain ISO string, a wrapped
// attribute value ({"S": "..."}), or under the alternate CreatedAt field.
// Every bucketing and filtering path must go through this package so that
// range boundaries and defaults agree everywhere.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
)

// Count coerces a raw metric value into a non-negative integer.
// Accepts JSON numbers (float64 after decoding), integers, and numeric
// strings. Absent, negative, or unparsable values yield 0. Never errors.
func Count(raw any) int {
	switch v := raw.(type) {
	case nil:
		return 0
	case int:
		if v < 0 {
			return 0
		}
		return v
	case int64:
		if v < 0 {
			return 0
		}
		return int(v)
	case float64:
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(v)
	case json.Number:
		return countFromString(v.String())
	case string:
		return countFromString(v)
	default:
		return 0
	}
}

// countFromString parses a numeric string, tolerating float formatting.
func countFromString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0
		}
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int(f)
	}
	return 0
}

// Activity converts a wire ActivityRecord into its normalized form with all
// metric fields coerced to non-negative integers.
func Activity(rec models.ActivityRecord) models.NormalizedActivity {
	return models.NormalizedActivity{
		UserID:                 rec.UserID,
		Date:                   rec.Date,
		ChatAICodeLines:        Count(rec.ChatAICodeLines),
		ChatMessagesInteracted: Count(rec.ChatMessagesInteracted),
		InlineAICodeLines:      Count(rec.InlineAICodeLines),
		InlineSuggestionsCount: Count(rec.InlineSuggestionsCount),
		InlineAcceptanceCount:  Count(rec.InlineAcceptanceCount),
	}
}

// Activities normalizes a batch of wire records.
func Activities(recs []models.ActivityRecord) []models.NormalizedActivity {
	out := make([]models.NormalizedActivity, len(recs))
	for i, rec := range recs {
		out[i] = Activity(rec)
	}
	return out
}

// attributeValue is the wrapped wire encoding {"S": "..."}.
type attributeValue struct {
	S string `json:"S"`
}

// timeLayouts are the accepted timestamp formats, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseInstant parses an ISO-ish timestamp string.
func parseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// PromptTime resolves the timestamp of a prompt record, trying in order:
//
//  1. TimeStamp as an ISO-parseable JSON string
//  2. TimeStamp as an object carrying the string under key "S"
//  3. CreatedAt as an ISO-parseable string
//
// The boolean is false when none apply. Callers must treat that as "exclude
// from range filters" and keep processing the batch; it is not an error.
func PromptTime(rec *models.PromptRecord) (time.Time, bool) {
	if len(rec.TimeStamp) > 0 {
		var s string
		if err := json.Unmarshal(rec.TimeStamp, &s); err == nil {
			if t, ok := parseInstant(s); ok {
				return t, true
			}
		}

		var av attributeValue
		if err := json.Unmarshal(rec.TimeStamp, &av); err == nil && av.S != "" {
			if t, ok := parseInstant(av.S); ok {
				return t, true
			}
		}
	}

	if rec.CreatedAt != "" {
		if t, ok := parseInstant(rec.CreatedAt); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// Day parses a calendar date in YYYY-MM-DD form.
func Day(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
