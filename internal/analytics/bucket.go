// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

// Package analytics implements the aggregation core of the dashboard:
// time bucketing, trend series, before/after adoption comparison, and
// metric correlation. All functions are pure and allocate fresh output
// per call, so they are safe to invoke concurrently on disjoint inputs.
package analytics

import (
	"sort"
	"time"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/logging"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/normalize"
)

// Granularity selects the bucketing interval.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Metric names used as map keys throughout trend, aggregate, and
// correlation results.
const (
	MetricAICodeLines       = "aiCodeLines"
	MetricChatInteractions  = "chatInteractions"
	MetricInlineSuggestions = "inlineSuggestions"
	MetricInlineAcceptances = "inlineAcceptances"
	MetricAcceptanceRate    = "acceptanceRate"
)

// CoreMetrics lists the four stored metrics in canonical column order.
var CoreMetrics = []string{
	MetricAICodeLines,
	MetricChatInteractions,
	MetricInlineSuggestions,
	MetricInlineAcceptances,
}

// Bucket is one time-bucket of summed activity.
type Bucket struct {
	// Key is "YYYY-MM-DD" for day and week granularity (week uses the ISO
	// week's Monday) and "YYYY-MM" for month granularity. Day keys are the
	// record's date string verbatim: inconsistent upstream formats produce
	// separate buckets rather than being silently merged.
	Key string `json:"key"`

	AICodeLines       int `json:"aiCodeLines"`
	ChatInteractions  int `json:"chatInteractions"`
	InlineSuggestions int `json:"inlineSuggestions"`
	InlineAcceptances int `json:"inlineAcceptances"`

	// UniqueUsers is the cardinality of contributing user IDs, finalized
	// after all records are folded.
	UniqueUsers int `json:"uniqueUsers"`
}

// MetricValue returns the named core metric as a float64.
// Unknown names return 0.
func (b Bucket) MetricValue(name string) float64 {
	switch name {
	case MetricAICodeLines:
		return float64(b.AICodeLines)
	case MetricChatInteractions:
		return float64(b.ChatInteractions)
	case MetricInlineSuggestions:
		return float64(b.InlineSuggestions)
	case MetricInlineAcceptances:
		return float64(b.InlineAcceptances)
	default:
		return 0
	}
}

// AcceptanceRate is the bucket's acceptance percentage, 0 when there were
// no suggestions.
func (b Bucket) AcceptanceRate() float64 {
	if b.InlineSuggestions <= 0 {
		return 0
	}
	return 100 * float64(b.InlineAcceptances) / float64(b.InlineSuggestions)
}

// BucketRecords groups normalized activity records into buckets of the
// given granularity, sorted ascending by the parsed date of their key.
// Records whose date cannot be parsed are skipped for week and month
// granularity (there is no bucket to address) with a warning; for day
// granularity the raw string is the key, so they still land in a bucket.
func BucketRecords(records []models.NormalizedActivity, g Granularity) []Bucket {
	type fold struct {
		bucket Bucket
		users  map[string]struct{}
	}
	folds := make(map[string]*fold)

	for _, rec := range records {
		key, ok := bucketKey(rec.Date, g)
		if !ok {
			logging.Warn().
				Str("user_id", rec.UserID).
				Str("date", rec.Date).
				Str("granularity", string(g)).
				Msg("Skipping activity record with unparsable date")
			continue
		}

		f, exists := folds[key]
		if !exists {
			f = &fold{bucket: Bucket{Key: key}, users: make(map[string]struct{})}
			folds[key] = f
		}

		// Chat and inline AI code lines contribute jointly.
		f.bucket.AICodeLines += rec.ChatAICodeLines + rec.InlineAICodeLines
		f.bucket.ChatInteractions += rec.ChatMessagesInteracted
		f.bucket.InlineSuggestions += rec.InlineSuggestionsCount
		f.bucket.InlineAcceptances += rec.InlineAcceptanceCount
		f.users[rec.UserID] = struct{}{}
	}

	buckets := make([]Bucket, 0, len(folds))
	for _, f := range folds {
		f.bucket.UniqueUsers = len(f.users)
		buckets = append(buckets, f.bucket)
	}

	sortBuckets(buckets, g)
	return buckets
}

// bucketKey derives the bucket key for a record date.
func bucketKey(date string, g Granularity) (string, bool) {
	switch g {
	case GranularityWeek:
		day, ok := normalize.Day(date)
		if !ok {
			return "", false
		}
		return isoWeekStart(day).Format("2006-01-02"), true
	case GranularityMonth:
		day, ok := normalize.Day(date)
		if !ok {
			return "", false
		}
		return day.Format("2006-01"), true
	default:
		// Day keys are verbatim; format fidelity is the caller's concern.
		return date, date != ""
	}
}

// isoWeekStart returns the Monday of t's ISO week.
func isoWeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return t.AddDate(0, 0, 1-weekday)
}

// sortBuckets orders buckets ascending by the parsed date of their key.
// Keys that fail to parse sort lexicographically after parseable ones;
// non-date-like day keys are an upstream data error, not a crash.
func sortBuckets(buckets []Bucket, g Granularity) {
	layout := "2006-01-02"
	if g == GranularityMonth {
		layout = "2006-01"
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		ti, erri := time.Parse(layout, buckets[i].Key)
		tj, errj := time.Parse(layout, buckets[j].Key)
		switch {
		case erri == nil && errj == nil:
			return ti.Before(tj)
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return buckets[i].Key < buckets[j].Key
		}
	})
}
