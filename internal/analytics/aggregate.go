// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package analytics

import (
	"errors"
	"time"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/normalize"
)

// AggregateMetrics is the scalar reduction of a record set.
type AggregateMetrics struct {
	TotalAICodeLines       int `json:"totalAiCodeLines"`
	TotalChatInteractions  int `json:"totalChatInteractions"`
	TotalInlineSuggestions int `json:"totalInlineSuggestions"`
	TotalInlineAcceptances int `json:"totalInlineAcceptances"`

	// UniqueUsers and ActiveDays are set cardinalities over the record
	// set, not cumulative counters.
	UniqueUsers int `json:"uniqueUsers"`
	ActiveDays  int `json:"activeDays"`
}

// Aggregate reduces records to summary totals. Empty input yields the
// zero value.
func Aggregate(records []models.NormalizedActivity) AggregateMetrics {
	var agg AggregateMetrics
	users := make(map[string]struct{})
	days := make(map[string]struct{})

	for _, rec := range records {
		agg.TotalAICodeLines += rec.ChatAICodeLines + rec.InlineAICodeLines
		agg.TotalChatInteractions += rec.ChatMessagesInteracted
		agg.TotalInlineSuggestions += rec.InlineSuggestionsCount
		agg.TotalInlineAcceptances += rec.InlineAcceptanceCount
		users[rec.UserID] = struct{}{}
		days[rec.Date] = struct{}{}
	}

	agg.UniqueUsers = len(users)
	agg.ActiveDays = len(days)
	return agg
}

// PercentageChange computes the per-field percentage delta between two
// summaries. Zero "before" values follow the GrowthRate convention: 100
// when "after" is positive, 0 otherwise.
func PercentageChange(before, after AggregateMetrics) map[string]float64 {
	return map[string]float64{
		MetricAICodeLines:       GrowthRate(float64(before.TotalAICodeLines), float64(after.TotalAICodeLines)),
		MetricChatInteractions:  GrowthRate(float64(before.TotalChatInteractions), float64(after.TotalChatInteractions)),
		MetricInlineSuggestions: GrowthRate(float64(before.TotalInlineSuggestions), float64(after.TotalInlineSuggestions)),
		MetricInlineAcceptances: GrowthRate(float64(before.TotalInlineAcceptances), float64(after.TotalInlineAcceptances)),
		"uniqueUsers":           GrowthRate(float64(before.UniqueUsers), float64(after.UniqueUsers)),
		"activeDays":            GrowthRate(float64(before.ActiveDays), float64(after.ActiveDays)),
	}
}

// Period is one side of an adoption comparison.
type Period struct {
	StartDate string           `json:"startDate"`
	EndDate   string           `json:"endDate"`
	Metrics   AggregateMetrics `json:"metrics"`
}

// AdoptionReport compares usage before and after a user's adoption date.
type AdoptionReport struct {
	AdoptionDate      string             `json:"adoptionDate"`
	BeforePeriod      Period             `json:"beforePeriod"`
	AfterPeriod       Period             `json:"afterPeriod"`
	PercentageChanges map[string]float64 `json:"percentageChanges"`
}

// ErrNoDatedRecords is returned when no record carries a parseable date,
// so no adoption anchor exists.
var ErrNoDatedRecords = errors.New("no records with parseable dates")

// BuildAdoptionReport anchors on the earliest record date and slices the
// records into a [anchor-days, anchor-1] "before" window and an
// [anchor, anchor+days] "after" window, both boundary-inclusive. The
// anchor day itself belongs to "after". Records with unparsable dates are
// excluded from both windows.
func BuildAdoptionReport(records []models.NormalizedActivity, days int) (AdoptionReport, error) {
	var anchor time.Time
	found := false
	for _, rec := range records {
		d, ok := normalize.Day(rec.Date)
		if !ok {
			continue
		}
		if !found || d.Before(anchor) {
			anchor = d
			found = true
		}
	}
	if !found {
		return AdoptionReport{}, ErrNoDatedRecords
	}

	beforeStart := anchor.AddDate(0, 0, -days)
	beforeEnd := anchor.AddDate(0, 0, -1)
	afterEnd := anchor.AddDate(0, 0, days)

	var before, after []models.NormalizedActivity
	for _, rec := range records {
		d, ok := normalize.Day(rec.Date)
		if !ok {
			continue
		}
		switch {
		case !d.Before(beforeStart) && !d.After(beforeEnd):
			before = append(before, rec)
		case !d.Before(anchor) && !d.After(afterEnd):
			after = append(after, rec)
		}
	}

	beforeMetrics := Aggregate(before)
	afterMetrics := Aggregate(after)

	return AdoptionReport{
		AdoptionDate: anchor.Format("2006-01-02"),
		BeforePeriod: Period{
			StartDate: beforeStart.Format("2006-01-02"),
			EndDate:   beforeEnd.Format("2006-01-02"),
			Metrics:   beforeMetrics,
		},
		AfterPeriod: Period{
			StartDate: anchor.Format("2006-01-02"),
			EndDate:   afterEnd.Format("2006-01-02"),
			Metrics:   afterMetrics,
		},
		PercentageChanges: PercentageChange(beforeMetrics, afterMetrics),
	}, nil
}
