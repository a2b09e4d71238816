// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/analytics"
)

// Report type selectors accepted by the export endpoint.
const (
	TypeProductivity = "productivity"
	TypeAdoption     = "adoption"
	TypeCorrelation  = "correlation"
)

// Filename builds the attachment name for an export download.
func Filename(reportType, startDate, endDate string) string {
	return fmt.Sprintf("%s-trends-%s-to-%s.csv", reportType, startDate, endDate)
}

// ProductivityCSV renders bucketed activity as a productivity report:
// one row per bucket with the four core counts and the derived
// acceptance rate.
func ProductivityCSV(buckets []analytics.Bucket) string {
	var b strings.Builder
	b.WriteString("Date,AI Code Lines,Chat Interactions,Inline Suggestions,Inline Acceptances,Acceptance Rate (%)\n")

	for _, bucket := range buckets {
		b.WriteString(escapeCSV(bucket.Key))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(bucket.AICodeLines))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(bucket.ChatInteractions))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(bucket.InlineSuggestions))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(bucket.InlineAcceptances))
		b.WriteByte(',')
		b.WriteString(formatFloat(bucket.AcceptanceRate()))
		b.WriteByte('\n')
	}
	return b.String()
}

// AdoptionCSV renders a before/after adoption comparison, one row per
// metric.
func AdoptionCSV(report analytics.AdoptionReport) string {
	var b strings.Builder
	b.WriteString("Metric,Before,After,Change (%)\n")

	rows := []struct {
		label  string
		metric string
		before int
		after  int
	}{
		{"AI Code Lines", analytics.MetricAICodeLines, report.BeforePeriod.Metrics.TotalAICodeLines, report.AfterPeriod.Metrics.TotalAICodeLines},
		{"Chat Interactions", analytics.MetricChatInteractions, report.BeforePeriod.Metrics.TotalChatInteractions, report.AfterPeriod.Metrics.TotalChatInteractions},
		{"Inline Suggestions", analytics.MetricInlineSuggestions, report.BeforePeriod.Metrics.TotalInlineSuggestions, report.AfterPeriod.Metrics.TotalInlineSuggestions},
		{"Inline Acceptances", analytics.MetricInlineAcceptances, report.BeforePeriod.Metrics.TotalInlineAcceptances, report.AfterPeriod.Metrics.TotalInlineAcceptances},
		{"Unique Users", "uniqueUsers", report.BeforePeriod.Metrics.UniqueUsers, report.AfterPeriod.Metrics.UniqueUsers},
		{"Active Days", "activeDays", report.BeforePeriod.Metrics.ActiveDays, report.AfterPeriod.Metrics.ActiveDays},
	}

	for _, row := range rows {
		b.WriteString(escapeCSV(row.label))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(row.before))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(row.after))
		b.WriteByte(',')
		b.WriteString(formatFloat(report.PercentageChanges[row.metric]))
		b.WriteByte('\n')
	}
	return b.String()
}

// CorrelationCSV renders per-metric Pearson coefficients against the
// target metric. Iteration follows the fixed core-metric order so output
// is deterministic.
func CorrelationCSV(result analytics.CorrelationResult) string {
	var b strings.Builder
	b.WriteString("Metric,Correlation With ")
	b.WriteString(escapeCSV(result.TargetMetric))
	b.WriteByte('\n')

	for _, m := range analytics.CoreMetrics {
		r, ok := result.Correlations[m]
		if !ok {
			continue
		}
		b.WriteString(escapeCSV(m))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(r, 'f', 4, 64))
		b.WriteByte('\n')
	}
	return b.String()
}

// formatFloat trims trailing zeros for percentage-style values.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// escapeCSV wraps a field in quotes when it contains a delimiter, quote,
// or newline, doubling internal quotes.
func escapeCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}
