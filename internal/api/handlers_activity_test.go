// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package api

import (
	"io"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/analytics"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
)

func TestTrendsEndpoint(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	seedActivity(t, st,
		models.ActivityRecord{UserID: "alice", Date: "2025-06-01", ChatAICodeLines: 10, ChatMessagesInteracted: 5, InlineSuggestionsCount: 20, InlineAcceptanceCount: 15},
		models.ActivityRecord{UserID: "alice", Date: "2025-06-02", ChatAICodeLines: 15, ChatMessagesInteracted: 8, InlineSuggestionsCount: 25, InlineAcceptanceCount: 20},
		models.ActivityRecord{UserID: "alice", Date: "2025-06-03", ChatAICodeLines: 12, ChatMessagesInteracted: 6, InlineSuggestionsCount: 22, InlineAcceptanceCount: 16},
	)

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/trends?userId=alice")
	if status != http.StatusOK {
		t.Fatalf("status = %d, error = %+v", status, envelope.Error)
	}

	var series analytics.TrendSeries
	decodeData(t, envelope, &series)

	if len(series.TimePoints) != 3 {
		t.Fatalf("timePoints = %v", series.TimePoints)
	}
	if got := series.Totals[analytics.MetricAICodeLines]; got != 37 {
		t.Errorf("total aiCodeLines = %v, want 37", got)
	}
	if got := series.MovingAverages[analytics.MetricAICodeLines][2]; math.Abs(got-12.333333333) > 1e-6 {
		t.Errorf("moving average[2] = %v", got)
	}
	if series.GrowthRates[analytics.MetricAICodeLines][0] != nil {
		t.Error("first growth rate must be null")
	}
}

func TestTrendsEndpointWeekInterval(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	seedActivity(t, st,
		models.ActivityRecord{UserID: "alice", Date: "2025-06-02", ChatAICodeLines: 1},
		models.ActivityRecord{UserID: "alice", Date: "2025-06-09", ChatAICodeLines: 2},
	)

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/trends?userId=alice&interval=week")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	var series analytics.TrendSeries
	decodeData(t, envelope, &series)
	if len(series.TimePoints) != 2 || series.TimePoints[0] != "2025-06-02" {
		t.Errorf("week timePoints = %v", series.TimePoints)
	}
}

func TestTrendsEndpointRejectsBadInterval(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/trends?interval=fortnight")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if envelope.Error == nil || envelope.Error.Code != models.ErrCodeInvalidParameters {
		t.Errorf("error = %+v", envelope.Error)
	}
}

func TestTrendsEndpointRejectsBadDate(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/trends?startDate=06/01/2025")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if envelope.Error.Code != models.ErrCodeInvalidParameters {
		t.Errorf("code = %q", envelope.Error.Code)
	}
}

func TestTrendsEndpointUnknownUser(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	seedActivity(t, st, models.ActivityRecord{UserID: "alice", Date: "2025-06-01"})

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/trends?userId=nobody")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d", status)
	}
	if envelope.Error.Code != models.ErrCodeNotFound {
		t.Errorf("code = %q", envelope.Error.Code)
	}
}

func TestSummaryEndpointDateFilter(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	seedActivity(t, st,
		models.ActivityRecord{UserID: "alice", Date: "2025-06-01", ChatAICodeLines: 10},
		models.ActivityRecord{UserID: "alice", Date: "2025-06-15", ChatAICodeLines: 7},
		models.ActivityRecord{UserID: "alice", Date: "2025-07-01", ChatAICodeLines: 100},
	)

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/summary?userId=alice&startDate=2025-06-01&endDate=2025-06-30")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	var agg analytics.AggregateMetrics
	decodeData(t, envelope, &agg)
	if agg.TotalAICodeLines != 17 {
		t.Errorf("filtered total = %d, want 17 (July excluded)", agg.TotalAICodeLines)
	}
	if agg.ActiveDays != 2 {
		t.Errorf("activeDays = %d, want 2", agg.ActiveDays)
	}
}

func TestSummaryEndpointCoercesStringCounts(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	seedActivity(t, st,
		models.ActivityRecord{UserID: "alice", Date: "2025-06-01", ChatAICodeLines: "12", InlineSuggestionsCount: "oops"},
	)

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/summary?userId=alice")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	var agg analytics.AggregateMetrics
	decodeData(t, envelope, &agg)
	if agg.TotalAICodeLines != 12 {
		t.Errorf("string-encoded count should coerce, got %d", agg.TotalAICodeLines)
	}
	if agg.TotalInlineSuggestions != 0 {
		t.Errorf("garbage count should coerce to 0, got %d", agg.TotalInlineSuggestions)
	}
}

func TestAdoptionEndpoint(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	seedActivity(t, st,
		models.ActivityRecord{UserID: "alice", Date: "2025-06-10", ChatAICodeLines: 100},
		models.ActivityRecord{UserID: "alice", Date: "2025-06-20", ChatAICodeLines: 50},
	)

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/adoption?userId=alice&daysBeforeAfter=15")
	if status != http.StatusOK {
		t.Fatalf("status = %d, error = %+v", status, envelope.Error)
	}

	var report analytics.AdoptionReport
	decodeData(t, envelope, &report)
	if report.AdoptionDate != "2025-06-10" {
		t.Errorf("adoptionDate = %q", report.AdoptionDate)
	}
	if report.AfterPeriod.Metrics.TotalAICodeLines != 150 {
		t.Errorf("after total = %d", report.AfterPeriod.Metrics.TotalAICodeLines)
	}
}

func TestAdoptionEndpointRejectsBadWindow(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/adoption?daysBeforeAfter=1000")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if envelope.Error.Code != models.ErrCodeInvalidParameters {
		t.Errorf("code = %q", envelope.Error.Code)
	}
}

func TestCorrelationEndpoint(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	seedActivity(t, st,
		models.ActivityRecord{UserID: "alice", Date: "2025-06-01", ChatAICodeLines: 1, ChatMessagesInteracted: 2},
		models.ActivityRecord{UserID: "alice", Date: "2025-06-02", ChatAICodeLines: 2, ChatMessagesInteracted: 4},
		models.ActivityRecord{UserID: "alice", Date: "2025-06-03", ChatAICodeLines: 3, ChatMessagesInteracted: 6},
	)

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/correlation?userId=alice&metric=aiCodeLines")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	var result analytics.CorrelationResult
	decodeData(t, envelope, &result)
	if result.TargetMetric != analytics.MetricAICodeLines {
		t.Errorf("targetMetric = %q", result.TargetMetric)
	}
	if got := result.Correlations[analytics.MetricChatInteractions]; math.Abs(got-1) > 1e-9 {
		t.Errorf("chatInteractions correlation = %v, want 1", got)
	}
}

func TestCorrelationEndpointRejectsBadMetric(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/correlation?metric=linesOfYaml")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if envelope.Error.Code != models.ErrCodeInvalidParameters {
		t.Errorf("code = %q", envelope.Error.Code)
	}
}

func TestExportEndpointProductivity(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	seedActivity(t, st,
		models.ActivityRecord{UserID: "alice", Date: "2025-06-01", ChatAICodeLines: 10, InlineSuggestionsCount: 20, InlineAcceptanceCount: 15},
		models.ActivityRecord{UserID: "alice", Date: "2025-06-02", ChatAICodeLines: 7, InlineSuggestionsCount: 8, InlineAcceptanceCount: 6},
	)

	resp, err := http.Get(srv.URL + "/api/v1/activity/export?type=productivity&startDate=2025-06-01&endDate=2025-06-30&userId=alice")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q", ct)
	}
	wantDisposition := `attachment; filename=productivity-trends-2025-06-01-to-2025-06-30.csv`
	if cd := resp.Header.Get("Content-Disposition"); cd != wantDisposition {
		t.Errorf("disposition = %q, want %q", cd, wantDisposition)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	for i, line := range lines {
		if fields := strings.Split(line, ","); len(fields) != 6 {
			t.Errorf("line %d has %d fields: %q", i, len(fields), line)
		}
	}
}

func TestExportEndpointRequiresTypeAndDates(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/export")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if envelope.Error.Code != models.ErrCodeInvalidParameters {
		t.Errorf("code = %q", envelope.Error.Code)
	}

	status, _ = getJSON(t, srv.URL+"/api/v1/activity/export?type=spreadsheet&startDate=2025-06-01&endDate=2025-06-30")
	if status != http.StatusBadRequest {
		t.Errorf("bad type: status = %d", status)
	}
}

func TestActivityLogsPagination(t *testing.T) {
	srv, st := newTestServer(t, testConfig())
	seedActivity(t, st,
		models.ActivityRecord{UserID: "alice", Date: "2025-06-01", ChatAICodeLines: 1},
		models.ActivityRecord{UserID: "alice", Date: "2025-06-02", ChatAICodeLines: 2},
		models.ActivityRecord{UserID: "alice", Date: "2025-06-03", ChatAICodeLines: 3},
	)

	status, envelope := getJSON(t, srv.URL+"/api/v1/activity/logs?userId=alice&limit=2")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}

	var page models.PagedResult
	decodeData(t, envelope, &page)
	if page.Total != 3 || !page.HasMore {
		t.Errorf("page = total %d hasMore %v", page.Total, page.HasMore)
	}

	items, ok := page.Items.([]interface{})
	if !ok || len(items) != 2 {
		t.Errorf("items = %T len %d", page.Items, len(items))
	}

	status, envelope = getJSON(t, srv.URL+"/api/v1/activity/logs?userId=alice&limit=2&offset=2")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	decodeData(t, envelope, &page)
	if page.HasMore {
		t.Error("last page should not report hasMore")
	}
}
