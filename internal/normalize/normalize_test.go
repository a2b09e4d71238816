// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package normalize

import (
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{"nil", nil, 0},
		{"int", 42, 42},
		{"negative int", -5, 0},
		{"int64", int64(7), 7},
		{"float", float64(12), 12},
		{"float truncates", 12.9, 12},
		{"negative float", -3.5, 0},
		{"numeric string", "123", 123},
		{"float string", "45.7", 45},
		{"negative string", "-10", 0},
		{"padded string", "  8 ", 8},
		{"empty string", "", 0},
		{"garbage string", "abc", 0},
		{"bool", true, 0},
		{"map", map[string]any{"N": "5"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.input); got != tt.expected {
				t.Errorf("Count(%v) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestActivity(t *testing.T) {
	rec := models.ActivityRecord{
		UserID:                 "u1",
		Date:                   "2025-06-01",
		ChatAICodeLines:        "15",
		ChatMessagesInteracted: float64(4),
		InlineAICodeLines:      nil,
		InlineSuggestionsCount: "oops",
		InlineAcceptanceCount:  float64(9),
	}

	got := Activity(rec)

	if got.UserID != "u1" || got.Date != "2025-06-01" {
		t.Errorf("identity fields not carried: %+v", got)
	}
	if got.ChatAICodeLines != 15 {
		t.Errorf("string count not coerced: got %d", got.ChatAICodeLines)
	}
	if got.ChatMessagesInteracted != 4 {
		t.Errorf("numeric count wrong: got %d", got.ChatMessagesInteracted)
	}
	if got.InlineAICodeLines != 0 || got.InlineSuggestionsCount != 0 {
		t.Errorf("absent/malformed counts should be 0: %+v", got)
	}
	// Acceptances above suggestions is tolerated, not clamped.
	if got.InlineAcceptanceCount != 9 {
		t.Errorf("acceptance count should be preserved: got %d", got.InlineAcceptanceCount)
	}
}

func TestPromptTimePrecedence(t *testing.T) {
	iso := "2025-06-15T10:30:00Z"
	want := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		rec    models.PromptRecord
		wantT  time.Time
		wantOK bool
	}{
		{
			name:   "plain ISO string",
			rec:    models.PromptRecord{TimeStamp: json.RawMessage(`"` + iso + `"`)},
			wantT:  want,
			wantOK: true,
		},
		{
			name:   "wrapped attribute value",
			rec:    models.PromptRecord{TimeStamp: json.RawMessage(`{"S":"` + iso + `"}`)},
			wantT:  want,
			wantOK: true,
		},
		{
			name:   "alternate field",
			rec:    models.PromptRecord{CreatedAt: iso},
			wantT:  want,
			wantOK: true,
		},
		{
			name: "primary wins over alternate",
			rec: models.PromptRecord{
				TimeStamp: json.RawMessage(`"2025-01-01T00:00:00Z"`),
				CreatedAt: iso,
			},
			wantT:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name: "unparsable primary falls through to alternate",
			rec: models.PromptRecord{
				TimeStamp: json.RawMessage(`"not-a-time"`),
				CreatedAt: iso,
			},
			wantT:  want,
			wantOK: true,
		},
		{
			name:   "date-only string",
			rec:    models.PromptRecord{TimeStamp: json.RawMessage(`"2025-06-15"`)},
			wantT:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "totally absent",
			rec:    models.PromptRecord{},
			wantOK: false,
		},
		{
			name:   "empty wrapper",
			rec:    models.PromptRecord{TimeStamp: json.RawMessage(`{"S":""}`)},
			wantOK: false,
		},
		{
			name:   "numeric timestamp unsupported",
			rec:    models.PromptRecord{TimeStamp: json.RawMessage(`1718445000`)},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PromptTime(&tt.rec)
			if ok != tt.wantOK {
				t.Fatalf("PromptTime ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.wantT) {
				t.Errorf("PromptTime = %s, want %s", got, tt.wantT)
			}
		})
	}
}

func TestDay(t *testing.T) {
	if _, ok := Day("2025-02-30"); ok {
		t.Error("impossible date should not parse")
	}
	if _, ok := Day("06/01/2025"); ok {
		t.Error("non-ISO date should not parse")
	}
	got, ok := Day("2025-06-01")
	if !ok || got != time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("Day(2025-06-01) = %v, %v", got, ok)
	}
}
