// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

// Package models defines the wire-level record shapes ingested from the
// document store and the response types shared across API handlers.
//
// Wire records intentionally preserve the loose typing of the upstream
// DynamoDB export: numeric fields may arrive as JSON numbers or strings,
// and prompt timestamps may be a plain ISO string, an attribute-value
// wrapper ({"S": "..."}), or live under an alternate field name. The
// normalize package is the single place that reconciles these shapes.
package models

import "github.com/goccy/go-json"

// ActivityRecord is a per-user per-day usage record as stored.
// The five metric fields are deliberately untyped (number or string on the
// wire); use normalize.Activity to obtain a NormalizedActivity.
type ActivityRecord struct {
	UserID                 string `json:"UserId"`
	Date                   string `json:"Date"`
	ChatAICodeLines        any    `json:"Chat_AICodeLines,omitempty"`
	ChatMessagesInteracted any    `json:"Chat_MessagesInteracted,omitempty"`
	InlineAICodeLines      any    `json:"Inline_AICodeLines,omitempty"`
	InlineSuggestionsCount any    `json:"Inline_SuggestionsCount,omitempty"`
	InlineAcceptanceCount  any    `json:"Inline_AcceptanceCount,omitempty"`
}

// NormalizedActivity is an ActivityRecord with all metric fields coerced to
// non-negative integers. Produced exclusively by normalize.Activity.
//
// Note: InlineAcceptanceCount <= InlineSuggestionsCount is not enforced;
// the analytics layer tolerates violations.
type NormalizedActivity struct {
	UserID                 string `json:"userId"`
	Date                   string `json:"date"`
	ChatAICodeLines        int    `json:"chatAiCodeLines"`
	ChatMessagesInteracted int    `json:"chatMessagesInteracted"`
	InlineAICodeLines      int    `json:"inlineAiCodeLines"`
	InlineSuggestionsCount int    `json:"inlineSuggestionsCount"`
	InlineAcceptanceCount  int    `json:"inlineAcceptanceCount"`
}

// PromptRecord is a single prompt/response exchange as stored.
// TimeStamp holds the raw JSON for the primary timestamp field; CreatedAt is
// the alternate field name some writers used. normalize.PromptTime applies
// the precedence order.
type PromptRecord struct {
	UserID    string          `json:"UserId"`
	TimeStamp json.RawMessage `json:"TimeStamp,omitempty"`
	CreatedAt string          `json:"CreatedAt,omitempty"`
	Prompt    string          `json:"Prompt"`
	Response  string          `json:"Response,omitempty"`
}

// Subscription is a user subscription record backing the user directory.
type Subscription struct {
	UserID      string `json:"UserId"`
	Email       string `json:"Email,omitempty"`
	Plan        string `json:"Plan,omitempty"`
	ActivatedAt string `json:"ActivatedAt,omitempty"`
}
