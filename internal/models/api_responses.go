// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package models

import "time"

// APIResponse is the standardized envelope for all JSON API responses.
type APIResponse struct {
	// Status is "success" or "error"
	Status string `json:"status"`

	// Data contains the response payload (null on error)
	Data interface{} `json:"data,omitempty"`

	// Metadata contains timing and tracing information
	Metadata Metadata `json:"metadata"`

	// Error contains error details (null on success)
	Error *APIError `json:"error,omitempty"`
}

// Metadata carries response timing and tracing information.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents a machine-readable error payload.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Stable error codes surfaced by the API boundary.
const (
	ErrCodeInvalidParameters = "INVALID_PARAMETERS"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"
	ErrCodeInternalError     = "INTERNAL_SERVER_ERROR"
	ErrCodeDatabaseError     = "DATABASE_ERROR"
)

// PagedResult wraps a list payload with paging information.
type PagedResult struct {
	Items   interface{} `json:"items"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
	HasMore bool        `json:"hasMore"`
}
