// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

/*
Package api is the HTTP boundary of the dashboard, built on chi.

Handlers fetch records from the store, apply the date-range filter as a
secondary pass through the shared normalizer, invoke the analytics
core, and wrap results in the standard response envelope:

	{
	  "status": "success" | "error",
	  "data": ...,
	  "metadata": {"timestamp", "query_time_ms", "request_id"},
	  "error": {"code", "message", "details"}
	}

Validation happens before the core is touched; the core itself never
returns user-facing errors other than the no-dated-records case, which
maps to NOT_FOUND.
*/
package api
