// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

// Package export renders analytics results as downloadable CSV reports.
// All functions are pure string builders over already-computed
// structures; the HTTP layer owns content type and disposition headers.
package export
