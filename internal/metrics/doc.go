// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

// Package metrics registers Prometheus collectors for API, store, and
// export instrumentation. Collectors are package-level and registered
// once via promauto; the /metrics endpoint exposes them.
package metrics
