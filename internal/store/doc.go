// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

/*
Package store persists telemetry documents in BadgerDB.

Three keyspaces share one database:

	activity:<userId>:<date>   one activity document per user per day
	prompt:<userId>:<id>       one prompt/response interaction
	subscription:<userId>      one subscription document per user

Values are JSON documents. Reads are prefix scans inside read-only
transactions; writes use Update transactions. The analytics layer
receives full record slices and performs its own filtering, matching
the scan-then-filter access pattern of the upstream telemetry tables.
*/
package store
