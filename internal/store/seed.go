// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/logging"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
)

var seedUsers = []models.Subscription{
	{UserID: "dev-alice", Email: "alice@example.com", Plan: "pro", ActivatedAt: "2025-05-01"},
	{UserID: "dev-bob", Email: "bob@example.com", Plan: "pro", ActivatedAt: "2025-05-10"},
	{UserID: "dev-carol", Email: "carol@example.com", Plan: "free", ActivatedAt: "2025-06-01"},
}

var seedPrompts = []string{
	"write a function to parse ISO dates from dynamodb exports",
	"please debug this error in my function",
	"explain what this goroutine leak detector does",
	"generate unit tests for the pagination helper",
	"why is this sql query slow on large tables?",
	"how to use the s3 sdk to stream uploads exactly once",
}

// Seed populates the store with deterministic-ish demo data covering 60
// days of activity for a handful of users. Intended for local
// development; a non-empty store is left untouched.
func (s *Store) Seed(ctx context.Context) error {
	existing, err := s.ScanActivities(ctx, ActivityFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logging.Debug().Int("records", len(existing)).Msg("Store already populated, skipping seed")
		return nil
	}

	rng := rand.New(rand.NewSource(42))
	start := time.Now().AddDate(0, 0, -60)

	for _, user := range seedUsers {
		if err := s.PutSubscription(ctx, user); err != nil {
			return fmt.Errorf("seed subscription %s: %w", user.UserID, err)
		}

		for day := 0; day < 60; day++ {
			// Roughly a third of days are idle.
			if rng.Intn(3) == 0 {
				continue
			}
			date := start.AddDate(0, 0, day).Format("2006-01-02")
			suggestions := rng.Intn(40)
			rec := models.ActivityRecord{
				UserID:                 user.UserID,
				Date:                   date,
				ChatAICodeLines:        rng.Intn(120),
				ChatMessagesInteracted: rng.Intn(25),
				InlineAICodeLines:      rng.Intn(80),
				InlineSuggestionsCount: suggestions,
				InlineAcceptanceCount:  rng.Intn(suggestions + 1),
			}
			if err := s.PutActivity(ctx, rec); err != nil {
				return fmt.Errorf("seed activity %s/%s: %w", user.UserID, date, err)
			}
		}

		for i, text := range seedPrompts {
			ts := start.AddDate(0, 0, i*7).Format(time.RFC3339)
			rec := models.PromptRecord{
				UserID:    user.UserID,
				CreatedAt: ts,
				Prompt:    text,
				Response:  "...",
			}
			if err := s.PutPrompt(ctx, rec); err != nil {
				return fmt.Errorf("seed prompt for %s: %w", user.UserID, err)
			}
		}
	}

	logging.Info().Int("users", len(seedUsers)).Msg("Seeded demo telemetry data")
	return nil
}
