// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/metrics"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
)

// PromptFilter narrows a prompt scan to one user when set.
type PromptFilter struct {
	UserID string
}

// PutPrompt stores one prompt/response document under a fresh ID.
func (s *Store) PutPrompt(ctx context.Context, rec models.PromptRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal prompt: %w", err)
	}

	key := []byte(promptKeyPrefix + rec.UserID + ":" + uuid.NewString())
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		metrics.StoreWriteErrors.WithLabelValues("prompt").Inc()
		return fmt.Errorf("put prompt: %w", err)
	}
	return nil
}

// ScanPrompts returns all prompt documents matching the filter.
func (s *Store) ScanPrompts(ctx context.Context, filter PromptFilter) ([]models.PromptRecord, error) {
	prefix := promptKeyPrefix
	if filter.UserID != "" {
		prefix += filter.UserID + ":"
	}

	start := time.Now()
	var records []models.PromptRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(val []byte) error {
				var rec models.PromptRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("unmarshal prompt %s: %w", it.Item().Key(), err)
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan prompts: %w", err)
	}

	metrics.RecordStoreScan("prompt", len(records), time.Since(start))
	return records, nil
}
