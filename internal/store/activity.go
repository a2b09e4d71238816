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

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/metrics"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
)

// ActivityFilter narrows an activity scan. An empty filter matches
// everything. Date-range filtering is deliberately NOT done here: the
// stored date strings are not format-normalized, so range checks belong
// to the caller after normalization.
type ActivityFilter struct {
	UserID string
}

// PutActivity stores one raw activity document keyed by user and date.
func (s *Store) PutActivity(ctx context.Context, rec models.ActivityRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal activity: %w", err)
	}

	key := []byte(activityKeyPrefix + rec.UserID + ":" + rec.Date)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		metrics.StoreWriteErrors.WithLabelValues("activity").Inc()
		return fmt.Errorf("put activity: %w", err)
	}
	return nil
}

// ScanActivities returns all activity documents matching the filter.
// Context cancellation aborts the scan between items.
func (s *Store) ScanActivities(ctx context.Context, filter ActivityFilter) ([]models.ActivityRecord, error) {
	prefix := activityKeyPrefix
	if filter.UserID != "" {
		prefix += filter.UserID + ":"
	}

	start := time.Now()
	var records []models.ActivityRecord

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
				var rec models.ActivityRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("unmarshal activity %s: %w", it.Item().Key(), err)
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
		return nil, fmt.Errorf("scan activities: %w", err)
	}

	metrics.RecordStoreScan("activity", len(records), time.Since(start))
	return records, nil
}

// ListUserIDs returns the distinct user IDs present in the activity
// keyspace, in key order.
func (s *Store) ListUserIDs(ctx context.Context) ([]string, error) {
	var users []string
	seen := make(map[string]struct{})

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(activityKeyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := string(it.Item().Key())
			rest := key[len(activityKeyPrefix):]
			for i := 0; i < len(rest); i++ {
				if rest[i] == ':' {
					if uid := rest[:i]; uid != "" {
						if _, ok := seen[uid]; !ok {
							seen[uid] = struct{}{}
							users = append(users, uid)
						}
					}
					break
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
