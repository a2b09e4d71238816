// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package store

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/models"
)

// PutSubscription stores one subscription document per user.
func (s *Store) PutSubscription(ctx context.Context, sub models.Subscription) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal subscription: %w", err)
	}

	key := []byte(subscriptionKeyPrefix + sub.UserID)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("put subscription: %w", err)
	}
	return nil
}

// ListSubscriptions returns every subscription document in key order.
func (s *Store) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	var subs []models.Subscription

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(subscriptionKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(val []byte) error {
				var sub models.Subscription
				if err := json.Unmarshal(val, &sub); err != nil {
					return fmt.Errorf("unmarshal subscription %s: %w", it.Item().Key(), err)
				}
				subs = append(subs, sub)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}
