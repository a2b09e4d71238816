// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/logging"
)

// Keyspace prefixes.
const (
	activityKeyPrefix     = "activity:"
	promptKeyPrefix       = "prompt:"
	subscriptionKeyPrefix = "subscription:"
)

// Options configures the store backend.
type Options struct {
	// Path is the on-disk database directory. Ignored when InMemory is
	// set.
	Path string

	// InMemory runs Badger without persistence. Used by tests and
	// ephemeral deployments.
	InMemory bool
}

// Store is a BadgerDB-backed document store for telemetry records.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database.
func Open(opts Options) (*Store, error) {
	var badgerOpts badger.Options
	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		badgerOpts = badger.DefaultOptions(opts.Path)
	}
	// Badger's own logger is noisy at INFO; route everything through
	// our logger at debug level instead.
	badgerOpts = badgerOpts.WithLogger(badgerLogger{})

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", opts.Path, err)
	}
	return &Store{db: db}, nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// badgerLogger adapts Badger's logger interface onto zerolog.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	logging.Error().Msgf("badger: "+format, args...)
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	logging.Warn().Msgf("badger: "+format, args...)
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	logging.Debug().Msgf("badger: "+format, args...)
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	logging.Debug().Msgf("badger: "+format, args...)
}
