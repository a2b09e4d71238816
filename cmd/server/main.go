// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

// Command server runs the productivity analytics backend.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coderxlab/amazonq-dashboard-sub000/internal/api"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/config"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/logging"
	"github.com/coderxlab/amazonq-dashboard-sub000/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("auth_mode", cfg.Security.AuthMode).
		Bool("store_in_memory", cfg.Store.InMemory).
		Msg("Starting Amazon Q dashboard backend")

	if !cfg.Store.InMemory {
		if err := os.MkdirAll(cfg.Store.Path, 0o750); err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("Failed to create store directory")
		}
	}

	st, err := store.Open(store.Options{
		Path:     cfg.Store.Path,
		InMemory: cfg.Store.InMemory,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}

	if cfg.Store.SeedMockData {
		if err := st.Seed(context.Background()); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	router := api.NewRouter(st, cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		logging.Error().Err(err).Msg("HTTP server failed")
	}

	// Server drains first so in-flight handlers can still reach the
	// store, then the store closes.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	if err := st.Close(); err != nil {
		logging.Error().Err(err).Msg("Store close failed")
	}

	logging.Info().Msg("Shutdown complete")
}
