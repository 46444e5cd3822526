// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

// ClientStorages groups the client-side storage layer into a single value
// that can be passed to the service layer.
type ClientStorages struct {
	// SessionRepository persists the bearer credential and the profile.
	SessionRepository

	storage KeyValueStorage
}

// NewClientStorages initialises the storage backend named by cfg.Backend:
//  1. [config.BackendSQLite] opens the SQLite file at cfg.DSN, creating it
//     if missing, and runs pending goose migrations;
//  2. [config.BackendBolt] opens the BoltDB file at cfg.DSN.
//
// An empty backend selects SQLite.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating new storages...")

	var storage KeyValueStorage

	switch cfg.Backend {
	case config.BackendSQLite, "":
		db, err := NewConnectSQLite(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		storage = NewSQLiteKVStorage(db, logger)
	case config.BackendBolt:
		bolt, err := NewBoltKVStorage(cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("boltdb connection error: %w", err)
		}
		storage = bolt
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(storage, logger),
		storage:           storage,
	}, nil
}

// Close releases the storage backend.
func (s *ClientStorages) Close() error {
	return s.storage.Close()
}
