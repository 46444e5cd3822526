// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is the low-level persistent string store the session lives
// in. Implementations exist for SQLite and BoltDB.
type KeyValueStorage interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Put upserts every item in one atomic write. Last writer wins.
	Put(ctx context.Context, items map[string]string) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// Close releases the underlying database handle.
	Close() error
}

// SessionRepository persists the bearer credential and the user profile
// under [models.TokenStorageKey] and [models.UserStorageKey].
type SessionRepository interface {
	// SaveSession writes both keys together.
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession returns [ErrSessionNotFound] unless both keys are present.
	LoadSession(ctx context.Context) (models.Session, error)
	// ClearSession removes both keys.
	ClearSession(ctx context.Context) error
}
