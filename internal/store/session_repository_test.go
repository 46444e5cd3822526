// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// memoryKVStorage is an in-process KeyValueStorage for repository tests.
type memoryKVStorage struct {
	values map[string]string
	err    error
}

func newMemoryKVStorage() *memoryKVStorage {
	return &memoryKVStorage{values: map[string]string{}}
}

func (m *memoryKVStorage) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *memoryKVStorage) Put(_ context.Context, items map[string]string) error {
	if m.err != nil {
		return m.err
	}
	for k, v := range items {
		m.values[k] = v
	}
	return nil
}

func (m *memoryKVStorage) Delete(_ context.Context, keys ...string) error {
	if m.err != nil {
		return m.err
	}
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

func (m *memoryKVStorage) Close() error { return nil }

func TestSessionRepository_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKVStorage()
	repo := NewSessionRepository(kv, logger.Nop())

	session := models.Session{
		Token: "token-123",
		User:  models.User{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Mobile: "9876543210"},
	}
	require.NoError(t, repo.SaveSession(ctx, session))

	assert.Equal(t, "token-123", kv.values[models.TokenStorageKey])
	assert.JSONEq(t,
		`{"firstName":"Asha","lastName":"Rao","email":"asha@example.com","mobile":"9876543210"}`,
		kv.values[models.UserStorageKey])

	loaded, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	require.NoError(t, repo.ClearSession(ctx))
	assert.Empty(t, kv.values)

	_, err = repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_LoadSession(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		err     error
		wantErr error
	}{
		{
			name:    "only token stored",
			values:  map[string]string{models.TokenStorageKey: "abc"},
			wantErr: ErrSessionNotFound,
		},
		{
			name:    "only profile stored",
			values:  map[string]string{models.UserStorageKey: `{"firstName":"Asha"}`},
			wantErr: ErrSessionNotFound,
		},
		{
			name:    "blank token",
			values:  map[string]string{models.TokenStorageKey: "  ", models.UserStorageKey: `{}`},
			wantErr: ErrSessionNotFound,
		},
		{
			name:    "corrupted profile",
			values:  map[string]string{models.TokenStorageKey: "abc", models.UserStorageKey: `{not json`},
			wantErr: ErrCorruptedSession,
		},
		{
			name:    "storage failure is passed through",
			err:     ErrExecutingQuery,
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemoryKVStorage()
			for k, v := range tt.values {
				kv.values[k] = v
			}
			kv.err = tt.err

			_, err := NewSessionRepository(kv, logger.Nop()).LoadSession(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSessionRepository_Errors(t *testing.T) {
	kv := newMemoryKVStorage()
	kv.err = errors.New("read-only file system")
	repo := NewSessionRepository(kv, logger.Nop())

	assert.ErrorContains(t, repo.SaveSession(context.Background(), models.Session{Token: "t"}), "failed to save session")
	assert.ErrorContains(t, repo.ClearSession(context.Background()), "failed to clear session")
}
