// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

const (
	kvTable       = "kv_storage"
	kvKeyColumn   = "key"
	kvValueColumn = "value"
	kvUpdatedAt   = "updated_at"
)

const upsertKVSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"

// sqliteKVStorage is the SQLite-backed [KeyValueStorage]. Rows live in the
// kv_storage table created by the goose migrations.
type sqliteKVStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteKVStorage constructs a [KeyValueStorage] on top of an already
// migrated connection.
func NewSQLiteKVStorage(db *DB, logger *logger.Logger) KeyValueStorage {
	logger.Debug().Msg("creating sqlite key-value storage")
	return &sqliteKVStorage{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteKVStorage) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteKVStorage.Get").Msg("error building select query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrKeyNotFound
	case err != nil:
		log.Err(err).Str("func", "*sqliteKVStorage.Get").Str("key", key).Msg("error reading value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKVStorage) Put(ctx context.Context, items map[string]string) error {
	if len(items) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	now := s.now().UTC()
	insert := sq.Insert(kvTable).Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt)
	for _, key := range keys {
		insert = insert.Values(key, items[key], now)
	}

	query, args, err := insert.Suffix(upsertKVSuffix).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteKVStorage.Put").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteKVStorage.Put").Strs("keys", keys).Msg("error upserting values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKVStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: keys}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqliteKVStorage.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqliteKVStorage.Delete").Strs("keys", keys).Msg("error deleting values")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKVStorage) Close() error {
	return s.db.Close()
}
