// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

var bucketSession = []byte("session")

// boltKVStorage is the BoltDB-backed [KeyValueStorage]. Every key lives in
// the "session" bucket.
type boltKVStorage struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltKVStorage opens the BoltDB file at path and makes sure the session
// bucket exists.
func NewBoltKVStorage(path string, log *logger.Logger) (KeyValueStorage, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltKVStorage").Msg("error opening boltdb file")
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketSession); err != nil {
			return fmt.Errorf("failed to create session bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewBoltKVStorage").Str("path", path).Msg("opened boltdb storage")

	return &boltKVStorage{
		db:     db,
		logger: log,
	}, nil
}

func (s *boltKVStorage) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return ErrBucketNotFound
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return ErrKeyNotFound
		}
		value = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

func (s *boltKVStorage) Put(ctx context.Context, items map[string]string) error {
	log := logger.FromContext(ctx)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return ErrBucketNotFound
		}

		for key, value := range items {
			if err := bucket.Put([]byte(key), []byte(value)); err != nil {
				return fmt.Errorf("failed to save %q: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*boltKVStorage.Put").Msg("error saving values")
		return err
	}

	return nil
}

func (s *boltKVStorage) Delete(ctx context.Context, keys ...string) error {
	log := logger.FromContext(ctx)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return ErrBucketNotFound
		}

		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("failed to delete %q: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*boltKVStorage.Delete").Msg("error deleting values")
		return err
	}

	return nil
}

func (s *boltKVStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
