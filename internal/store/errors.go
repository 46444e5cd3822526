// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStorage.Get] for a missing key.
	ErrKeyNotFound = errors.New("key was not found")

	// ErrSessionNotFound is returned when the token or the profile is absent.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrCorruptedSession is returned when the stored profile is not valid
	// JSON.
	ErrCorruptedSession = errors.New("stored session is corrupted")

	// ErrUnsupportedBackend is returned by [NewClientStorages] for an unknown
	// storage backend name.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrBucketNotFound is returned when the BoltDB session bucket is missing.
	ErrBucketNotFound = errors.New("bucket was not found")
)
