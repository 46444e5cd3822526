// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client session between runs.
//
// Two interchangeable backends implement [KeyValueStorage]: SQLite (default,
// schema managed by goose, queries built with squirrel) and BoltDB. The
// session itself is kept under the keys finance_auth_token and
// finance_user_data by [SessionRepository].
package store
