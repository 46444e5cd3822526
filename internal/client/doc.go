// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It builds the session storage, the session itself, the API client, the
// environment probe, the services and the terminal UI, and ties their
// lifecycles to a single process.
package client
