// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Filters is an open-ended set of list filters sent as query parameters,
// e.g. {"status": "1", "from": "2026-01-01"}.
type Filters map[string]string
