// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
)

// humanizeLoadError turns a read failure into a line a user can act on.
// Details stay in the log.
func humanizeLoadError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrRequestFailed) {
		return app.MsgNetworkUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgNetworkUnavailable
	}

	return app.MsgLoadFailed
}
