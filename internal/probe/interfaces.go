// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package probe

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/probe_mock.go -package=mock

// IPLookup resolves the public IP address of the client.
type IPLookup interface {
	// PublicIP returns the address, or [Unknown] when the lookup fails.
	PublicIP(ctx context.Context) string
}

// EnvironmentProbe builds the audit metadata of a submission.
type EnvironmentProbe interface {
	// Collect returns the audit fields for an entry recorded by author.
	// Values longer than their backend column are truncated.
	Collect(ctx context.Context, author string) models.AuditInfo
}
