// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package probe

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-finance-tracker/internal/validators"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type environmentProbe struct {
	browser models.BrowserInfo
	ip      IPLookup
}

// NewEnvironmentProbe constructs an [EnvironmentProbe] for a client that
// identifies itself with userAgent. The user agent is classified once.
func NewEnvironmentProbe(userAgent string, ip IPLookup) EnvironmentProbe {
	return &environmentProbe{
		browser: ParseUserAgent(userAgent),
		ip:      ip,
	}
}

func (p *environmentProbe) Collect(ctx context.Context, author string) models.AuditInfo {
	author = strings.TrimSpace(author)
	if author == "" {
		author = Unknown
	}

	return models.AuditInfo{
		EntryBy:      fit(models.FieldEntryBy, author),
		IPAddress:    fit(models.FieldIPAddress, p.ip.PublicIP(ctx)),
		BrowserName:  fit(models.FieldBrowserName, p.browser.BrowserName),
		BrowserVer:   fit(models.FieldBrowserVer, p.browser.BrowserVersion),
		OperatingSys: fit(models.FieldOperatingSys, p.browser.OperatingSystem),
	}
}

// fit truncates value to the column limit of field.
func fit(field, value string) string {
	limit, ok := validators.FieldLimit(field)
	if !ok {
		return value
	}

	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
