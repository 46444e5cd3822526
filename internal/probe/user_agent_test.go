// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-finance-tracker/models"
)

func TestParseUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want models.BrowserInfo
	}{
		{
			name: "chrome on windows",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.6099.129 Safari/537.36",
			want: models.BrowserInfo{BrowserName: "Chrome", BrowserVersion: "120.0.6099.129", OperatingSystem: "Windows"},
		},
		{
			name: "firefox on linux",
			ua:   "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0",
			want: models.BrowserInfo{BrowserName: "Firefox", BrowserVersion: "128.0", OperatingSystem: "Linux"},
		},
		{
			name: "safari on mac",
			ua:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
			want: models.BrowserInfo{BrowserName: "Safari", BrowserVersion: "17.2", OperatingSystem: "macOS"},
		},
		{
			name: "chromium edge is reported as chrome",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91",
			want: models.BrowserInfo{BrowserName: "Chrome", BrowserVersion: "120.0.0.0", OperatingSystem: "Windows"},
		},
		{
			name: "legacy edge",
			ua:   "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 (KHTML, like Gecko) Edge/18.19045",
			want: models.BrowserInfo{BrowserName: "Edge", BrowserVersion: "18.19045", OperatingSystem: "Windows"},
		},
		{
			name: "android is reported as linux",
			ua:   "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.6099.144 Mobile Safari/537.36",
			want: models.BrowserInfo{BrowserName: "Chrome", BrowserVersion: "120.0.6099.144", OperatingSystem: "Linux"},
		},
		{
			name: "safari without version",
			ua:   "Safari",
			want: models.BrowserInfo{BrowserName: "Safari", BrowserVersion: Unknown, OperatingSystem: Unknown},
		},
		{
			name: "unparseable",
			ua:   "%%% definitely not a user agent %%%",
			want: models.BrowserInfo{BrowserName: Unknown, BrowserVersion: Unknown, OperatingSystem: Unknown},
		},
		{
			name: "empty",
			ua:   "",
			want: models.BrowserInfo{BrowserName: Unknown, BrowserVersion: Unknown, OperatingSystem: Unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseUserAgent(tt.ua))
		})
	}
}

func TestDefaultUserAgent(t *testing.T) {
	assert.Equal(t, "finance-tracker-client/1.4.0 (X11; Linux)", DefaultUserAgent("1.4.0", "linux"))
	assert.Equal(t, "finance-tracker-client/dev (Windows NT)", DefaultUserAgent("", "windows"))
	assert.Equal(t, "finance-tracker-client/1.0 (plan9)", DefaultUserAgent("1.0", "plan9"))
}

func TestDefaultUserAgent_IsClassified(t *testing.T) {
	os := map[string]string{
		"windows": "Windows",
		"darwin":  "macOS",
		"linux":   "Linux",
		"android": "Linux",
		"ios":     "iOS",
		"plan9":   Unknown,
	}

	for goos, want := range os {
		info := ParseUserAgent(DefaultUserAgent("1.0", goos))
		assert.Equal(t, want, info.OperatingSystem, goos)
		assert.Equal(t, Unknown, info.BrowserName, goos)
	}
}
