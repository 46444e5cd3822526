// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ENTRY_AUTHOR": "Console User",
		"APP_USER_AGENT":   "Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0",
		"APP_VERSION":      "1.2.3",
		"APP_LOG_PATH":     "/tmp/finance.log",

		"ADAPTER_ADDRESS":         "https://finance.example/api",
		"ADAPTER_IP_LOOKUP_URL":   "https://ip.example/?format=json",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DSN":     "/var/lib/finance/session.db",
		"STORAGE_BACKEND": "bolt",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "Console User", cfg.App.EntryAuthor)
	assert.Equal(t, "Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0", cfg.App.UserAgent)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/tmp/finance.log", cfg.App.LogPath)

	assert.Equal(t, "https://finance.example/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "https://ip.example/?format=json", cfg.Adapter.IPLookupURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/finance/session.db", cfg.Storage.DSN)
	assert.Equal(t, "bolt", cfg.Storage.Backend)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "http://localhost:3000/api",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/api", cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.Adapter.IPLookupURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

// ── helpers ───────────────────────────────────────────────────────────────────

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_ENTRY_AUTHOR",
		"APP_USER_AGENT",
		"APP_VERSION",
		"APP_LOG_PATH",

		"ADAPTER_ADDRESS",
		"ADAPTER_IP_LOOKUP_URL",
		"ADAPTER_REQUEST_TIMEOUT",

		"STORAGE_DSN",
		"STORAGE_BACKEND",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
