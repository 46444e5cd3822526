// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-level settings.
type ClientApp struct {
	// EntryAuthor is the fallback entry_by value.
	EntryAuthor string
	// UserAgent overrides the default client user agent when non-empty.
	UserAgent string
	// Version overrides the build version when non-empty.
	Version string
	// LogPath is the log file; empty means next to the executable.
	LogPath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the finance API.
	HTTPAddress string
	// IPLookupURL is the public IP lookup endpoint.
	IPLookupURL string
	// RequestTimeout is the timeout for outbound requests; zero disables it.
	RequestTimeout time.Duration
}

// ClientStorage holds local session store settings.
type ClientStorage struct {
	// DSN is the database file path.
	DSN string
	// Backend is [BackendSQLite] or [BackendBolt].
	Backend string
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			EntryAuthor: cfg.App.EntryAuthor,
			UserAgent:   cfg.App.UserAgent,
			Version:     cfg.App.Version,
			LogPath:     cfg.App.LogPath,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			IPLookupURL:    cfg.Adapter.IPLookupURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN:     cfg.Storage.DSN,
			Backend: cfg.Storage.Backend,
		},
	}

	return clientCfg, clientCfg.validate()
}
