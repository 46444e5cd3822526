// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{EntryAuthor: DefaultEntryAuthor},
		Adapter: ClientAdapter{
			HTTPAddress: DefaultHTTPAddress,
			IPLookupURL: DefaultIPLookupURL,
		},
		Storage: ClientStorage{DSN: DefaultStorageDSN, Backend: BackendSQLite},
	}
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(c *ClientConfig) {}},
		{name: "bolt backend", mutate: func(c *ClientConfig) { c.Storage.Backend = BackendBolt }},
		{name: "timeout set", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = time.Minute }},
		{
			name:    "empty dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DSN = " " },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown backend",
			mutate:  func(c *ClientConfig) { c.Storage.Backend = "postgres" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "api address without scheme",
			mutate:  func(c *ClientConfig) { c.Adapter.HTTPAddress = "localhost:3000" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "empty ip lookup url",
			mutate:  func(c *ClientConfig) { c.Adapter.IPLookupURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *ClientConfig) { c.Adapter.RequestTimeout = -1 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "empty entry author",
			mutate:  func(c *ClientConfig) { c.App.EntryAuthor = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_FromDefaults(t *testing.T) {
	cfg, err := newClientConfig(defaults())
	require.NoError(t, err)

	assert.Equal(t, DefaultEntryAuthor, cfg.App.EntryAuthor)
	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultIPLookupURL, cfg.Adapter.IPLookupURL)
	assert.Equal(t, DefaultStorageDSN, cfg.Storage.DSN)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}
