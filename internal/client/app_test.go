// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func testConfig(t *testing.T, backend string) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		App: config.ClientApp{EntryAuthor: "Web User", Version: "1.0.0"},
		Adapter: config.ClientAdapter{
			HTTPAddress: "http://localhost:3000/api",
			IPLookupURL: "http://localhost:3000/ip",
		},
		Storage: config.ClientStorage{
			DSN:     filepath.Join(t.TempDir(), "finance-client.db"),
			Backend: backend,
		},
	}
}

func TestNewApp_RestoresStoredSession(t *testing.T) {
	for _, backend := range []string{config.BackendSQLite, config.BackendBolt} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, backend)

			storages, err := store.NewClientStorages(ctx, cfg.Storage, logger.Nop())
			require.NoError(t, err)
			require.NoError(t, storages.SaveSession(ctx, models.Session{
				Token: "abc",
				User:  models.User{FirstName: "Asha", Email: "asha@example.com"},
			}))
			require.NoError(t, storages.Close())

			app, err := NewApp(ctx, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
			require.NoError(t, err)
			defer app.Close()

			assert.True(t, app.auth.IsLoggedIn())
			assert.Equal(t, "abc", app.auth.Token())
			assert.Equal(t, "1.0.0", app.appInfo.GetAppVersion(ctx))
		})
	}
}

func TestNewApp_AnonymousOnFreshStorage(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t, config.BackendSQLite), models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	assert.False(t, app.auth.IsLoggedIn())
	_, ok := app.auth.User()
	assert.False(t, ok)
}

func TestNewApp_Errors(t *testing.T) {
	t.Run("unsupported backend", func(t *testing.T) {
		_, err := NewApp(context.Background(), testConfig(t, "redis"), models.AppBuildInfo{}, logger.Nop())
		assert.ErrorIs(t, err, store.ErrUnsupportedBackend)
	})

	t.Run("empty api address", func(t *testing.T) {
		cfg := testConfig(t, config.BackendBolt)
		cfg.Adapter.HTTPAddress = "  "

		_, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())
		assert.ErrorContains(t, err, "create finance api client")
	})
}

func TestApp_ImplementsClient(t *testing.T) {
	var _ Client = (*App)(nil)
}
