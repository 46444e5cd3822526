// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/probe"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/internal/tui"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// App is the assembled client.
type App struct {
	storages *store.ClientStorages
	auth     service.AuthService
	appInfo  service.AppInfoService
	ui       *tui.TUI

	logger *logger.Logger
}

// NewApp wires every component from cfg. The session is loaded from storage
// once here and shared by the API client and the services.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	session := service.NewSession(ctx, storages, logger)
	appInfo := service.NewAppInfoService(cfg.App, build, runtime.GOOS, logger)
	userAgent := appInfo.UserAgent()

	api, err := adapter.NewHTTPFinanceAPI(cfg.Adapter, userAgent, session, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create finance api client: %w", err)
	}

	ipLookup := probe.NewIPLookup(cfg.Adapter.IPLookupURL, cfg.Adapter.RequestTimeout, userAgent, logger)
	envProbe := probe.NewEnvironmentProbe(userAgent, ipLookup)

	navigator := tui.NewProgramNavigator()
	auth := service.NewAuthService(api, session, navigator, logger)
	entries := service.NewEntryService(api, envProbe, cfg.App.EntryAuthor, time.Now, logger)

	return &App{
		storages: storages,
		auth:     auth,
		appInfo:  appInfo,
		ui:       tui.New(auth, entries, appInfo, navigator, logger),
		logger:   logger,
	}, nil
}

// Run shows the terminal UI until the user quits, then closes the storage.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.logger.Info().
		Str("func", "*App.Run").
		Str("version", a.appInfo.GetAppVersion(ctx)).
		Bool("logged_in", a.auth.IsLoggedIn()).
		Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client ui: %w", err)
	}
	return nil
}

// Close releases the session storage.
func (a *App) Close() {
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "*App.Close").Msg("error closing local storage")
	}
}
