// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/probe"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type appInfoService struct {
	build      models.AppBuildInfo
	appVersion string
	userAgent  string

	logger *logger.Logger
}

// NewAppInfoService resolves the effective version and user agent. The
// configured version wins over the build version; the configured user agent
// wins over the one derived from the version and goos.
func NewAppInfoService(cfg config.ClientApp, build models.AppBuildInfo, goos string, logger *logger.Logger) AppInfoService {
	version := strings.TrimSpace(cfg.Version)
	if version == "" && build.BuildVersion() != "N/A" {
		version = build.BuildVersion()
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = probe.DefaultUserAgent(version, goos)
	}

	logger.Debug().
		Str("func", "NewAppInfoService").
		Str("version", version).
		Str("user_agent", userAgent).
		Msg("resolved app info")

	return &appInfoService{
		build:      build,
		appVersion: version,
		userAgent:  userAgent,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.build
}

func (s *appInfoService) UserAgent() string {
	return s.userAgent
}
