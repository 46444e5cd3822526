// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] can be turned into a
// [ClientConfig]. Zero values are allowed here; the required groups are
// checked by [ClientConfig.validate] once defaults have been applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.Backend {
	case BackendSQLite, BackendBolt:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if !isHTTPURL(cfg.Adapter.HTTPAddress) {
		return fmt.Errorf("%w: bad api address %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if !isHTTPURL(cfg.Adapter.IPLookupURL) {
		return fmt.Errorf("%w: bad ip lookup url %q", ErrInvalidAdapterConfigs, cfg.Adapter.IPLookupURL)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.App.EntryAuthor) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
