// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage backends understood by [Storage.Backend].
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// Default values applied to every field no other source has set.
const (
	DefaultHTTPAddress = "http://localhost:3000/api"
	DefaultIPLookupURL = "https://api.ipify.org?format=json"
	DefaultStorageDSN  = "finance-client.db"
	DefaultEntryAuthor = "Web User"
)

// StructuredConfig is the top-level configuration container of the finance
// tracker client. It is populated by merging a .env file, environment
// variables, command-line flags, an optional JSON file and finally the
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings describing the client itself: who is recorded as
	// the author of submitted entries and how the client identifies itself.
	App App `envPrefix:"APP_"`

	// Adapter holds the addresses of the remote services the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the location and kind of the local session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-level settings.
type App struct {
	// EntryAuthor is recorded as entry_by on submitted entries when the
	// signed-in profile carries no name.
	// Env: APP_ENTRY_AUTHOR
	EntryAuthor string `env:"ENTRY_AUTHOR"`

	// UserAgent overrides the client user agent. It is classified into the
	// browser/OS audit fields and sent as the User-Agent header.
	// Env: APP_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// Version overrides the build version shown on the menu screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogPath is the file the client logs to. Empty means a file next to
	// the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Adapter holds settings of the outbound HTTP integrations.
type Adapter struct {
	// HTTPAddress is the base URL of the finance REST API
	// (e.g. "http://localhost:3000/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// IPLookupURL is the endpoint answering {"ip": "..."} for the caller.
	// Env: ADAPTER_IP_LOOKUP_URL
	IPLookupURL string `env:"IP_LOOKUP_URL"`

	// RequestTimeout bounds a single outbound request. Zero means no
	// client-side timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings of the local session store.
type Storage struct {
	// DSN is the path of the database file.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// Backend selects the database engine: "sqlite" or "bolt".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`
}

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			EntryAuthor: DefaultEntryAuthor,
		},
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
			IPLookupURL: DefaultIPLookupURL,
		},
		Storage: Storage{
			DSN:     DefaultStorageDSN,
			Backend: BackendSQLite,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Sources are merged with [mergo.Merge], so the first source that
// sets a field wins:
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first, never overriding variables already set)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
