// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// BaseURL holds an http(s) URL given on the command line.
// It implements the flag.Value interface.
type BaseURL struct {
	URL *url.URL
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a finance API base URL, e.g. http://localhost:3000/api
//	-ip-lookup-url public IP lookup endpoint
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-d session database path
//	-storage session storage backend: sqlite or bolt
//	-entry-author fallback entry author
//	-user-agent client user agent
//	-log-path log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("finance-client", flag.ContinueOnError)

	var apiAddress, ipLookupURL BaseURL
	var requestTimeout time.Duration
	var databaseDSN string
	var storageBackend string
	var entryAuthor string
	var userAgent string
	var logPath string
	var jsonConfigPath string

	fs.Var(&apiAddress, "a", "Finance API base URL")
	fs.Var(&ipLookupURL, "ip-lookup-url", "Public IP lookup endpoint")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Session database path")
	fs.StringVar(&storageBackend, "storage", "", "Session storage backend (sqlite, bolt)")
	fs.StringVar(&entryAuthor, "entry-author", "", "Fallback author of submitted entries")
	fs.StringVar(&userAgent, "user-agent", "", "Client user agent")
	fs.StringVar(&logPath, "log-path", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			EntryAuthor: entryAuthor,
			UserAgent:   userAgent,
			LogPath:     logPath,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress.String(),
			IPLookupURL:    ipLookupURL.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DSN:     databaseDSN,
			Backend: storageBackend,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the URL without a trailing slash, or "" when unset.
func (u *BaseURL) String() string {
	if u == nil || u.URL == nil {
		return ""
	}

	return strings.TrimRight(u.URL.String(), "/")
}

// Set parses s as an absolute http or https URL.
func (u *BaseURL) Set(s string) error {
	parsed, err := url.Parse(s)
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("need an http or https URL")
	}

	if parsed.Host == "" {
		return errors.New("URL has no host")
	}

	u.URL = parsed
	return nil
}
