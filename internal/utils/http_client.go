// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero fields leave the resty
// defaults in place.
type HTTPClientOptions struct {
	// BaseURL is prepended to relative request paths.
	BaseURL string
	// Timeout bounds every request; zero means no client-side timeout.
	Timeout time.Duration
	// UserAgent is sent as the User-Agent header of every request.
	UserAgent string
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool, configured from opts. JSON is the default content type.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "http://localhost:3000/api"})
//	resp, err := client.R().SetResult(&out).Get("/dashboard")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}
