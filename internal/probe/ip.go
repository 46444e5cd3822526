// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package probe

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
)

type ipResponse struct {
	IP string `json:"ip"`
}

type httpIPLookup struct {
	client *utils.HTTPClient
	url    string

	logger *logger.Logger
}

// NewIPLookup constructs an [IPLookup] that GETs lookupURL and reads the
// "ip" field of the JSON answer, the format of api.ipify.org.
func NewIPLookup(lookupURL string, timeout time.Duration, userAgent string, log *logger.Logger) IPLookup {
	return &httpIPLookup{
		client: utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: timeout, UserAgent: userAgent}),
		url:    lookupURL,
		logger: log,
	}
}

// PublicIP implements [IPLookup]. Transport errors, non-2xx answers and
// empty bodies all yield [Unknown]; the cause is logged at warn level.
func (l *httpIPLookup) PublicIP(ctx context.Context) string {
	var out ipResponse

	req := l.client.R().SetContext(ctx).SetResult(&out)
	if id, ok := utils.GetRequestIDFromContext(ctx); ok {
		req.SetHeader("X-Request-ID", id)
	}

	resp, err := req.Get(l.url)
	if err != nil {
		l.logger.Warn().Err(err).Str("func", "*httpIPLookup.PublicIP").Msg("ip lookup request failed")
		return Unknown
	}
	if resp.IsError() {
		l.logger.Warn().Str("func", "*httpIPLookup.PublicIP").
			Int("status", resp.StatusCode()).Msg("ip lookup returned an error status")
		return Unknown
	}

	ip := strings.TrimSpace(out.IP)
	if ip == "" {
		l.logger.Warn().Str("func", "*httpIPLookup.PublicIP").Msg("ip lookup returned no address")
		return Unknown
	}

	return ip
}
