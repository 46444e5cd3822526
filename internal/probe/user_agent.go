// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package probe

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// Unknown is reported for anything the probe cannot determine.
const Unknown = models.UnknownLabel

// ClientName is the product token of the default user agent.
const ClientName = "finance-tracker-client"

// browserRule classifies a user agent when it contains marker and does not
// contain any of the excluded substrings.
type browserRule struct {
	name     string
	marker   string
	excluded []string
	version  *regexp.Regexp
}

// browserRules are checked in order and the first match wins. Edge user
// agents also carry "Chrome" and are therefore reported as Chrome.
var browserRules = []browserRule{
	{name: "Chrome", marker: "Chrome", version: regexp.MustCompile(`Chrome/([0-9.]+)`)},
	{name: "Firefox", marker: "Firefox", version: regexp.MustCompile(`Firefox/([0-9.]+)`)},
	{name: "Safari", marker: "Safari", excluded: []string{"Chrome"}, version: regexp.MustCompile(`Version/([0-9.]+)`)},
	{name: "Edge", marker: "Edge", version: regexp.MustCompile(`Edge/([0-9.]+)`)},
}

// osRules are checked in order and the first match wins, so Android user
// agents, which mention Linux, are reported as Linux.
var osRules = []struct {
	marker string
	name   string
}{
	{"Windows", "Windows"},
	{"Mac", "macOS"},
	{"Linux", "Linux"},
	{"Android", "Android"},
	{"iOS", "iOS"},
}

// ParseUserAgent classifies ua into browser family, browser version and
// operating system. It never fails; unrecognised parts are [Unknown].
func ParseUserAgent(ua string) models.BrowserInfo {
	info := models.BrowserInfo{
		BrowserName:     Unknown,
		BrowserVersion:  Unknown,
		OperatingSystem: Unknown,
	}

	for _, rule := range browserRules {
		if !rule.matches(ua) {
			continue
		}
		info.BrowserName = rule.name
		if m := rule.version.FindStringSubmatch(ua); m != nil {
			info.BrowserVersion = m[1]
		}
		break
	}

	for _, rule := range osRules {
		if strings.Contains(ua, rule.marker) {
			info.OperatingSystem = rule.name
			break
		}
	}

	return info
}

func (r browserRule) matches(ua string) bool {
	if !strings.Contains(ua, r.marker) {
		return false
	}
	for _, ex := range r.excluded {
		if strings.Contains(ua, ex) {
			return false
		}
	}
	return true
}

// DefaultUserAgent builds the client user agent from the build version and
// a GOOS value, e.g. "finance-tracker-client/1.4.0 (X11; Linux)". The
// platform comment uses the tokens [ParseUserAgent] recognises.
func DefaultUserAgent(version, goos string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("%s/%s (%s)", ClientName, version, platformToken(goos))
}

func platformToken(goos string) string {
	switch goos {
	case "windows":
		return "Windows NT"
	case "darwin":
		return "Macintosh; Mac OS X"
	case "linux":
		return "X11; Linux"
	case "android":
		return "Linux; Android"
	case "ios":
		return "iPhone; iOS"
	case "":
		return Unknown
	default:
		return goos
	}
}
