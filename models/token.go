// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Storage keys under which the session is persisted. Both are written on
// login and removed together on logout.
const (
	TokenStorageKey = "finance_auth_token"
	UserStorageKey  = "finance_user_data"
)

// Session is the persisted bearer credential together with the profile it
// was issued for. The token is opaque to the client.
type Session struct {
	// Token is the bearer credential sent in the Authorization header.
	Token string

	// User is the profile returned alongside the token.
	User User
}

// IsZero reports whether the session carries no token.
func (s Session) IsZero() bool {
	return strings.TrimSpace(s.Token) == ""
}

// ExpiresAt returns the "exp" claim of the token when the token happens to be
// a JWT. The signature is not verified; the value is only used for display
// and never decides whether the session is authenticated.
//
// ok is false when the token is not a JWT or carries no expiry.
func (s Session) ExpiresAt() (expiresAt time.Time, ok bool) {
	if s.IsZero() {
		return time.Time{}, false
	}

	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
