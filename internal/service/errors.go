// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrRejectedByServer is returned when the backend answers 2xx with
	// success=false.
	ErrRejectedByServer = errors.New("request rejected by server")

	// ErrEmptyToken is returned when a successful login carries no token.
	ErrEmptyToken = errors.New("login response carries no token")
)
