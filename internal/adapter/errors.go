// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed wraps transport failures: DNS, refused connections,
	// timeouts and cancelled contexts.
	ErrRequestFailed = errors.New("api request failed")

	// ErrUnexpectedStatus is matched by every [*StatusError].
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrDecodingResponse is returned when a 2xx body is not the expected JSON.
	ErrDecodingResponse = errors.New("error decoding api response")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Body is the trimmed raw response body.
	Body string
	// Message is the "message" field of a JSON error envelope, if any.
	Message string

	kind error
}

func (e *StatusError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		return fmt.Sprintf("http error! status: %d", e.StatusCode)
	}
	return fmt.Sprintf("http error! status: %d: %s", e.StatusCode, detail)
}

// Unwrap makes the error match [ErrUnexpectedStatus] and, for well-known
// codes, the status-specific sentinel.
func (e *StatusError) Unwrap() []error {
	if e.kind == nil {
		return []error{ErrUnexpectedStatus}
	}
	return []error{ErrUnexpectedStatus, e.kind}
}
