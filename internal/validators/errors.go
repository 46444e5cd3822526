// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationErrors is the ordered list of messages produced by a validator.
type ValidationErrors []string

// Error joins the messages with ", ", the way forms display them.
func (e ValidationErrors) Error() string {
	return strings.Join(e, ", ")
}

// orNil turns an empty list into a nil error so callers can test err != nil.
func (e ValidationErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Messages extracts the messages from err. ok is false when err is not a
// [ValidationErrors].
func Messages(err error) (msgs []string, ok bool) {
	var ve ValidationErrors
	if !errors.As(err, &ve) {
		return nil, false
	}
	return []string(ve), true
}
