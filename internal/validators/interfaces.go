// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides client-side validation of finance entry forms
// and of login/registration input.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values. The
//     variadic field names are the fields the caller requires.
//   - ValidationErrors: ordered list of human-readable messages returned as
//     an error. A non-empty list blocks a submission before any network call.
//
// Entry validators run the generic field checks first and then the
// domain plausibility checks, combining both into one list.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input. The optional field names list
	// the fields that must be present and non-blank.
	//
	// The returned error is nil, [ValidationErrors], or [ErrUnsupportedType].
	Validate(context.Context, any, ...string) error
}
