// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the client:
// en-IN currency and date presentation, request-scoped context values,
// request ID generation and the resty HTTP client constructor.
package utils
