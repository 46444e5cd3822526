// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the finance
// tracker client.
//
// Services return these strings in results that screens display verbatim.
// Keeping them in one place keeps the wording consistent across forms.
package app

// Authentication outcomes.
const (
	MsgLoginSuccess = "Login successful!"
	// MsgLoginFailed is used when the backend rejects a login without a
	// message of its own.
	MsgLoginFailed = "Login failed"
	// MsgLoginError is used for transport and HTTP failures.
	MsgLoginError = "Login failed. Please try again."

	MsgRegisterSuccess = "Registration successful! Please login."
	MsgRegisterFailed  = "Registration failed"
	MsgRegisterError   = "Registration failed. Please try again."
)

// Entry submission outcomes.
const (
	MsgIncomeAdded  = "Income added successfully!"
	MsgExpenseAdded = "Expense added successfully!"
	MsgSalaryAdded  = "Salary entry added successfully!"

	MsgIncomeFailed  = "Failed to add income entry. Please try again."
	MsgExpenseFailed = "Failed to add expense entry. Please try again."
	MsgSalaryFailed  = "Failed to add salary entry. Please try again."
)

// Screen messages.
const (
	MsgLoading            = "Loading..."
	MsgSubmitting         = "Submitting..."
	MsgNoEntries          = "No entries found."
	MsgCopied             = "Amount copied to clipboard."
	MsgCopyFailed         = "Could not copy to clipboard."
	MsgLoadFailed         = "Failed to load data. Please try again."
	MsgDeleted            = "Entry deleted."
	MsgDeleteFailed       = "Failed to delete entry. Please try again."
	MsgSessionExpires     = "Session expires"
	MsgNetworkUnavailable = "Network unavailable or server unreachable."
)
