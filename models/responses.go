// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// APIResponse is the envelope every backend resource answers with. A call
// counts as successful only when the HTTP status is 2xx and Success is true.
type APIResponse[T any] struct {
	// Success is the backend's own verdict on the operation.
	Success bool `json:"success"`

	// Message is a human-readable explanation, mostly set on failure.
	Message string `json:"message,omitempty"`

	// Data is the resource payload, if any.
	Data T `json:"data,omitempty"`
}

// StatusResponse is an envelope whose payload is not interpreted, e.g. the
// answer to a DELETE.
type StatusResponse = APIResponse[json.RawMessage]

// AuthResponse is the body returned by POST /auth/login and
// POST /auth/register.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	User    User   `json:"user"`
}

// DashboardSummary is the payload of GET /dashboard.
type DashboardSummary struct {
	TotalIncome   Amount `json:"total_income"`
	TotalExpenses Amount `json:"total_expenses"`
	TotalSalary   Amount `json:"total_salary"`
	Balance       Amount `json:"balance"`

	IncomeCount  int `json:"income_count"`
	ExpenseCount int `json:"expense_count"`
	SalaryCount  int `json:"salary_count"`
}

// AccountDetail is one audit row of GET /accounts-details: which entry was
// recorded, by whom and from where.
type AccountDetail struct {
	ID        int64     `json:"id"`
	EntryType EntryKind `json:"entry_type"`
	EntryID   int64     `json:"entry_id"`
	Amount    Amount    `json:"amount"`
	CreatedAt string    `json:"created_at"`

	AuditInfo
}
