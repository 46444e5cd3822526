// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the REST client of the finance backend.
//
// [FinanceAPI] is a façade over a single request primitive, [FinanceAPI.Do],
// which attaches the stored bearer credential, the client user agent and a
// request ID to every call and turns non-2xx responses into [*StatusError].
// Callers use [errors.Is] with [ErrUnexpectedStatus] or the status-specific
// sentinels (e.g. [ErrUnauthorized] for 401) and [ErrRequestFailed] for
// transport failures.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenSource yields the bearer credential currently held by the session.
// It is consulted on every request; an empty string means no Authorization
// header is sent.
type TokenSource interface {
	Token() string
}

// FinanceAPI defines communication with the finance backend. No operation
// retries or refreshes credentials; every failure is returned to the caller.
type FinanceAPI interface {
	// Do sends one request to path (relative to the configured base URL).
	// body, when non-nil, is encoded as JSON; query becomes URL query
	// parameters; headers are applied last. A 2xx JSON body is decoded into
	// result when result is non-nil.
	Do(ctx context.Context, method, path string, body any, headers map[string]string, query models.Filters, result any) error

	// Login sends POST /auth/login.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	// Register sends POST /auth/register.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	// Logout sends POST /auth/logout authorized with token. The token is
	// passed explicitly since the stored session is already cleared.
	Logout(ctx context.Context, token string) error
	// VerifyToken sends GET /auth/verify.
	VerifyToken(ctx context.Context) (models.APIResponse[models.User], error)

	AddIncome(ctx context.Context, entry models.IncomeEntry) (models.APIResponse[models.IncomeEntry], error)
	ListIncome(ctx context.Context, filters models.Filters) (models.APIResponse[[]models.IncomeEntry], error)
	UpdateIncome(ctx context.Context, id int64, entry models.IncomeEntry) (models.APIResponse[models.IncomeEntry], error)
	DeleteIncome(ctx context.Context, id int64) (models.StatusResponse, error)

	AddExpense(ctx context.Context, entry models.ExpenseEntry) (models.APIResponse[models.ExpenseEntry], error)
	ListExpenses(ctx context.Context, filters models.Filters) (models.APIResponse[[]models.ExpenseEntry], error)
	UpdateExpense(ctx context.Context, id int64, entry models.ExpenseEntry) (models.APIResponse[models.ExpenseEntry], error)
	DeleteExpense(ctx context.Context, id int64) (models.StatusResponse, error)

	AddSalary(ctx context.Context, entry models.SalaryEntry) (models.APIResponse[models.SalaryEntry], error)
	ListSalary(ctx context.Context, filters models.Filters) (models.APIResponse[[]models.SalaryEntry], error)
	UpdateSalary(ctx context.Context, id int64, entry models.SalaryEntry) (models.APIResponse[models.SalaryEntry], error)
	DeleteSalary(ctx context.Context, id int64) (models.StatusResponse, error)

	// Dashboard sends GET /dashboard.
	Dashboard(ctx context.Context) (models.APIResponse[models.DashboardSummary], error)
	// AccountsDetails sends GET /accounts-details.
	AccountsDetails(ctx context.Context, filters models.Filters) (models.APIResponse[[]models.AccountDetail], error)
}
