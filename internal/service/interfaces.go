// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client business logic that sits between the
// terminal screens and the backend: the auth session manager, the entry
// submission pipeline and build information.
//
// Nothing here renders or reads keystrokes; every operation takes a
// context, may block on the network and returns a value a screen can show.
package service

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Navigator switches the visible screen.
type Navigator interface {
	Navigate(page models.Page)
}

// AuthService manages the authenticated state of the client. The session is
// authenticated exactly when both the token and the profile are stored.
type AuthService interface {
	// Login authenticates against the backend and persists the session on
	// success. The session is left untouched on any failure.
	Login(ctx context.Context, email, password string, rememberMe bool) models.AuthResult

	// Register creates an account. It never changes the session.
	Register(ctx context.Context, req models.RegisterRequest) models.AuthResult

	// Logout clears the session and navigates to the login page, then
	// notifies the backend. The backend call is best effort and bounded by
	// [LogoutTimeout].
	Logout(ctx context.Context)

	// IsLoggedIn reports whether a token and a profile are stored.
	IsLoggedIn() bool

	// Token returns the stored bearer credential or "".
	Token() string

	// User returns the stored profile. ok is false when anonymous.
	User() (user models.User, ok bool)

	// Session returns a copy of the current session.
	Session() models.Session

	// IsAuthPage reports whether page is the login or registration page.
	IsAuthPage(page models.Page) bool

	// RedirectIfAuthenticated navigates to the index page when page is an
	// auth page and the session is authenticated. It reports whether it
	// navigated.
	RedirectIfAuthenticated(page models.Page) bool
}

// EntryService validates, enriches and submits entries and reads them back.
type EntryService interface {
	// SubmitIncome runs validate, probe, build and create in that order.
	SubmitIncome(ctx context.Context, form models.FormData) models.SubmitResult
	// SubmitExpense is SubmitIncome for expenses.
	SubmitExpense(ctx context.Context, form models.FormData) models.SubmitResult
	// SubmitSalary is SubmitIncome for salary entries.
	SubmitSalary(ctx context.Context, form models.FormData) models.SubmitResult

	ListIncome(ctx context.Context, filters models.Filters) ([]models.IncomeEntry, error)
	ListExpenses(ctx context.Context, filters models.Filters) ([]models.ExpenseEntry, error)
	ListSalary(ctx context.Context, filters models.Filters) ([]models.SalaryEntry, error)

	UpdateIncome(ctx context.Context, id int64, entry models.IncomeEntry) (models.IncomeEntry, error)
	UpdateExpense(ctx context.Context, id int64, entry models.ExpenseEntry) (models.ExpenseEntry, error)
	UpdateSalary(ctx context.Context, id int64, entry models.SalaryEntry) (models.SalaryEntry, error)

	DeleteIncome(ctx context.Context, id int64) error
	DeleteExpense(ctx context.Context, id int64) error
	DeleteSalary(ctx context.Context, id int64) error

	Dashboard(ctx context.Context) (models.DashboardSummary, error)
	AccountsDetails(ctx context.Context, filters models.Filters) ([]models.AccountDetail, error)

	// ProjectSalary returns the monthly and yearly view of a recurring
	// salary, or nil unless paymentType is the Salary code.
	ProjectSalary(amount float64, paymentType string) *models.SalaryProjection
}

// AppInfoService exposes build metadata and the effective user agent.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo() models.AppBuildInfo
	UserAgent() string
}
