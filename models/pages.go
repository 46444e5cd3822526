// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Page identifies a screen of the client. Navigation between pages is the
// only side effect the auth session manager performs on its own.
type Page string

const (
	PageLogin     Page = "login"
	PageRegister  Page = "register"
	PageIndex     Page = "index"
	PageIncome    Page = "income"
	PageExpense   Page = "expense"
	PageSalary    Page = "salary"
	PageDashboard Page = "dashboard"
	PageEntries   Page = "entries"
)

// IsAuthPage reports whether p is the login or the registration page.
func (p Page) IsAuthPage() bool {
	return p == PageLogin || p == PageRegister
}
