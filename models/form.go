// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Form field names. They double as the JSON field names of the backend
// entry resources.
const (
	FieldIncomeCategory        = "income_cat"
	FieldIncomeCategoryRemarks = "income_cat_remarks"
	FieldReceivedOn            = "received_on"
	FieldReceivedBy            = "received_by"
	FieldSenderName            = "sender_name"
	FieldSenderMobile          = "sender_mobile"

	FieldExpenseCategory        = "expense_cat"
	FieldExpenseCategoryRemarks = "expense_cat_remarks"
	FieldSpentOn                = "spent_on"
	FieldSpentBy                = "spent_by"
	FieldSpentThrough           = "spent_through"

	FieldPaymentType        = "payment_type"
	FieldPaymentTypeRemarks = "payment_type_remarks"
	FieldSpentDate          = "spent_date"
	FieldPaymentToWhom      = "payment_to_whom"
	FieldPaymentThrough     = "payment_through"

	FieldAmount  = "amount"
	FieldRemarks = "remarks"
	FieldStatus  = "status"
	FieldMobile  = "mobile"

	FieldEntryBy      = "entry_by"
	FieldIPAddress    = "ip_address"
	FieldBrowserName  = "browser_name"
	FieldBrowserVer   = "browser_ver"
	FieldOperatingSys = "operating_sys"
)

// FormData is a candidate entry exactly as typed into a form, keyed by field
// name. Absent keys and blank values are treated the same way.
type FormData map[string]string

// Get returns the raw value of field or "" when it is absent.
func (f FormData) Get(field string) string {
	if f == nil {
		return ""
	}
	return f[field]
}

// Has reports whether field carries a non-empty value.
func (f FormData) Has(field string) bool {
	return f.Get(field) != ""
}

// Trimmed returns the value of field without surrounding whitespace.
func (f FormData) Trimmed(field string) string {
	return strings.TrimSpace(f.Get(field))
}

// SanitizeAmountInput keeps digits and a single decimal point, the way the
// amount inputs filter keystrokes. Every point after the first is dropped.
func SanitizeAmountInput(v string) string {
	var b strings.Builder
	seenPoint := false
	for _, r := range v {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenPoint:
			seenPoint = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeMobileInput keeps only digits and truncates to 10 of them.
func SanitizeMobileInput(v string) string {
	var b strings.Builder
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			continue
		}
		if n == 10 {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// SubmitResult is the outcome of an entry submission. Errors holds the
// validation messages when the form was rejected locally; Message is set
// for network outcomes.
type SubmitResult struct {
	Success bool
	Message string
	Errors  []string
}
