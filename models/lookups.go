// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strconv"
)

// UnknownLabel is shown for codes missing from a lookup table.
const UnknownLabel = "Unknown"

// Expense categories.
const (
	ExpenseTravel     = 1
	ExpenseFood       = 2
	ExpenseStationery = 3
	ExpenseBanking    = 4
	ExpenseOthers     = 5
)

// Income categories.
const (
	IncomeCourse           = 1
	IncomeInternship       = 2
	IncomeProject          = 3
	IncomeDigitalMarketing = 4
	IncomeOthers           = 5
)

// Payment types of salary entries.
const (
	PaymentShares = 1
	PaymentSalary = 2
	PaymentOthers = 3
)

// Entry statuses.
const (
	StatusSuccess    = 1
	StatusFailed     = 2
	StatusWrongEntry = 3
	StatusInactive   = 4

	// DefaultStatus is preselected on every new form.
	DefaultStatus = StatusSuccess
)

// Lookup maps a small integer code to a display label.
type Lookup map[int]string

// Name returns the label of code, or [UnknownLabel].
func (l Lookup) Name(code int) string {
	if name, ok := l[code]; ok {
		return name
	}
	return UnknownLabel
}

// NameOf resolves a code given as form text, e.g. "2".
func (l Lookup) NameOf(code string) string {
	n, err := strconv.Atoi(code)
	if err != nil {
		return UnknownLabel
	}
	return l.Name(n)
}

// Codes returns the known codes in ascending order.
func (l Lookup) Codes() []int {
	codes := make([]int, 0, len(l))
	for code := range l {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

var (
	ExpenseCategories = Lookup{
		ExpenseTravel:     "Travel",
		ExpenseFood:       "Food",
		ExpenseStationery: "Stationery",
		ExpenseBanking:    "Banking",
		ExpenseOthers:     "Others",
	}

	IncomeCategories = Lookup{
		IncomeCourse:           "Course",
		IncomeInternship:       "Internship",
		IncomeProject:          "Project",
		IncomeDigitalMarketing: "Digital Marketing",
		IncomeOthers:           "Others",
	}

	PaymentTypes = Lookup{
		PaymentShares: "Shares",
		PaymentSalary: "Salary",
		PaymentOthers: "Others",
	}

	EntryStatuses = Lookup{
		StatusSuccess:    "Success",
		StatusFailed:     "Failed",
		StatusWrongEntry: "Wrong Entry",
		StatusInactive:   "Inactive",
	}
)

// Input suggestions offered next to free-text "through" fields.
var (
	TransactionModes = []string{"Cash", "UPI", "Credit Card", "Debit Card", "Net Banking", "Cheque"}
	PaymentModes     = []string{"Bank Transfer", "Cash", "Cheque", "UPI", "NEFT", "RTGS", "IMPS"}
)

// PayeePlaceholder returns the hint shown in the "paid to" input for the
// given payment type code.
func PayeePlaceholder(paymentType string) string {
	switch paymentType {
	case "":
		return "Payment recipient"
	case strconv.Itoa(PaymentSalary):
		return "Employee name"
	case strconv.Itoa(PaymentShares):
		return "Shareholder name"
	default:
		return "Recipient name"
	}
}
