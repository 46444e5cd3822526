// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCode is returned when a category, payment type or status code
// in a form is not an integer.
var ErrInvalidCode = errors.New("invalid code")

// EntryKind names one of the three entry resources.
type EntryKind string

const (
	KindIncome  EntryKind = "income"
	KindExpense EntryKind = "expense"
	KindSalary  EntryKind = "salary"
)

// BrowserInfo is the client classification derived from a user-agent string.
type BrowserInfo struct {
	BrowserName     string
	BrowserVersion  string
	OperatingSystem string
}

// AuditInfo is attached to every submitted entry and is never edited by the
// user.
type AuditInfo struct {
	EntryBy      string `json:"entry_by"`
	IPAddress    string `json:"ip_address"`
	BrowserName  string `json:"browser_name"`
	BrowserVer   string `json:"browser_ver"`
	OperatingSys string `json:"operating_sys"`
}

// IncomeEntry is a row of the income resource.
type IncomeEntry struct {
	ID                    int64  `json:"id,omitempty"`
	IncomeCategory        int    `json:"income_cat"`
	IncomeCategoryRemarks string `json:"income_cat_remarks,omitempty"`
	Amount                Amount `json:"amount"`
	ReceivedOn            string `json:"received_on,omitempty"`
	ReceivedBy            string `json:"received_by,omitempty"`
	SenderName            string `json:"sender_name,omitempty"`
	SenderMobile          string `json:"sender_mobile,omitempty"`
	Remarks               string `json:"remarks,omitempty"`
	Status                int    `json:"status"`
	CreatedAt             string `json:"created_at,omitempty"`

	AuditInfo
}

// CategoryName returns the income category label.
func (e IncomeEntry) CategoryName() string {
	return IncomeCategories.Name(e.IncomeCategory)
}

// ExpenseEntry is a row of the expenses resource.
type ExpenseEntry struct {
	ID                     int64  `json:"id,omitempty"`
	ExpenseCategory        int    `json:"expense_cat"`
	ExpenseCategoryRemarks string `json:"expense_cat_remarks,omitempty"`
	Amount                 Amount `json:"amount"`
	SpentOn                string `json:"spent_on,omitempty"`
	SpentBy                string `json:"spent_by,omitempty"`
	SpentThrough           string `json:"spent_through,omitempty"`
	Remarks                string `json:"remarks,omitempty"`
	Status                 int    `json:"status"`
	CreatedAt              string `json:"created_at,omitempty"`

	AuditInfo
}

// CategoryName returns the expense category label.
func (e ExpenseEntry) CategoryName() string {
	return ExpenseCategories.Name(e.ExpenseCategory)
}

// SalaryEntry is a row of the salary resource.
type SalaryEntry struct {
	ID                 int64  `json:"id,omitempty"`
	PaymentType        int    `json:"payment_type"`
	PaymentTypeRemarks string `json:"payment_type_remarks,omitempty"`
	Amount             Amount `json:"amount"`
	SpentDate          string `json:"spent_date,omitempty"`
	PaymentToWhom      string `json:"payment_to_whom,omitempty"`
	PaymentThrough     string `json:"payment_through,omitempty"`
	Remarks            string `json:"remarks,omitempty"`
	Status             int    `json:"status"`
	CreatedAt          string `json:"created_at,omitempty"`

	AuditInfo
}

// PaymentTypeName returns the payment type label.
func (e SalaryEntry) PaymentTypeName() string {
	return PaymentTypes.Name(e.PaymentType)
}

// NewIncomeEntry builds an income entry from an already validated form.
func NewIncomeEntry(form FormData, audit AuditInfo) (IncomeEntry, error) {
	category, err := parseCode(form, FieldIncomeCategory)
	if err != nil {
		return IncomeEntry{}, err
	}
	amount, err := ParseAmount(form.Get(FieldAmount))
	if err != nil {
		return IncomeEntry{}, err
	}
	status, err := parseStatus(form)
	if err != nil {
		return IncomeEntry{}, err
	}

	return IncomeEntry{
		IncomeCategory:        category,
		IncomeCategoryRemarks: form.Get(FieldIncomeCategoryRemarks),
		Amount:                amount,
		ReceivedOn:            form.Trimmed(FieldReceivedOn),
		ReceivedBy:            form.Get(FieldReceivedBy),
		SenderName:            form.Get(FieldSenderName),
		SenderMobile:          form.Get(FieldSenderMobile),
		Remarks:               form.Get(FieldRemarks),
		Status:                status,
		AuditInfo:             audit,
	}, nil
}

// NewExpenseEntry builds an expense entry from an already validated form.
func NewExpenseEntry(form FormData, audit AuditInfo) (ExpenseEntry, error) {
	category, err := parseCode(form, FieldExpenseCategory)
	if err != nil {
		return ExpenseEntry{}, err
	}
	amount, err := ParseAmount(form.Get(FieldAmount))
	if err != nil {
		return ExpenseEntry{}, err
	}
	status, err := parseStatus(form)
	if err != nil {
		return ExpenseEntry{}, err
	}

	return ExpenseEntry{
		ExpenseCategory:        category,
		ExpenseCategoryRemarks: form.Get(FieldExpenseCategoryRemarks),
		Amount:                 amount,
		SpentOn:                form.Trimmed(FieldSpentOn),
		SpentBy:                form.Get(FieldSpentBy),
		SpentThrough:           form.Get(FieldSpentThrough),
		Remarks:                form.Get(FieldRemarks),
		Status:                 status,
		AuditInfo:              audit,
	}, nil
}

// NewSalaryEntry builds a salary entry from an already validated form.
func NewSalaryEntry(form FormData, audit AuditInfo) (SalaryEntry, error) {
	paymentType, err := parseCode(form, FieldPaymentType)
	if err != nil {
		return SalaryEntry{}, err
	}
	amount, err := ParseAmount(form.Get(FieldAmount))
	if err != nil {
		return SalaryEntry{}, err
	}
	status, err := parseStatus(form)
	if err != nil {
		return SalaryEntry{}, err
	}

	return SalaryEntry{
		PaymentType:        paymentType,
		PaymentTypeRemarks: form.Get(FieldPaymentTypeRemarks),
		Amount:             amount,
		SpentDate:          form.Trimmed(FieldSpentDate),
		PaymentToWhom:      form.Get(FieldPaymentToWhom),
		PaymentThrough:     form.Get(FieldPaymentThrough),
		Remarks:            form.Get(FieldRemarks),
		Status:             status,
		AuditInfo:          audit,
	}, nil
}

func parseCode(form FormData, field string) (int, error) {
	raw := form.Trimmed(field)
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidCode, field, raw)
	}
	return code, nil
}

func parseStatus(form FormData) (int, error) {
	if strings.TrimSpace(form.Get(FieldStatus)) == "" {
		return DefaultStatus, nil
	}
	return parseCode(form, FieldStatus)
}

// SalaryProjection is the monthly and yearly view of a recurring salary.
type SalaryProjection struct {
	Monthly float64
	Yearly  float64

	MonthlyFormatted string
	YearlyFormatted  string
}
