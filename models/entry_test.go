// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAudit = AuditInfo{
	EntryBy:      "Web User",
	IPAddress:    "203.0.113.7",
	BrowserName:  "Firefox",
	BrowserVer:   "128.0",
	OperatingSys: "Linux",
}

func TestNewExpenseEntry(t *testing.T) {
	form := FormData{
		FieldExpenseCategory: "2",
		FieldAmount:          "450.5",
		FieldSpentOn:         " 2026-10-01 ",
		FieldSpentThrough:    "UPI",
		FieldRemarks:         "lunch",
	}

	e, err := NewExpenseEntry(form, testAudit)
	require.NoError(t, err)

	assert.Equal(t, ExpenseFood, e.ExpenseCategory)
	assert.Equal(t, "Food", e.CategoryName())
	assert.Equal(t, int64(45050), e.Amount.Paise)
	assert.Equal(t, "2026-10-01", e.SpentOn)
	assert.Equal(t, DefaultStatus, e.Status)
	assert.Equal(t, testAudit, e.AuditInfo)

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"expense_cat": 2,
		"amount": 450.50,
		"spent_on": "2026-10-01",
		"spent_through": "UPI",
		"remarks": "lunch",
		"status": 1,
		"entry_by": "Web User",
		"ip_address": "203.0.113.7",
		"browser_name": "Firefox",
		"browser_ver": "128.0",
		"operating_sys": "Linux"
	}`, string(b))
}

func TestNewIncomeEntry(t *testing.T) {
	e, err := NewIncomeEntry(FormData{
		FieldIncomeCategory: "4",
		FieldAmount:         "12000",
		FieldStatus:         "3",
		FieldSenderMobile:   "9876543210",
	}, testAudit)
	require.NoError(t, err)

	assert.Equal(t, "Digital Marketing", e.CategoryName())
	assert.Equal(t, StatusWrongEntry, e.Status)
	assert.Equal(t, "9876543210", e.SenderMobile)
}

func TestNewSalaryEntry(t *testing.T) {
	e, err := NewSalaryEntry(FormData{
		FieldPaymentType:   "2",
		FieldAmount:        "50000",
		FieldSpentDate:     "2026-09-30",
		FieldPaymentToWhom: "Ravi",
	}, testAudit)
	require.NoError(t, err)

	assert.Equal(t, "Salary", e.PaymentTypeName())
	assert.Equal(t, NewAmount(50000), e.Amount)
}

func TestNewEntry_Errors(t *testing.T) {
	_, err := NewExpenseEntry(FormData{FieldExpenseCategory: "food", FieldAmount: "1"}, testAudit)
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = NewIncomeEntry(FormData{FieldIncomeCategory: "1", FieldAmount: "x"}, testAudit)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewSalaryEntry(FormData{FieldPaymentType: "1", FieldAmount: "1", FieldStatus: "ok"}, testAudit)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestLookups(t *testing.T) {
	assert.Equal(t, "Travel", ExpenseCategories.Name(1))
	assert.Equal(t, "Course", IncomeCategories.Name(1))
	assert.Equal(t, "Shares", PaymentTypes.Name(1))
	assert.Equal(t, "Inactive", EntryStatuses.Name(4))
	assert.Equal(t, UnknownLabel, ExpenseCategories.Name(9))
	assert.Equal(t, "Food", ExpenseCategories.NameOf("2"))
	assert.Equal(t, UnknownLabel, ExpenseCategories.NameOf("two"))
	assert.Equal(t, []int{1, 2, 3}, PaymentTypes.Codes())
}

func TestPayeePlaceholder(t *testing.T) {
	assert.Equal(t, "Employee name", PayeePlaceholder("2"))
	assert.Equal(t, "Shareholder name", PayeePlaceholder("1"))
	assert.Equal(t, "Recipient name", PayeePlaceholder("3"))
	assert.Equal(t, "Payment recipient", PayeePlaceholder(""))
}
