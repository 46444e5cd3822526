// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// fixedNow is mid-afternoon so that day boundaries are unambiguous.
var fixedNow = time.Date(2026, time.October, 17, 15, 0, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

func expenseForm(category, amount, spentOn string) models.FormData {
	return models.FormData{
		models.FieldExpenseCategory: category,
		models.FieldAmount:          amount,
		models.FieldSpentOn:         spentOn,
	}
}

func salaryForm(paymentType, amount, spentDate string) models.FormData {
	return models.FormData{
		models.FieldPaymentType:   paymentType,
		models.FieldAmount:        amount,
		models.FieldSpentDate:     spentDate,
		models.FieldPaymentToWhom: "Ravi Kumar",
	}
}

// ---------------------------------------------------------------------------
// Expense
// ---------------------------------------------------------------------------

func TestCheckExpense(t *testing.T) {
	tests := []struct {
		name string
		form models.FormData
		want []string
	}{
		{name: "plausible food", form: expenseForm("2", "10000", "2026-10-17")},
		{name: "food too high", form: expenseForm("2", "15000", "2026-10-01"), want: []string{MsgFoodTooHigh}},
		{name: "stationery at ceiling", form: expenseForm("3", "5000", "2026-10-01")},
		{name: "stationery too high", form: expenseForm("3", "5000.01", "2026-10-01"), want: []string{MsgStationeryTooHigh}},
		{name: "travel has no ceiling", form: expenseForm("1", "90000", "2026-10-01")},
		{name: "tomorrow", form: expenseForm("1", "10", "2026-10-18"), want: []string{MsgExpenseFuture}},
		{name: "today", form: expenseForm("1", "10", "2026-10-17")},
		{name: "bad date", form: expenseForm("1", "10", "17/10/2026"), want: []string{MsgExpenseBadDate}},
		{name: "no date", form: expenseForm("1", "10", "")},
		{name: "unparseable amount", form: expenseForm("2", "lots", "")},
		{
			name: "high and future",
			form: expenseForm("2", "20000", "2027-01-01"),
			want: []string{MsgFoodTooHigh, MsgExpenseFuture},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckExpense(tt.form, fixedNow))
		})
	}
}

func TestExpenseValidator_CombinesGenericFirst(t *testing.T) {
	form := expenseForm("2", "15000", "2026-10-01")
	form[models.FieldRemarks] = "this remark is far too long"

	err := NewExpenseValidator(clock).Validate(context.Background(), form, ExpenseRequiredFields...)
	msgs, ok := Messages(err)
	require.True(t, ok)
	assert.Equal(t, []string{MsgRemarksTooLong, MsgFoodTooHigh}, msgs)
}

// TestExpenseValidator_FoodScenario covers the food expense of 15000 that
// must be blocked with a warning.
func TestExpenseValidator_FoodScenario(t *testing.T) {
	form := models.FormData{
		models.FieldExpenseCategory: "2",
		models.FieldAmount:          "15000",
	}

	err := NewExpenseValidator(clock).Validate(context.Background(), form, ExpenseRequiredFields...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Food expense seems unusually high")
}

func TestExpenseValidator_Valid(t *testing.T) {
	err := NewExpenseValidator(clock).Validate(context.Background(), expenseForm("1", "450", "2026-10-16"), ExpenseRequiredFields...)
	assert.NoError(t, err)
}

func TestExpenseValidator_NilClockUsesNow(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	err := NewExpenseValidator(nil).Validate(context.Background(), expenseForm("1", "10", today), ExpenseRequiredFields...)
	assert.NoError(t, err)
}

func TestExpenseValidator_UnsupportedType(t *testing.T) {
	err := NewExpenseValidator(clock).Validate(context.Background(), "form")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Salary
// ---------------------------------------------------------------------------

func TestCheckSalary(t *testing.T) {
	tests := []struct {
		name string
		form models.FormData
		want []string
	}{
		{name: "plausible salary", form: salaryForm("2", "5000", "2026-09-30")},
		{name: "salary too low", form: salaryForm("2", "500", "2026-09-30"), want: []string{MsgSalaryTooLow}},
		{name: "salary at floor", form: salaryForm("2", "1000", "2026-09-30")},
		{name: "salary too high", form: salaryForm("2", "1000000.01", "2026-09-30"), want: []string{MsgSalaryTooHigh}},
		{name: "shares are not checked", form: salaryForm("1", "10", "2026-09-30")},
		{name: "future", form: salaryForm("3", "10", "2026-10-18"), want: []string{MsgPaymentFuture}},
		{name: "within a year", form: salaryForm("3", "10", "2025-10-18")},
		{name: "exactly a year ago", form: salaryForm("3", "10", "2025-10-17"), want: []string{MsgPaymentTooOld}},
		{name: "too old", form: salaryForm("3", "10", "2024-01-01"), want: []string{MsgPaymentTooOld}},
		{name: "bad date", form: salaryForm("3", "10", "yesterday"), want: []string{MsgPaymentBadDate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckSalary(tt.form, fixedNow))
		})
	}
}

func TestCheckSalary_Recipient(t *testing.T) {
	form := salaryForm("3", "10", "")

	form[models.FieldPaymentToWhom] = " A "
	assert.Equal(t, []string{MsgRecipientTooShort}, CheckSalary(form, fixedNow))

	form[models.FieldPaymentToWhom] = "Al"
	assert.Empty(t, CheckSalary(form, fixedNow))

	delete(form, models.FieldPaymentToWhom)
	assert.Empty(t, CheckSalary(form, fixedNow))
}

// TestSalaryValidator_LowSalaryScenario covers the salary of 500 that must be
// blocked and the same entry with 5000 that must pass.
func TestSalaryValidator_LowSalaryScenario(t *testing.T) {
	v := NewSalaryValidator(clock)
	ctx := context.Background()

	low := salaryForm("2", "500", "2026-06-01")
	err := v.Validate(ctx, low, SalaryRequiredFields...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seems unusually low")

	ok := salaryForm("2", "5000", "2026-06-01")
	assert.NoError(t, v.Validate(ctx, ok, SalaryRequiredFields...))
}

func TestSalaryValidator_CombinesGenericFirst(t *testing.T) {
	form := salaryForm("2", "", "2030-01-01")

	err := NewSalaryValidator(clock).Validate(context.Background(), form, SalaryRequiredFields...)
	msgs, ok := Messages(err)
	require.True(t, ok)
	assert.Equal(t, []string{"amount is required", MsgPaymentFuture}, msgs)
}
