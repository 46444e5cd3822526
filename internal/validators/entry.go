// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// Plausibility thresholds in rupees.
const (
	FoodExpenseCeiling       = 10000
	StationeryExpenseCeiling = 5000
	SalaryFloor              = 1000
	SalaryCeiling            = 1000000

	MinRecipientLength = 2
)

// Required fields of each entry form.
var (
	IncomeRequiredFields  = []string{models.FieldIncomeCategory, models.FieldAmount}
	ExpenseRequiredFields = []string{models.FieldExpenseCategory, models.FieldAmount}
	SalaryRequiredFields  = []string{models.FieldPaymentType, models.FieldAmount}
)

// ExpenseValidator runs the shared form checks followed by the expense
// plausibility checks.
type ExpenseValidator struct {
	now func() time.Time
}

// NewExpenseValidator constructs an ExpenseValidator. A nil clock means
// time.Now.
func NewExpenseValidator(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return &ExpenseValidator{now: now}
}

func (v *ExpenseValidator) Validate(ctx context.Context, obj any, required ...string) error {
	form, err := asForm(obj)
	if err != nil {
		return err
	}

	errs := ValidateForm(form, required...)
	errs = append(errs, CheckExpense(form, v.now())...)

	return ValidationErrors(errs).orNil()
}

// CheckExpense returns the plausibility warnings of an expense form.
// Unparseable amounts produce no warning; the form checks report them.
func CheckExpense(form models.FormData, now time.Time) []string {
	var errs []string

	amount, amountOK := plausibilityAmount(form)
	switch code(form, models.FieldExpenseCategory) {
	case models.ExpenseFood:
		if amountOK && amount > FoodExpenseCeiling {
			errs = append(errs, MsgFoodTooHigh)
		}
	case models.ExpenseStationery:
		if amountOK && amount > StationeryExpenseCeiling {
			errs = append(errs, MsgStationeryTooHigh)
		}
	}

	if form.Has(models.FieldSpentOn) {
		spentOn, err := utils.ParseDate(form.Get(models.FieldSpentOn))
		switch {
		case err != nil:
			errs = append(errs, MsgExpenseBadDate)
		case spentOn.After(startOfDay(now)):
			errs = append(errs, MsgExpenseFuture)
		}
	}

	return errs
}

// SalaryValidator runs the shared form checks followed by the salary
// plausibility checks.
type SalaryValidator struct {
	now func() time.Time
}

// NewSalaryValidator constructs a SalaryValidator. A nil clock means
// time.Now.
func NewSalaryValidator(now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return &SalaryValidator{now: now}
}

func (v *SalaryValidator) Validate(ctx context.Context, obj any, required ...string) error {
	form, err := asForm(obj)
	if err != nil {
		return err
	}

	errs := ValidateForm(form, required...)
	errs = append(errs, CheckSalary(form, v.now())...)

	return ValidationErrors(errs).orNil()
}

// CheckSalary returns the plausibility warnings of a salary form.
//
// A payment date counts as too old when it is before the same instant one
// year ago, so a date exactly one year back is rejected once the current
// day has started.
func CheckSalary(form models.FormData, now time.Time) []string {
	var errs []string

	amount, amountOK := plausibilityAmount(form)
	if code(form, models.FieldPaymentType) == models.PaymentSalary && amountOK {
		if amount < SalaryFloor {
			errs = append(errs, MsgSalaryTooLow)
		}
		if amount > SalaryCeiling {
			errs = append(errs, MsgSalaryTooHigh)
		}
	}

	if form.Has(models.FieldSpentDate) {
		paidOn, err := utils.ParseDate(form.Get(models.FieldSpentDate))
		if err != nil {
			errs = append(errs, MsgPaymentBadDate)
		} else {
			if paidOn.After(startOfDay(now)) {
				errs = append(errs, MsgPaymentFuture)
			}
			if paidOn.Before(now.AddDate(-1, 0, 0)) {
				errs = append(errs, MsgPaymentTooOld)
			}
		}
	}

	if form.Has(models.FieldPaymentToWhom) && length(form.Trimmed(models.FieldPaymentToWhom)) < MinRecipientLength {
		errs = append(errs, MsgRecipientTooShort)
	}

	return errs
}

func plausibilityAmount(form models.FormData) (float64, bool) {
	f, err := models.ParseAmountFloat(form.Get(models.FieldAmount))
	return f, err == nil
}

// code returns the integer code of field, or -1 when it is not a number.
func code(form models.FormData, field string) int {
	n, err := strconv.Atoi(strings.TrimSpace(form.Get(field)))
	if err != nil {
		return -1
	}
	return n
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
