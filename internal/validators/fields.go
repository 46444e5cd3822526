// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// Character limits of the backend VARCHAR columns.
const (
	LongTextLimit  = 200
	NameLimit      = 50
	ShortTextLimit = 20

	// ExpenseRemarksLimit caps remarks on expense and salary forms only.
	ExpenseRemarksLimit = 20

	MobileDigits = 10
)

type fieldLimit struct {
	field string
	limit int
}

// fieldLimits is checked in this order, so messages come out in this order.
var fieldLimits = []fieldLimit{
	{models.FieldIncomeCategoryRemarks, LongTextLimit},
	{models.FieldExpenseCategoryRemarks, LongTextLimit},
	{models.FieldPaymentTypeRemarks, LongTextLimit},
	{models.FieldReceivedBy, NameLimit},
	{models.FieldSenderName, NameLimit},
	{models.FieldSenderMobile, ShortTextLimit},
	{models.FieldSpentBy, NameLimit},
	{models.FieldSpentThrough, NameLimit},
	{models.FieldPaymentToWhom, NameLimit},
	{models.FieldPaymentThrough, NameLimit},
	{models.FieldEntryBy, NameLimit},
	{models.FieldIPAddress, ShortTextLimit},
	{models.FieldBrowserName, ShortTextLimit},
	{models.FieldBrowserVer, ShortTextLimit},
	{models.FieldOperatingSys, ShortTextLimit},
}

// FieldLimit returns the maximum length of field, if it has one.
func FieldLimit(field string) (int, bool) {
	for _, fl := range fieldLimits {
		if fl.field == field {
			return fl.limit, true
		}
	}
	return 0, false
}

// Messages shared by the validators.
const (
	MsgInvalidAmount   = "Amount must be a valid positive number (max: 99,999,999.99)"
	MsgInvalidMobile   = "Mobile number must be 10 digits"
	MsgRemarksTooLong  = "Remarks must be 20 characters or less"
	MsgPasswordsDiffer = "Passwords do not match"
	MsgRegisterMobile  = "Please enter a valid 10-digit mobile number"

	MsgFoodTooHigh       = "Food expense seems unusually high. Please verify the amount."
	MsgStationeryTooHigh = "Stationery expense seems unusually high. Please verify the amount."
	MsgExpenseFuture     = "Expense date cannot be in the future."
	MsgExpenseBadDate    = "Expense date is invalid."

	MsgSalaryTooLow      = "Salary amount seems unusually low. Please verify the amount."
	MsgSalaryTooHigh     = "Salary amount seems unusually high. Please verify the amount."
	MsgPaymentFuture     = "Payment date cannot be in the future."
	MsgPaymentTooOld     = "Payment date seems too far in the past. Please verify the date."
	MsgPaymentBadDate    = "Payment date is invalid."
	MsgRecipientTooShort = "Payment recipient name should be at least 2 characters long."
)

// humanize replaces the first underscore of a field name with a space:
// "income_cat" becomes "income cat" and "income_cat_remarks" becomes
// "income cat_remarks".
func humanize(field string) string {
	return strings.Replace(field, "_", " ", 1)
}

// RequiredMessage is reported for a missing required field.
func RequiredMessage(field string) string {
	return humanize(field) + " is required"
}

// TooLongMessage is reported for a field longer than its limit.
func TooLongMessage(field string, limit int) string {
	return fmt.Sprintf("%s must be %d characters or less", humanize(field), limit)
}
