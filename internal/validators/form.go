// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// FormValidator applies the field checks shared by all entry forms:
// required fields, amount range, mobile format and column lengths.
type FormValidator struct {
}

// NewFormValidator constructs a FormValidator and returns it as the
// Validator interface.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate accepts [models.FormData] or map[string]string.
func (v *FormValidator) Validate(ctx context.Context, obj any, required ...string) error {
	form, err := asForm(obj)
	if err != nil {
		return err
	}

	return ValidationErrors(ValidateForm(form, required...)).orNil()
}

func asForm(obj any) (models.FormData, error) {
	switch value := obj.(type) {
	case models.FormData:
		return value, nil
	case *models.FormData:
		if value == nil {
			return nil, ErrUnsupportedType
		}
		return *value, nil
	case map[string]string:
		return models.FormData(value), nil
	default:
		return nil, ErrUnsupportedType
	}
}

// ValidateForm runs the shared field checks in order and returns every
// message produced. An empty result means the form passed.
//
//  1. every required field is present and not blank
//  2. a non-empty amount is a finite number in (0, 99,999,999.99]
//  3. a non-empty mobile field has exactly 10 digits
//  4. no field is longer than its column limit
//  5. remarks are capped at 20 characters on expense and salary forms
func ValidateForm(form models.FormData, required ...string) []string {
	var errs []string

	for _, field := range required {
		if form.Trimmed(field) == "" {
			errs = append(errs, RequiredMessage(field))
		}
	}

	if form.Has(models.FieldAmount) && !isValidAmount(form.Get(models.FieldAmount)) {
		errs = append(errs, MsgInvalidAmount)
	}

	for _, field := range []string{models.FieldSenderMobile, models.FieldMobile} {
		if form.Has(field) && !IsMobile(form.Get(field)) {
			errs = append(errs, MsgInvalidMobile)
			break
		}
	}

	for _, fl := range fieldLimits {
		if form.Has(fl.field) && length(form.Get(fl.field)) > fl.limit {
			errs = append(errs, TooLongMessage(fl.field, fl.limit))
		}
	}

	// income remarks are a TEXT column and stay unbounded
	if form.Has(models.FieldRemarks) &&
		(form.Has(models.FieldExpenseCategory) || form.Has(models.FieldPaymentType)) &&
		length(form.Get(models.FieldRemarks)) > ExpenseRemarksLimit {
		errs = append(errs, MsgRemarksTooLong)
	}

	return errs
}

func isValidAmount(raw string) bool {
	f, err := models.ParseAmountFloat(raw)
	if err != nil {
		return false
	}
	// the entry is sent in paise, so a value that rounds to zero is not positive
	return f > 0 && f <= models.MaxAmount && models.NewAmount(f).Paise > 0
}

// IsMobile reports whether s is exactly ten ASCII digits.
func IsMobile(s string) bool {
	if len(s) != MobileDigits {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}
