// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// Field name constants of the login and registration forms.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPassword  = "password"
)

var fieldLabels = map[string]string{
	FieldFirstName:     "First name",
	FieldLastName:      "Last name",
	FieldEmail:         "Email",
	FieldPassword:      "Password",
	models.FieldMobile: "Mobile number",
}

// AuthValidator checks login and registration input before it is sent.
// Like the forms it backs, it stops at the first failing check, so the
// returned [ValidationErrors] holds a single message.
type AuthValidator struct {
}

// NewAuthValidator constructs an AuthValidator and returns it as the
// Validator interface.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate accepts [models.LoginRequest] and [models.RegisterRequest],
// by value or pointer. With no field names every field of the request is
// required.
func (v *AuthValidator) Validate(ctx context.Context, obj any, required ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, required...)
	case *models.LoginRequest:
		return v.validateLogin(*value, required...)

	case models.RegisterRequest:
		return v.validateRegister(value, required...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, required...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateLogin(req models.LoginRequest, required ...string) error {
	if len(required) == 0 {
		required = []string{FieldEmail, FieldPassword}
	}

	values := map[string]string{
		FieldEmail:    req.Email,
		FieldPassword: req.Password,
	}

	return firstMissing(values, required).orNil()
}

func (v *AuthValidator) validateRegister(req models.RegisterRequest, required ...string) error {
	if len(required) == 0 {
		required = []string{FieldFirstName, FieldLastName, FieldEmail, models.FieldMobile, FieldPassword}
	}

	values := map[string]string{
		FieldFirstName:     req.FirstName,
		FieldLastName:      req.LastName,
		FieldEmail:         req.Email,
		models.FieldMobile: req.Mobile,
		FieldPassword:      req.Password,
	}

	if errs := firstMissing(values, required); len(errs) > 0 {
		return errs
	}

	if req.Password != req.ConfirmPassword {
		return ValidationErrors{MsgPasswordsDiffer}
	}

	if !IsMobile(req.Mobile) {
		return ValidationErrors{MsgRegisterMobile}
	}

	return nil
}

func firstMissing(values map[string]string, required []string) ValidationErrors {
	for _, field := range required {
		if strings.TrimSpace(values[field]) != "" {
			continue
		}

		label, ok := fieldLabels[field]
		if !ok {
			return ValidationErrors{RequiredMessage(field)}
		}
		return ValidationErrors{label + " is required"}
	}

	return nil
}
