// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/mock"
	"github.com/MKhiriev/go-finance-tracker/internal/validators"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func fillRegister(m *RegisterModel, values ...string) {
	for i, v := range values {
		m.setFocus(i)
		typeText(m, v)
	}
}

func TestRegisterModel_SubmitSuccess(t *testing.T) {
	auth := mock.NewMockAuthService(gomock.NewController(t))
	m := NewRegisterModel(context.Background(), auth)

	fillRegister(m, " Asha ", "Verma", "asha@example.com", "98-765 43210", "secret", "secret")

	want := models.RegisterRequest{
		FirstName:       "Asha",
		LastName:        "Verma",
		Email:           "asha@example.com",
		Mobile:          "9876543210",
		Password:        "secret",
		ConfirmPassword: "secret",
	}
	auth.EXPECT().Register(gomock.Any(), want).
		Return(models.AuthResult{Success: true, Message: app.MsgRegisterSuccess})

	_, cmd := m.Update(keyPress("enter"))
	_, cmd = m.Update(runCmd(t, cmd))

	assert.Equal(t, NavigateTo{
		Page:    models.PageLogin,
		Payload: registeredNotice{message: app.MsgRegisterSuccess},
	}, runCmd(t, cmd))
	assert.False(t, m.submitting)
	assert.Empty(t, m.inputs[registerEmail].Value())
	assert.Equal(t, registerFirstName, m.focus)
}

func TestRegisterModel_SubmitFailureKeepsInput(t *testing.T) {
	auth := mock.NewMockAuthService(gomock.NewController(t))
	m := NewRegisterModel(context.Background(), auth)

	fillRegister(m, "Asha", "Verma", "asha@example.com", "9876543210", "secret", "other")

	auth.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.AuthResult{Message: validators.MsgPasswordsDiffer})

	_, cmd := m.Update(keyPress("enter"))
	m.Update(runCmd(t, cmd))

	assert.Equal(t, validators.MsgPasswordsDiffer, m.errMsg)
	assert.Equal(t, "asha@example.com", m.inputs[registerEmail].Value())
}

func TestRegisterModel_MobileKeepsTenDigits(t *testing.T) {
	m := NewRegisterModel(context.Background(), mock.NewMockAuthService(gomock.NewController(t)))

	m.setFocus(registerMobile)
	typeText(m, "+91 98765")

	assert.Equal(t, "9198765", m.inputs[registerMobile].Value())
}

func TestRegisterModel_EscBackToLogin(t *testing.T) {
	m := NewRegisterModel(context.Background(), mock.NewMockAuthService(gomock.NewController(t)))
	m.errMsg = "stale"

	_, cmd := m.Update(keyPress("esc"))

	assert.Equal(t, NavigateTo{Page: models.PageLogin}, runCmd(t, cmd))
	assert.Empty(t, m.errMsg)
}
