// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/mock"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func newTestLogin(t *testing.T) (*LoginModel, *mock.MockAuthService) {
	t.Helper()
	auth := mock.NewMockAuthService(gomock.NewController(t))
	return NewLoginModel(context.Background(), auth), auth
}

func TestLoginModel_SubmitSuccess(t *testing.T) {
	m, auth := newTestLogin(t)

	typeText(m, "asha@example.com")
	m.Update(keyPress("tab"))
	typeText(m, "secret")
	m.Update(keyPress("tab"))
	m.Update(keyPress("space"))

	auth.EXPECT().Login(gomock.Any(), "asha@example.com", "secret", true).
		Return(models.AuthResult{Success: true, Message: app.MsgLoginSuccess})

	_, cmd := m.Update(keyPress("enter"))
	assert.True(t, m.submitting)
	assert.Equal(t, app.MsgSubmitting, m.status)

	done := runCmd(t, cmd)
	_, cmd = m.Update(done)

	assert.False(t, m.submitting)
	assert.Equal(t, app.MsgLoginSuccess, m.status)
	assert.Equal(t, NavigateTo{Page: models.PageIndex}, runCmd(t, cmd))
	assert.Empty(t, m.inputs[loginEmail].Value(), "form is cleared after login")
	assert.Empty(t, m.inputs[loginPassword].Value())
	assert.False(t, m.rememberMe)
}

func TestLoginModel_SubmitFailure(t *testing.T) {
	m, auth := newTestLogin(t)
	typeText(m, "asha@example.com")

	auth.EXPECT().Login(gomock.Any(), "asha@example.com", "", false).
		Return(models.AuthResult{Message: "Password is required"})

	_, cmd := m.Update(keyPress("enter"))
	_, next := m.Update(runCmd(t, cmd))

	assert.Nil(t, next)
	assert.False(t, m.submitting)
	assert.Equal(t, "Password is required", m.errMsg)
	assert.Empty(t, m.status)
	assert.Equal(t, "asha@example.com", m.inputs[loginEmail].Value(), "input kept on failure")
	assert.Contains(t, m.View(), "Password is required")
}

func TestLoginModel_EnterIgnoredWhileSubmitting(t *testing.T) {
	m, auth := newTestLogin(t)

	auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AuthResult{Message: app.MsgLoginError}).Times(1)

	_, first := m.Update(keyPress("enter"))
	_, second := m.Update(keyPress("enter"))

	assert.Nil(t, second)
	m.Update(runCmd(t, first))
	assert.Equal(t, app.MsgLoginError, m.errMsg)
}

func TestLoginModel_RememberMeToggleNeedsFocus(t *testing.T) {
	m, _ := newTestLogin(t)

	m.Update(keyPress("space"))
	assert.False(t, m.rememberMe, "space on the email field is text")

	m.Update(keyPress("shift+tab"))
	require.Equal(t, loginRememberMe, m.focus)
	m.Update(keyPress("space"))
	assert.True(t, m.rememberMe)
	assert.Contains(t, m.View(), "[x]")
}

func TestLoginModel_RegisteredNotice(t *testing.T) {
	m, _ := newTestLogin(t)
	m.errMsg = "old"

	m.Update(registeredNotice{message: app.MsgRegisterSuccess})

	assert.Empty(t, m.errMsg)
	assert.Equal(t, app.MsgRegisterSuccess, m.status)
}

func TestLoginModel_OpenRegister(t *testing.T) {
	m, _ := newTestLogin(t)

	_, cmd := m.Update(keyPress("ctrl+r"))

	assert.Equal(t, NavigateTo{Page: models.PageRegister}, runCmd(t, cmd))
}
