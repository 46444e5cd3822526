// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

const (
	loginEmail = iota
	loginPassword
	loginRememberMe
	loginFocusCount
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and a "remember me" toggle, and dispatches an
// async login command on submission. A successful login navigates to the
// index page.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	rememberMe bool
	focus      int
	submitting bool
	status     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. The email field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 100
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{emailInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [authDoneMsg]       clears submitting state; success navigates to the index page.
//   - [registeredNotice]  shows the registration outcome.
//   - tab, shift+tab      move focus.
//   - space               toggles "remember me" when it has focus.
//   - enter               dispatches the async login command.
//   - ctrl+r              opens the registration page.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if !msg.result.Success {
			m.status = ""
			m.errMsg = msg.result.Message
			return m, nil
		}
		m.reset()
		m.status = msg.result.Message
		return m, navigate(models.PageIndex)
	case registeredNotice:
		m.errMsg = ""
		m.status = msg.message
		return m, nil
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+r":
			m.errMsg = ""
			m.status = ""
			return m, navigate(models.PageRegister)
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % loginFocusCount)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + loginFocusCount) % loginFocusCount)
			return m, nil
		case key.Matches(msg, keys.toggle) && m.focus == loginRememberMe:
			m.rememberMe = !m.rememberMe
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.status = app.MsgSubmitting
			m.submitting = true
			return m, m.cmdLogin(m.inputs[loginEmail].Value(), m.inputs[loginPassword].Value(), m.rememberMe)
		}
	}

	if m.focus == loginRememberMe {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field        │ Value\n")
	b.WriteString("─────────────┼────────────────────────────────────────────\n")
	b.WriteString("Email        │ [")
	b.WriteString(m.inputs[loginEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password     │ [")
	b.WriteString(m.inputs[loginPassword].View())
	b.WriteString("]\n")
	b.WriteString("Remember me  │ ")
	b.WriteString(checkbox(m.rememberMe, m.focus == loginRememberMe))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Login]\n")
	}

	renderOutcome(&b, m.status, m.errMsg)

	return renderPage("LOGIN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ ctrl+r: register")
}

func (m *LoginModel) cmdLogin(email, password string, rememberMe bool) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return authDoneMsg{result: auth.Login(ctx, email, password, rememberMe)}
	}
}

func (m *LoginModel) setFocus(i int) {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	if i < len(m.inputs) {
		m.inputs[i].Focus()
	}
}

func (m *LoginModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.rememberMe = false
	m.errMsg = ""
	m.setFocus(loginEmail)
}

func checkbox(checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	if focused {
		return selectedStyle.Render("> " + box)
	}
	return "  " + box
}
