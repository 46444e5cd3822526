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
	registerFirstName = iota
	registerLastName
	registerEmail
	registerMobile
	registerPassword
	registerConfirm
)

var registerLabels = []string{
	"First name",
	"Last name",
	"Email",
	"Mobile",
	"Password",
	"Confirm",
}

// RegisterModel is the Bubble Tea model for the registration screen. On
// success the form is reset and the login page opens with the outcome
// message. Registration never logs the user in.
type RegisterModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with six inputs. The password
// fields use masked echo; the mobile field keeps at most ten digits.
func NewRegisterModel(ctx context.Context, auth service.AuthService) *RegisterModel {
	fields := make([]textinput.Model, len(registerLabels))
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].Width = 40
		fields[i].CharLimit = 100
	}

	fields[registerFirstName].Placeholder = "first name"
	fields[registerLastName].Placeholder = "last name"
	fields[registerEmail].Placeholder = "email"
	fields[registerMobile].Placeholder = "10-digit mobile"

	for _, i := range []int{registerPassword, registerConfirm} {
		fields[i].EchoMode = textinput.EchoPassword
		fields[i].EchoCharacter = '*'
	}
	fields[registerPassword].Placeholder = "password"
	fields[registerConfirm].Placeholder = "repeat password"

	fields[registerFirstName].Focus()

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. esc returns to the login page, tab and
// shift+tab move focus, enter dispatches the async registration command.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.submitting = false
		if !msg.result.Success {
			m.status = ""
			m.errMsg = msg.result.Message
			return m, nil
		}
		m.reset()
		notice := registeredNotice{message: msg.result.Message}
		return m, func() tea.Msg { return NavigateTo{Page: models.PageLogin, Payload: notice} }
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.status = ""
			return m, navigate(models.PageLogin)
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.status = app.MsgSubmitting
			m.submitting = true
			return m, m.cmdRegister(m.request())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.focus == registerMobile {
		m.inputs[registerMobile].SetValue(models.SanitizeMobileInput(m.inputs[registerMobile].Value()))
	}
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	for i, label := range registerLabels {
		b.WriteString(padLabel(label, 11))
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	renderOutcome(&b, m.status, m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) request() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName:       strings.TrimSpace(m.inputs[registerFirstName].Value()),
		LastName:        strings.TrimSpace(m.inputs[registerLastName].Value()),
		Email:           strings.TrimSpace(m.inputs[registerEmail].Value()),
		Mobile:          m.inputs[registerMobile].Value(),
		Password:        m.inputs[registerPassword].Value(),
		ConfirmPassword: m.inputs[registerConfirm].Value(),
	}
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return authDoneMsg{result: auth.Register(ctx, req)}
	}
}

func (m *RegisterModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.errMsg = ""
	m.status = ""
	m.setFocus(registerFirstName)
}

func padLabel(label string, width int) string {
	if n := len([]rune(label)); n < width {
		return label + strings.Repeat(" ", width-n)
	}
	return label
}
