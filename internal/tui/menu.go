// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type menuItem struct {
	label string
	// page is empty for the logout item.
	page models.Page
}

// MenuModel is the index screen shown to an authenticated user.
type MenuModel struct {
	ctx     context.Context
	auth    service.AuthService
	appInfo service.AppInfoService

	items      []menuItem
	idx        int
	loggingOut bool
}

func NewMenuModel(ctx context.Context, auth service.AuthService, appInfo service.AppInfoService) *MenuModel {
	return &MenuModel{
		ctx:     ctx,
		auth:    auth,
		appInfo: appInfo,
		items: []menuItem{
			{label: "Add income", page: models.PageIncome},
			{label: "Add expense", page: models.PageExpense},
			{label: "Add salary", page: models.PageSalary},
			{label: "Entries", page: models.PageEntries},
			{label: "Dashboard", page: models.PageDashboard},
			{label: "Logout"},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	m.loggingOut = false
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.loggingOut {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item := m.items[m.idx]
		if item.page != "" {
			return m, navigate(item.page)
		}
		m.loggingOut = true
		m.idx = 0
		return m, m.cmdLogout()
	}

	return m, nil
}

// cmdLogout runs off the event loop: the auth manager navigates to the login
// page through the program, which would deadlock inside Update.
func (m *MenuModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		auth.Logout(ctx)
		return nil
	}
}

func (m *MenuModel) View() string {
	var b strings.Builder

	session := m.auth.Session()
	b.WriteString("Welcome, ")
	b.WriteString(session.User.DisplayName())
	b.WriteString("\n")
	if expiresAt, ok := session.ExpiresAt(); ok {
		b.WriteString(helpStyle.Render(fmt.Sprintf("%s: %s", app.MsgSessionExpires, utils.FormatDateTime(expiresAt.Local()))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	width := 0
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > width {
			width = w
		}
	}

	for i, item := range m.items {
		line := fmt.Sprintf("  %d %-*s", i+1, width, item.label)
		if i == m.idx {
			line = selectedStyle.Render(fmt.Sprintf("> %d %-*s", i+1, width, item.label))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.loggingOut {
		b.WriteString("\nLogging out...\n")
	}

	footer := "enter: select │ ↑/↓: navigate │ v: version"
	if version := m.appInfo.GetAppVersion(m.ctx); version != "" {
		footer += " " + version
	}

	return renderPage("FINANCE TRACKER", strings.TrimRight(b.String(), "\n"), footer)
}
