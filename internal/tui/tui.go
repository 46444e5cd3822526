// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the finance tracker client in the terminal with
// Bubble Tea.
//
// Every screen is a tea.Model registered with [RootModel] under a
// [models.Page]. Screens only collect input and show outcomes; every
// network call goes through the services and runs inside a tea.Cmd.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// TUI owns the Bubble Tea program of the client.
type TUI struct {
	auth      service.AuthService
	entries   service.EntryService
	appInfo   service.AppInfoService
	navigator *ProgramNavigator

	logger *logger.Logger
}

// New constructs the TUI. navigator must be the one the auth service was
// built with; it is attached to the program for the duration of [TUI.Run].
func New(auth service.AuthService, entries service.EntryService, appInfo service.AppInfoService, navigator *ProgramNavigator, logger *logger.Logger) *TUI {
	return &TUI{
		auth:      auth,
		entries:   entries,
		appInfo:   appInfo,
		navigator: navigator,
		logger:    logger,
	}
}

// NewPages builds every screen of the client.
func NewPages(ctx context.Context, auth service.AuthService, entries service.EntryService, appInfo service.AppInfoService, now func() time.Time) map[models.Page]tea.Model {
	return map[models.Page]tea.Model{
		models.PageLogin:     NewLoginModel(ctx, auth),
		models.PageRegister:  NewRegisterModel(ctx, auth),
		models.PageIndex:     NewMenuModel(ctx, auth, appInfo),
		models.PageIncome:    NewIncomeFormModel(ctx, entries, now),
		models.PageExpense:   NewExpenseFormModel(ctx, entries, now),
		models.PageSalary:    NewSalaryFormModel(ctx, entries, now),
		models.PageEntries:   NewEntriesModel(ctx, entries),
		models.PageDashboard: NewDashboardModel(ctx, entries),
	}
}

// Run blocks until the user quits or ctx is cancelled. The login page is
// opened first; an authenticated session is redirected to the menu.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	root := NewRootModel(
		t.auth,
		NewPages(ctx, t.auth, t.entries, t.appInfo, time.Now),
		models.PageLogin,
		t.appInfo.BuildInfo(),
		t.appInfo.UserAgent(),
	)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.navigator.Attach(program)
	defer t.navigator.Attach(nil)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Str("func", "*TUI.Run").Msg("tui stopped by context")
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
