// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// NavigateTo switches the root model to Page. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    models.Page
	Payload tea.Msg
}

// registeredNotice is delivered to the login page after a registration.
type registeredNotice struct {
	message string
}

type authDoneMsg struct {
	result models.AuthResult
}

type submitDoneMsg struct {
	result models.SubmitResult
}

type entriesLoadedMsg struct {
	kind models.EntryKind
	rows []entryRow
	err  error
}

type entryDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type dashboardLoadedMsg struct {
	summary models.DashboardSummary
	details []models.AccountDetail
	err     error
}

type clearStatusMsg struct{}
