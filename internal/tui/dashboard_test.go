// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func TestDashboardModel_LoadsConcurrently(t *testing.T) {
	entries := newTestEntries(t)
	m := NewDashboardModel(context.Background(), entries)

	summary := models.DashboardSummary{
		TotalIncome:   models.NewAmount(150000),
		TotalExpenses: models.NewAmount(20000.5),
		TotalSalary:   models.NewAmount(50000),
		Balance:       models.NewAmount(79999.5),
		IncomeCount:   3,
		ExpenseCount:  12,
		SalaryCount:   1,
	}
	details := []models.AccountDetail{{
		ID:        1,
		EntryType: models.KindExpense,
		EntryID:   12,
		Amount:    models.NewAmount(450),
		CreatedAt: "not-a-timestamp",
		AuditInfo: models.AuditInfo{EntryBy: "Web User", IPAddress: "203.0.113.7"},
	}}

	entries.EXPECT().Dashboard(gomock.Any()).Return(summary, nil)
	entries.EXPECT().AccountsDetails(gomock.Any(), models.Filters{"limit": "10"}).Return(details, nil)

	cmd := m.Init()
	require.True(t, m.loading)
	assert.Contains(t, m.View(), app.MsgLoading)

	var loaded tea.Msg
	for _, msg := range collectSkippingTicks(t, cmd) {
		if _, ok := msg.(dashboardLoadedMsg); ok {
			loaded = msg
		}
	}
	require.NotNil(t, loaded)
	m.Update(loaded)

	assert.False(t, m.loading)
	view := m.View()
	assert.Contains(t, view, "₹1,50,000.00")
	assert.Contains(t, view, "₹20,000.50")
	assert.Contains(t, view, "₹79,999.50")
	assert.Contains(t, view, "(12)")
	assert.Contains(t, view, "not-a-timestamp")
	assert.Contains(t, view, "203.0.113.7")
}

func TestDashboardModel_FailureShowsMessage(t *testing.T) {
	entries := newTestEntries(t)
	m := NewDashboardModel(context.Background(), entries)

	entries.EXPECT().Dashboard(gomock.Any()).Return(models.DashboardSummary{}, errors.New("boom"))
	entries.EXPECT().AccountsDetails(gomock.Any(), gomock.Any()).Return(nil, nil).MaxTimes(1)

	msg := runCmd(t, m.cmdLoad())
	m.Update(msg)

	assert.Equal(t, app.MsgLoadFailed, m.errMsg)
	assert.Contains(t, m.View(), app.MsgLoadFailed)
	assert.NotContains(t, m.View(), "Recent activity")
}

func TestDashboardModel_ReloadIgnoredWhileLoading(t *testing.T) {
	m := NewDashboardModel(context.Background(), newTestEntries(t))
	m.loading = true

	_, cmd := m.Update(keyPress("r"))

	assert.Nil(t, cmd)
}

func TestDashboardModel_EscBackToMenu(t *testing.T) {
	m := NewDashboardModel(context.Background(), newTestEntries(t))

	_, cmd := m.Update(keyPress("esc"))

	assert.Equal(t, NavigateTo{Page: models.PageIndex}, runCmd(t, cmd))
}

// collectSkippingTicks runs the batched commands of Init except the spinner
// tick.
func collectSkippingTicks(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	batch, ok := runCmd(t, cmd).(tea.BatchMsg)
	require.True(t, ok)

	var out []tea.Msg
	for _, c := range batch {
		msg := c()
		if _, tick := msg.(spinner.TickMsg); tick {
			continue
		}
		out = append(out, msg)
	}
	return out
}
