// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// RecentActivityLimit is the number of account detail rows on the dashboard.
const RecentActivityLimit = 10

// DashboardModel shows the totals and the most recent account activity.
type DashboardModel struct {
	ctx     context.Context
	entries service.EntryService

	spinner spinner.Model
	loading bool
	summary models.DashboardSummary
	details []models.AccountDetail
	errMsg  string
}

func NewDashboardModel(ctx context.Context, entries service.EntryService) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DashboardModel{
		ctx:     ctx,
		entries: entries,
		spinner: s,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeLoadError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.summary = msg.summary
		m.details = msg.details
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(models.PageIndex)
		case key.Matches(msg, keys.reload):
			if m.loading {
				return m, nil
			}
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(app.MsgLoading)
		b.WriteString("\n")
		return renderPage("DASHBOARD", b.String(), "esc: back")
	}

	if m.errMsg == "" {
		s := m.summary
		b.WriteString(fmt.Sprintf("%-15s %16s  (%d)\n", "Total income", utils.FormatAmount(s.TotalIncome), s.IncomeCount))
		b.WriteString(fmt.Sprintf("%-15s %16s  (%d)\n", "Total expenses", utils.FormatAmount(s.TotalExpenses), s.ExpenseCount))
		b.WriteString(fmt.Sprintf("%-15s %16s  (%d)\n", "Total salary", utils.FormatAmount(s.TotalSalary), s.SalaryCount))
		b.WriteString(fmt.Sprintf("%-15s %16s\n", "Balance", utils.FormatAmount(s.Balance)))

		b.WriteString("\nRecent activity\n")
		if len(m.details) == 0 {
			b.WriteString(app.MsgNoEntries)
			b.WriteString("\n")
		}
		for _, d := range m.details {
			b.WriteString(fmt.Sprintf("%-24s │ %-7s │ %16s │ %-15s │ %s\n",
				fitText(utils.FormatTimestamp(d.CreatedAt), 24),
				d.EntryType,
				utils.FormatAmount(d.Amount),
				fitText(d.EntryBy, 15),
				d.IPAddress,
			))
		}
	}

	renderOutcome(&b, "", m.errMsg)

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), "esc: back │ r: reload")
}

// cmdLoad fetches the summary and the recent activity concurrently. The
// first failure cancels the other request.
func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	entries := m.entries

	return func() tea.Msg {
		var (
			summary models.DashboardSummary
			details []models.AccountDetail
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			summary, err = entries.Dashboard(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			details, err = entries.AccountsDetails(gctx, models.Filters{"limit": fmt.Sprint(RecentActivityLimit)})
			return err
		})

		if err := g.Wait(); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*DashboardModel.cmdLoad").Msg("error loading dashboard")
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{summary: summary, details: details}
	}
}
