// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// entryRow is one line of the entries table, whatever the resource.
type entryRow struct {
	id     int64
	date   string
	label  string
	party  string
	amount models.Amount
	status int
}

var entryKinds = []models.EntryKind{models.KindIncome, models.KindExpense, models.KindSalary}

// EntriesModel lists the entries of one resource at a time.
type EntriesModel struct {
	ctx     context.Context
	entries service.EntryService
	copy    func(string) error

	kind          int
	rows          []entryRow
	idx           int
	loading       bool
	pendingDelete bool
	status        string
	errMsg        string
}

func NewEntriesModel(ctx context.Context, entries service.EntryService) *EntriesModel {
	return &EntriesModel{
		ctx:     ctx,
		entries: entries,
		copy:    clipboard.WriteAll,
	}
}

func (m *EntriesModel) Init() tea.Cmd {
	m.pendingDelete = false
	m.status = ""
	return m.cmdLoad()
}

func (m *EntriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		if msg.kind != entryKinds[m.kind] {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.rows = nil
			m.errMsg = humanizeLoadError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.rows = msg.rows
		if m.idx >= len(m.rows) {
			m.idx = max(len(m.rows)-1, 0)
		}
		return m, nil
	case entryDeletedMsg:
		if msg.err != nil {
			m.errMsg = app.MsgDeleteFailed
			return m, nil
		}
		m.status = app.MsgDeleted
		return m, tea.Batch(m.cmdLoad(), cmdClearStatus())
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = app.MsgCopyFailed
			return m, nil
		}
		m.status = app.MsgCopied
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.pendingDelete {
			return m.updateConfirm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *EntriesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(models.PageIndex)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.tab):
		m.kind = (m.kind + 1) % len(entryKinds)
		m.idx = 0
		return m, m.cmdLoad()
	case key.Matches(msg, keys.backtab):
		m.kind = (m.kind - 1 + len(entryKinds)) % len(entryKinds)
		m.idx = 0
		return m, m.cmdLoad()
	case key.Matches(msg, keys.reload):
		return m, m.cmdLoad()
	case key.Matches(msg, keys.copy):
		if row, ok := m.current(); ok {
			return m, m.cmdCopy(row.amount.String())
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.pendingDelete = true
		}
	}
	return m, nil
}

func (m *EntriesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.pendingDelete = false
		row, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(entryKinds[m.kind], row.id)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.pendingDelete = false
	}
	return m, nil
}

func (m *EntriesModel) View() string {
	var b strings.Builder

	for i, kind := range entryKinds {
		label := strings.ToUpper(string(kind))
		if i == m.kind {
			label = selectedStyle.Render("[" + label + "]")
		} else {
			label = " " + label + " "
		}
		b.WriteString(label)
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(app.MsgLoading)
		b.WriteString("\n")
	case len(m.rows) == 0 && m.errMsg == "":
		b.WriteString(app.MsgNoEntries)
		b.WriteString("\n")
	case len(m.rows) > 0:
		b.WriteString(fmt.Sprintf("  %-10s │ %-18s │ %-20s │ %16s │ %s\n", "Date", "Category", "Party", "Amount", "Status"))
		b.WriteString("  " + strings.Repeat("─", 86) + "\n")
		for i, row := range m.rows {
			line := fmt.Sprintf("%-10s │ %-18s │ %-20s │ %16s │ %s",
				fitText(utils.FormatEntryDate(row.date), 10),
				fitText(row.label, 18),
				fitText(row.party, 20),
				utils.FormatAmount(row.amount),
				models.EntryStatuses.Name(row.status),
			)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.pendingDelete {
		if row, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(renderConfirmDelete(row.label + " " + utils.FormatAmount(row.amount)))
			b.WriteString("\n")
		}
	}

	renderOutcome(&b, m.status, m.errMsg)

	return renderPage("ENTRIES", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: switch list │ r: reload │ c: copy amount │ d: delete")
}

func (m *EntriesModel) current() (entryRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return entryRow{}, false
	}
	return m.rows[m.idx], true
}

func (m *EntriesModel) cmdLoad() tea.Cmd {
	m.loading = true
	ctx := m.ctx
	entries := m.entries
	kind := entryKinds[m.kind]

	return func() tea.Msg {
		rows, err := loadRows(ctx, entries, kind)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "*EntriesModel.cmdLoad").
				Str("kind", string(kind)).
				Msg("error loading entries")
		}
		return entriesLoadedMsg{kind: kind, rows: rows, err: err}
	}
}

func (m *EntriesModel) cmdDelete(kind models.EntryKind, id int64) tea.Cmd {
	ctx := m.ctx
	entries := m.entries

	return func() tea.Msg {
		var err error
		switch kind {
		case models.KindIncome:
			err = entries.DeleteIncome(ctx, id)
		case models.KindExpense:
			err = entries.DeleteExpense(ctx, id)
		case models.KindSalary:
			err = entries.DeleteSalary(ctx, id)
		}
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "*EntriesModel.cmdDelete").
				Str("kind", string(kind)).
				Int64("id", id).
				Msg("error deleting entry")
		}
		return entryDeletedMsg{err: err}
	}
}

func (m *EntriesModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func loadRows(ctx context.Context, entries service.EntryService, kind models.EntryKind) ([]entryRow, error) {
	switch kind {
	case models.KindIncome:
		list, err := entries.ListIncome(ctx, nil)
		if err != nil {
			return nil, err
		}
		rows := make([]entryRow, 0, len(list))
		for _, e := range list {
			rows = append(rows, entryRow{
				id:     e.ID,
				date:   firstNonEmpty(e.ReceivedOn, e.CreatedAt),
				label:  e.CategoryName(),
				party:  e.SenderName,
				amount: e.Amount,
				status: e.Status,
			})
		}
		return rows, nil
	case models.KindExpense:
		list, err := entries.ListExpenses(ctx, nil)
		if err != nil {
			return nil, err
		}
		rows := make([]entryRow, 0, len(list))
		for _, e := range list {
			rows = append(rows, entryRow{
				id:     e.ID,
				date:   firstNonEmpty(e.SpentOn, e.CreatedAt),
				label:  e.CategoryName(),
				party:  e.SpentThrough,
				amount: e.Amount,
				status: e.Status,
			})
		}
		return rows, nil
	default:
		list, err := entries.ListSalary(ctx, nil)
		if err != nil {
			return nil, err
		}
		rows := make([]entryRow, 0, len(list))
		for _, e := range list {
			rows = append(rows, entryRow{
				id:     e.ID,
				date:   firstNonEmpty(e.SpentDate, e.CreatedAt),
				label:  e.PaymentTypeName(),
				party:  e.PaymentToWhom,
				amount: e.Amount,
				status: e.Status,
			})
		}
		return rows, nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
