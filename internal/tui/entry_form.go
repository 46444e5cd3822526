// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/internal/validators"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldAmount
	fieldMobile
	fieldDate
	fieldSelect
)

type formField struct {
	name        string
	label       string
	kind        fieldKind
	options     models.Lookup
	suggestions []string
	placeholder string
}

// formConfig describes one entry form. placeholders recomputes the hints
// that depend on other fields.
type formConfig struct {
	title        string
	fields       []formField
	submit       func(svc service.EntryService, ctx context.Context, form models.FormData) models.SubmitResult
	placeholders func(form models.FormData) map[string]string
	projection   bool
}

// EntryFormModel is one income, expense or salary form. A submission in
// flight blocks further submissions until its outcome arrives; a successful
// one resets the form.
type EntryFormModel struct {
	ctx     context.Context
	entries service.EntryService
	cfg     formConfig
	now     func() time.Time

	inputs []textinput.Model
	// choice holds the position in [models.Lookup.Codes] of select fields,
	// -1 when nothing is chosen.
	choice map[int]int
	focus  int

	projection *models.SalaryProjection
	submitting bool
	status     string
	errMsg     string
}

func newEntryFormModel(ctx context.Context, entries service.EntryService, cfg formConfig, now func() time.Time) *EntryFormModel {
	if now == nil {
		now = time.Now
	}

	m := &EntryFormModel{
		ctx:     ctx,
		entries: entries,
		cfg:     cfg,
		now:     now,
		inputs:  make([]textinput.Model, len(cfg.fields)),
		choice:  make(map[int]int),
	}

	for i, f := range cfg.fields {
		in := textinput.New()
		in.Width = 40
		in.Placeholder = f.placeholder
		in.KeyMap.AcceptSuggestion = acceptSuggestion
		if limit, ok := validators.FieldLimit(f.name); ok {
			in.CharLimit = limit
		}
		if f.kind == fieldDate {
			in.Placeholder = "YYYY-MM-DD"
			in.CharLimit = 10
		}
		if len(f.suggestions) > 0 {
			in.ShowSuggestions = true
			in.SetSuggestions(f.suggestions)
		}
		m.inputs[i] = in
	}

	m.reset()
	return m
}

// NewIncomeFormModel builds the income form.
func NewIncomeFormModel(ctx context.Context, entries service.EntryService, now func() time.Time) *EntryFormModel {
	return newEntryFormModel(ctx, entries, formConfig{
		title: "ADD INCOME",
		fields: []formField{
			{name: models.FieldIncomeCategory, label: "Category", kind: fieldSelect, options: models.IncomeCategories},
			{name: models.FieldIncomeCategoryRemarks, label: "Category remarks"},
			{name: models.FieldAmount, label: "Amount", kind: fieldAmount, placeholder: "0.00"},
			{name: models.FieldReceivedOn, label: "Received on", kind: fieldDate},
			{name: models.FieldReceivedBy, label: "Received by", placeholder: "Who received it"},
			{name: models.FieldSenderName, label: "Sender name", placeholder: "Sender name"},
			{name: models.FieldSenderMobile, label: "Sender mobile", kind: fieldMobile, placeholder: "10-digit mobile"},
			{name: models.FieldRemarks, label: "Remarks", placeholder: "Remarks"},
			{name: models.FieldStatus, label: "Status", kind: fieldSelect, options: models.EntryStatuses},
		},
		submit:       service.EntryService.SubmitIncome,
		placeholders: categoryRemarksPlaceholder(models.FieldIncomeCategory, models.FieldIncomeCategoryRemarks, models.IncomeCategories, "Enter category remarks"),
	}, now)
}

// NewExpenseFormModel builds the expense form.
func NewExpenseFormModel(ctx context.Context, entries service.EntryService, now func() time.Time) *EntryFormModel {
	return newEntryFormModel(ctx, entries, formConfig{
		title: "ADD EXPENSE",
		fields: []formField{
			{name: models.FieldExpenseCategory, label: "Category", kind: fieldSelect, options: models.ExpenseCategories},
			{name: models.FieldExpenseCategoryRemarks, label: "Category remarks"},
			{name: models.FieldAmount, label: "Amount", kind: fieldAmount, placeholder: "0.00"},
			{name: models.FieldSpentOn, label: "Spent on", kind: fieldDate},
			{name: models.FieldSpentBy, label: "Spent by", placeholder: "Who paid"},
			{name: models.FieldSpentThrough, label: "Spent through", suggestions: models.TransactionModes, placeholder: "Cash, UPI, ..."},
			{name: models.FieldRemarks, label: "Remarks", placeholder: "Up to 20 characters"},
			{name: models.FieldStatus, label: "Status", kind: fieldSelect, options: models.EntryStatuses},
		},
		submit:       service.EntryService.SubmitExpense,
		placeholders: categoryRemarksPlaceholder(models.FieldExpenseCategory, models.FieldExpenseCategoryRemarks, models.ExpenseCategories, "Enter category remarks"),
	}, now)
}

// NewSalaryFormModel builds the salary form. For the Salary payment type it
// shows the monthly and yearly projection of the typed amount.
func NewSalaryFormModel(ctx context.Context, entries service.EntryService, now func() time.Time) *EntryFormModel {
	remarks := categoryRemarksPlaceholder(models.FieldPaymentType, models.FieldPaymentTypeRemarks, models.PaymentTypes, "Enter payment type remarks")

	return newEntryFormModel(ctx, entries, formConfig{
		title: "ADD SALARY",
		fields: []formField{
			{name: models.FieldPaymentType, label: "Payment type", kind: fieldSelect, options: models.PaymentTypes},
			{name: models.FieldPaymentTypeRemarks, label: "Type remarks"},
			{name: models.FieldAmount, label: "Amount", kind: fieldAmount, placeholder: "0.00"},
			{name: models.FieldSpentDate, label: "Paid on", kind: fieldDate},
			{name: models.FieldPaymentToWhom, label: "Paid to"},
			{name: models.FieldPaymentThrough, label: "Paid through", suggestions: models.PaymentModes, placeholder: "Bank Transfer, UPI, ..."},
			{name: models.FieldRemarks, label: "Remarks", placeholder: "Up to 20 characters"},
			{name: models.FieldStatus, label: "Status", kind: fieldSelect, options: models.EntryStatuses},
		},
		submit: service.EntryService.SubmitSalary,
		placeholders: func(form models.FormData) map[string]string {
			out := remarks(form)
			out[models.FieldPaymentToWhom] = models.PayeePlaceholder(form.Get(models.FieldPaymentType))
			return out
		},
		projection: true,
	}, now)
}

func categoryRemarksPlaceholder(codeField, remarksField string, lookup models.Lookup, fallback string) func(models.FormData) map[string]string {
	return func(form models.FormData) map[string]string {
		hint := fallback
		if code := form.Get(codeField); code != "" {
			hint = "Enter remarks for " + lookup.NameOf(code)
		}
		return map[string]string{remarksField: hint}
	}
}

func (m *EntryFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		m.submitting = false
		if msg.result.Success {
			m.reset()
			m.status = msg.result.Message
			return m, cmdClearStatus()
		}
		m.status = ""
		if len(msg.result.Errors) > 0 {
			m.errMsg = strings.Join(msg.result.Errors, ", ")
		} else {
			m.errMsg = msg.result.Message
		}
		return m, nil
	case clearStatusMsg:
		if !m.submitting {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(models.PageIndex)
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
			return m, m.cmdSubmit(m.formData())
		}

		if m.cfg.fields[m.focus].kind == fieldSelect {
			switch {
			case key.Matches(msg, keys.right):
				m.cycleChoice(m.focus, 1)
			case key.Matches(msg, keys.left):
				m.cycleChoice(m.focus, -1)
			}
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.sanitize(m.focus)
	m.refresh()
	return m, cmd
}

func (m *EntryFormModel) View() string {
	var b strings.Builder

	for i, f := range m.cfg.fields {
		marker := "  "
		if i == m.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(padLabel(f.label, 17))
		b.WriteString("│ ")
		if f.kind == fieldSelect {
			b.WriteString(m.choiceView(i))
		} else {
			b.WriteString("[")
			b.WriteString(m.inputs[i].View())
			b.WriteString("]")
		}
		b.WriteString("\n")
	}

	if m.projection != nil {
		b.WriteString("\nMonthly: ")
		b.WriteString(m.projection.MonthlyFormatted)
		b.WriteString("   Yearly: ")
		b.WriteString(m.projection.YearlyFormatted)
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	renderOutcome(&b, m.status, m.errMsg)

	help := "esc: back │ tab: next field │ ←/→: choose │ enter: save"
	for _, f := range m.cfg.fields {
		if len(f.suggestions) > 0 {
			help += " │ ctrl+y: accept suggestion"
			break
		}
	}

	return renderPage(m.cfg.title, strings.TrimRight(b.String(), "\n"), help)
}

func (m *EntryFormModel) cmdSubmit(form models.FormData) tea.Cmd {
	ctx := m.ctx
	entries := m.entries
	submit := m.cfg.submit

	return func() tea.Msg {
		return submitDoneMsg{result: submit(entries, ctx, form)}
	}
}

// formData collects the typed values keyed by backend field name.
func (m *EntryFormModel) formData() models.FormData {
	form := make(models.FormData, len(m.cfg.fields))
	for i, f := range m.cfg.fields {
		if f.kind == fieldSelect {
			form[f.name] = m.choiceCode(i)
			continue
		}
		form[f.name] = m.inputs[i].Value()
	}
	return form
}

// reset clears every field, sets dates to today and the status to its
// default.
func (m *EntryFormModel) reset() {
	today := utils.FormatFormDate(m.now())
	for i, f := range m.cfg.fields {
		m.inputs[i].Reset()
		switch f.kind {
		case fieldDate:
			m.inputs[i].SetValue(today)
		case fieldSelect:
			m.choice[i] = -1
			if f.name == models.FieldStatus {
				m.setChoiceCode(i, models.DefaultStatus)
			}
		}
	}
	m.errMsg = ""
	m.setFocus(0)
	m.refresh()
}

// setValue writes v into the field called name.
func (m *EntryFormModel) setValue(name, v string) {
	for i, f := range m.cfg.fields {
		if f.name != name {
			continue
		}
		if f.kind == fieldSelect {
			m.choice[i] = -1
			if code, err := strconv.Atoi(v); err == nil {
				m.setChoiceCode(i, code)
			}
		} else {
			m.inputs[i].SetValue(v)
			m.sanitize(i)
		}
	}
	m.refresh()
}

func (m *EntryFormModel) sanitize(i int) {
	switch m.cfg.fields[i].kind {
	case fieldAmount:
		m.inputs[i].SetValue(models.SanitizeAmountInput(m.inputs[i].Value()))
	case fieldMobile:
		m.inputs[i].SetValue(models.SanitizeMobileInput(m.inputs[i].Value()))
	}
}

// refresh recomputes the dependent placeholders and the salary projection.
func (m *EntryFormModel) refresh() {
	form := m.formData()

	if m.cfg.placeholders != nil {
		hints := m.cfg.placeholders(form)
		for i, f := range m.cfg.fields {
			if hint, ok := hints[f.name]; ok {
				m.inputs[i].Placeholder = hint
			}
		}
	}

	m.projection = nil
	if m.cfg.projection {
		if amount, err := models.ParseAmountFloat(form.Get(models.FieldAmount)); err == nil {
			m.projection = m.entries.ProjectSalary(amount, form.Get(models.FieldPaymentType))
		}
	}
}

func (m *EntryFormModel) setFocus(i int) {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	if m.cfg.fields[i].kind != fieldSelect {
		m.inputs[i].Focus()
	}
}

func (m *EntryFormModel) cycleChoice(i, step int) {
	codes := m.cfg.fields[i].options.Codes()
	// -1 (nothing chosen) takes part in the cycle
	n := len(codes) + 1
	pos := m.choice[i] + 1
	pos = (pos + step + n) % n
	m.choice[i] = pos - 1
}

func (m *EntryFormModel) setChoiceCode(i, code int) {
	for pos, c := range m.cfg.fields[i].options.Codes() {
		if c == code {
			m.choice[i] = pos
			return
		}
	}
}

func (m *EntryFormModel) choiceCode(i int) string {
	pos := m.choice[i]
	codes := m.cfg.fields[i].options.Codes()
	if pos < 0 || pos >= len(codes) {
		return ""
	}
	return strconv.Itoa(codes[pos])
}

func (m *EntryFormModel) choiceView(i int) string {
	code := m.choiceCode(i)
	if code == "" {
		return "‹ select ›"
	}
	return "‹ " + m.cfg.fields[i].options.NameOf(code) + " ›"
}
