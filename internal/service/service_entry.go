// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/probe"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/internal/validators"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type entryService struct {
	api   adapter.FinanceAPI
	probe probe.EnvironmentProbe

	incomeValidator  validators.Validator
	expenseValidator validators.Validator
	salaryValidator  validators.Validator

	author      string
	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewEntryService constructs the [EntryService]. author is written to
// entry_by of every submission; now is the clock of the date plausibility
// checks (nil means time.Now).
func NewEntryService(api adapter.FinanceAPI, envProbe probe.EnvironmentProbe, author string, now func() time.Time, logger *logger.Logger) EntryService {
	return &entryService{
		api:              api,
		probe:            envProbe,
		incomeValidator:  validators.NewFormValidator(),
		expenseValidator: validators.NewExpenseValidator(now),
		salaryValidator:  validators.NewSalaryValidator(now),
		author:           author,
		idGenerator:      utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

// submission describes one entry form: how to check it, build it and send it.
type submission[T any] struct {
	kind      models.EntryKind
	validator validators.Validator
	required  []string
	build     func(models.FormData, models.AuditInfo) (T, error)
	create    func(context.Context, T) (models.APIResponse[T], error)
	success   string
	failure   string
}

func (s *entryService) SubmitIncome(ctx context.Context, form models.FormData) models.SubmitResult {
	return submit(ctx, s, submission[models.IncomeEntry]{
		kind:      models.KindIncome,
		validator: s.incomeValidator,
		required:  validators.IncomeRequiredFields,
		build:     models.NewIncomeEntry,
		create:    s.api.AddIncome,
		success:   app.MsgIncomeAdded,
		failure:   app.MsgIncomeFailed,
	}, form)
}

func (s *entryService) SubmitExpense(ctx context.Context, form models.FormData) models.SubmitResult {
	return submit(ctx, s, submission[models.ExpenseEntry]{
		kind:      models.KindExpense,
		validator: s.expenseValidator,
		required:  validators.ExpenseRequiredFields,
		build:     models.NewExpenseEntry,
		create:    s.api.AddExpense,
		success:   app.MsgExpenseAdded,
		failure:   app.MsgExpenseFailed,
	}, form)
}

func (s *entryService) SubmitSalary(ctx context.Context, form models.FormData) models.SubmitResult {
	return submit(ctx, s, submission[models.SalaryEntry]{
		kind:      models.KindSalary,
		validator: s.salaryValidator,
		required:  validators.SalaryRequiredFields,
		build:     models.NewSalaryEntry,
		create:    s.api.AddSalary,
		success:   app.MsgSalaryAdded,
		failure:   app.MsgSalaryFailed,
	}, form)
}

// submit runs validation, the environment probe and the create call strictly
// in that order. Validation failures never reach the network.
func submit[T any](ctx context.Context, s *entryService, sub submission[T], form models.FormData) models.SubmitResult {
	requestID := s.idGenerator.Generate()

	log := logger.FromContext(ctx).GetChildLogger()
	log.Logger = log.With().
		Str("kind", string(sub.kind)).
		Str("request_id", requestID).
		Logger()
	ctx = log.WithContext(utils.WithRequestID(ctx, requestID))

	if err := sub.validator.Validate(ctx, form, sub.required...); err != nil {
		if msgs, ok := validators.Messages(err); ok {
			return models.SubmitResult{Errors: msgs}
		}
		log.Err(err).Str("func", "*entryService.submit").Msg("error validating form")
		return models.SubmitResult{Message: sub.failure}
	}

	audit := s.probe.Collect(ctx, s.author)

	entry, err := sub.build(form, audit)
	if err != nil {
		log.Err(err).Str("func", "*entryService.submit").Msg("error building entry")
		return models.SubmitResult{Message: sub.failure}
	}

	resp, err := sub.create(ctx, entry)
	if err != nil {
		log.Err(err).Str("func", "*entryService.submit").Msg("error submitting entry")
		return models.SubmitResult{Message: sub.failure}
	}
	if !resp.Success {
		log.Err(ErrRejectedByServer).
			Str("func", "*entryService.submit").
			Str("server_message", resp.Message).
			Msg("entry rejected by server")
		return models.SubmitResult{Message: sub.failure}
	}

	log.Info().Str("func", "*entryService.submit").Msg("entry submitted")
	return models.SubmitResult{Success: true, Message: sub.success}
}

func (s *entryService) ListIncome(ctx context.Context, filters models.Filters) ([]models.IncomeEntry, error) {
	return payload(s.api.ListIncome(ctx, filters))
}

func (s *entryService) ListExpenses(ctx context.Context, filters models.Filters) ([]models.ExpenseEntry, error) {
	return payload(s.api.ListExpenses(ctx, filters))
}

func (s *entryService) ListSalary(ctx context.Context, filters models.Filters) ([]models.SalaryEntry, error) {
	return payload(s.api.ListSalary(ctx, filters))
}

func (s *entryService) UpdateIncome(ctx context.Context, id int64, entry models.IncomeEntry) (models.IncomeEntry, error) {
	return payload(s.api.UpdateIncome(ctx, id, entry))
}

func (s *entryService) UpdateExpense(ctx context.Context, id int64, entry models.ExpenseEntry) (models.ExpenseEntry, error) {
	return payload(s.api.UpdateExpense(ctx, id, entry))
}

func (s *entryService) UpdateSalary(ctx context.Context, id int64, entry models.SalaryEntry) (models.SalaryEntry, error) {
	return payload(s.api.UpdateSalary(ctx, id, entry))
}

func (s *entryService) DeleteIncome(ctx context.Context, id int64) error {
	_, err := payload(s.api.DeleteIncome(ctx, id))
	return err
}

func (s *entryService) DeleteExpense(ctx context.Context, id int64) error {
	_, err := payload(s.api.DeleteExpense(ctx, id))
	return err
}

func (s *entryService) DeleteSalary(ctx context.Context, id int64) error {
	_, err := payload(s.api.DeleteSalary(ctx, id))
	return err
}

func (s *entryService) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	return payload(s.api.Dashboard(ctx))
}

func (s *entryService) AccountsDetails(ctx context.Context, filters models.Filters) ([]models.AccountDetail, error) {
	return payload(s.api.AccountsDetails(ctx, filters))
}

// ProjectSalary mirrors what a recurring monthly salary amounts to over a
// year.
func (s *entryService) ProjectSalary(amount float64, paymentType string) *models.SalaryProjection {
	if paymentType != strconv.Itoa(models.PaymentSalary) {
		return nil
	}

	monthly := amount
	yearly := amount * 12

	return &models.SalaryProjection{
		Monthly:          monthly,
		Yearly:           yearly,
		MonthlyFormatted: utils.FormatCurrency(monthly),
		YearlyFormatted:  utils.FormatCurrency(yearly),
	}
}

// payload unwraps an envelope: a transport error or success=false becomes an
// error.
func payload[T any](resp models.APIResponse[T], err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if !resp.Success {
		return zero, fmt.Errorf("%w: %s", ErrRejectedByServer, resp.Message)
	}
	return resp.Data, nil
}
