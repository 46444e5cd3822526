// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// Resource paths relative to the configured base URL.
const (
	pathLogin           = "/auth/login"
	pathRegister        = "/auth/register"
	pathLogout          = "/auth/logout"
	pathVerify          = "/auth/verify"
	pathIncome          = "/income"
	pathExpenses        = "/expenses"
	pathSalary          = "/salary"
	pathDashboard       = "/dashboard"
	pathAccountsDetails = "/accounts-details"
)

// RequestIDHeader carries a per-call identifier that is also written to the
// client log.
const RequestIDHeader = "X-Request-ID"

type httpFinanceAPI struct {
	client      *utils.HTTPClient
	tokens      TokenSource
	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPFinanceAPI constructs the resty implementation of [FinanceAPI]. It
// normalises adapterCfg.HTTPAddress, applies adapterCfg.RequestTimeout and
// sends userAgent on every request. tokens is read on every call.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewHTTPFinanceAPI(adapterCfg config.ClientAdapter, userAgent string, tokens TokenSource, logger *logger.Logger) (FinanceAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   adapterCfg.RequestTimeout,
		UserAgent: userAgent,
	})

	return &httpFinanceAPI{
		client:      client,
		tokens:      tokens,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [FinanceAPI].
func (h *httpFinanceAPI) Do(ctx context.Context, method, path string, body any, headers map[string]string, query models.Filters, result any) error {
	log := logger.FromContext(ctx)

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.idGenerator.Generate()
	}

	req := h.authedRequest(ctx).SetHeader(RequestIDHeader, requestID)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	for name, value := range headers {
		req.SetHeader(name, value)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).
			Str("func", "*httpFinanceAPI.Do").
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Msg("api call failed")
		return fmt.Errorf("%w: %s %s: %w", ErrRequestFailed, method, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).
			Str("func", "*httpFinanceAPI.Do").
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("api call returned non-2xx status")
		return err
	}

	log.Debug().
		Str("func", "*httpFinanceAPI.Do").
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Msg("api call succeeded")

	if result == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrDecodingResponse, method, path, err)
	}

	return nil
}

// Login implements [FinanceAPI].
func (h *httpFinanceAPI) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := h.Do(ctx, http.MethodPost, pathLogin, req, nil, nil, &resp)
	return resp, err
}

// Register implements [FinanceAPI].
func (h *httpFinanceAPI) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var resp models.AuthResponse
	err := h.Do(ctx, http.MethodPost, pathRegister, req, nil, nil, &resp)
	return resp, err
}

// Logout implements [FinanceAPI]. The response body is ignored.
func (h *httpFinanceAPI) Logout(ctx context.Context, token string) error {
	var headers map[string]string
	if token = strings.TrimSpace(token); token != "" {
		headers = map[string]string{"Authorization": "Bearer " + token}
	}
	return h.Do(ctx, http.MethodPost, pathLogout, nil, headers, nil, nil)
}

// VerifyToken implements [FinanceAPI].
func (h *httpFinanceAPI) VerifyToken(ctx context.Context) (models.APIResponse[models.User], error) {
	var resp models.APIResponse[models.User]
	err := h.Do(ctx, http.MethodGet, pathVerify, nil, nil, nil, &resp)
	return resp, err
}

func (h *httpFinanceAPI) AddIncome(ctx context.Context, entry models.IncomeEntry) (models.APIResponse[models.IncomeEntry], error) {
	return create[models.IncomeEntry](ctx, h, pathIncome, entry)
}

func (h *httpFinanceAPI) ListIncome(ctx context.Context, filters models.Filters) (models.APIResponse[[]models.IncomeEntry], error) {
	return list[models.IncomeEntry](ctx, h, pathIncome, filters)
}

func (h *httpFinanceAPI) UpdateIncome(ctx context.Context, id int64, entry models.IncomeEntry) (models.APIResponse[models.IncomeEntry], error) {
	return update[models.IncomeEntry](ctx, h, pathIncome, id, entry)
}

func (h *httpFinanceAPI) DeleteIncome(ctx context.Context, id int64) (models.StatusResponse, error) {
	return h.remove(ctx, pathIncome, id)
}

func (h *httpFinanceAPI) AddExpense(ctx context.Context, entry models.ExpenseEntry) (models.APIResponse[models.ExpenseEntry], error) {
	return create[models.ExpenseEntry](ctx, h, pathExpenses, entry)
}

func (h *httpFinanceAPI) ListExpenses(ctx context.Context, filters models.Filters) (models.APIResponse[[]models.ExpenseEntry], error) {
	return list[models.ExpenseEntry](ctx, h, pathExpenses, filters)
}

func (h *httpFinanceAPI) UpdateExpense(ctx context.Context, id int64, entry models.ExpenseEntry) (models.APIResponse[models.ExpenseEntry], error) {
	return update[models.ExpenseEntry](ctx, h, pathExpenses, id, entry)
}

func (h *httpFinanceAPI) DeleteExpense(ctx context.Context, id int64) (models.StatusResponse, error) {
	return h.remove(ctx, pathExpenses, id)
}

func (h *httpFinanceAPI) AddSalary(ctx context.Context, entry models.SalaryEntry) (models.APIResponse[models.SalaryEntry], error) {
	return create[models.SalaryEntry](ctx, h, pathSalary, entry)
}

func (h *httpFinanceAPI) ListSalary(ctx context.Context, filters models.Filters) (models.APIResponse[[]models.SalaryEntry], error) {
	return list[models.SalaryEntry](ctx, h, pathSalary, filters)
}

func (h *httpFinanceAPI) UpdateSalary(ctx context.Context, id int64, entry models.SalaryEntry) (models.APIResponse[models.SalaryEntry], error) {
	return update[models.SalaryEntry](ctx, h, pathSalary, id, entry)
}

func (h *httpFinanceAPI) DeleteSalary(ctx context.Context, id int64) (models.StatusResponse, error) {
	return h.remove(ctx, pathSalary, id)
}

// Dashboard implements [FinanceAPI].
func (h *httpFinanceAPI) Dashboard(ctx context.Context) (models.APIResponse[models.DashboardSummary], error) {
	var resp models.APIResponse[models.DashboardSummary]
	err := h.Do(ctx, http.MethodGet, pathDashboard, nil, nil, nil, &resp)
	return resp, err
}

// AccountsDetails implements [FinanceAPI].
func (h *httpFinanceAPI) AccountsDetails(ctx context.Context, filters models.Filters) (models.APIResponse[[]models.AccountDetail], error) {
	return list[models.AccountDetail](ctx, h, pathAccountsDetails, filters)
}

func (h *httpFinanceAPI) remove(ctx context.Context, resource string, id int64) (models.StatusResponse, error) {
	var resp models.StatusResponse
	err := h.Do(ctx, http.MethodDelete, resourcePath(resource, id), nil, nil, nil, &resp)
	return resp, err
}

func (h *httpFinanceAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.tokens == nil {
		return req
	}
	if token := strings.TrimSpace(h.tokens.Token()); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func create[T any](ctx context.Context, h *httpFinanceAPI, resource string, entry T) (models.APIResponse[T], error) {
	var resp models.APIResponse[T]
	err := h.Do(ctx, http.MethodPost, resource, entry, nil, nil, &resp)
	return resp, err
}

func list[T any](ctx context.Context, h *httpFinanceAPI, resource string, filters models.Filters) (models.APIResponse[[]T], error) {
	var resp models.APIResponse[[]T]
	err := h.Do(ctx, http.MethodGet, resource, nil, nil, filters, &resp)
	return resp, err
}

func update[T any](ctx context.Context, h *httpFinanceAPI, resource string, id int64, entry T) (models.APIResponse[T], error) {
	var resp models.APIResponse[T]
	err := h.Do(ctx, http.MethodPut, resourcePath(resource, id), entry, nil, nil, &resp)
	return resp, err
}

func resourcePath(resource string, id int64) string {
	return resource + "/" + strconv.FormatInt(id, 10)
}
