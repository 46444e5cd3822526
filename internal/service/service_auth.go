// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/validators"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// LogoutTimeout bounds the backend logout call that follows clearing the
// session.
const LogoutTimeout = 5 * time.Second

type authService struct {
	api       adapter.FinanceAPI
	session   *Session
	validator validators.Validator
	navigator Navigator

	logoutTimeout time.Duration

	logger *logger.Logger
}

// NewAuthService constructs the auth session manager. navigator is only
// used by [AuthService.Logout] and [AuthService.RedirectIfAuthenticated].
func NewAuthService(api adapter.FinanceAPI, session *Session, navigator Navigator, logger *logger.Logger) AuthService {
	return &authService{
		api:       api,
		session:   session,
		validator: validators.NewAuthValidator(),
		navigator: navigator,

		logoutTimeout: LogoutTimeout,

		logger: logger,
	}
}

func (a *authService) Login(ctx context.Context, email, password string, rememberMe bool) models.AuthResult {
	log := logger.FromContext(ctx)

	req := models.LoginRequest{
		Email:      strings.TrimSpace(email),
		Password:   password,
		RememberMe: rememberMe,
	}
	if msg, ok := firstMessage(a.validator.Validate(ctx, req)); ok {
		return models.AuthResult{Message: msg}
	}

	resp, err := a.api.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("login request failed")
		return models.AuthResult{Message: app.MsgLoginError}
	}

	if !resp.Success {
		return models.AuthResult{Message: orDefault(resp.Message, app.MsgLoginFailed)}
	}

	if strings.TrimSpace(resp.Token) == "" {
		log.Err(ErrEmptyToken).Str("func", "*authService.Login").Msg("login response without token")
		return models.AuthResult{Message: orDefault(resp.Message, app.MsgLoginFailed)}
	}

	if err = a.session.Save(ctx, models.Session{Token: resp.Token, User: resp.User}); err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error persisting session")
		return models.AuthResult{Message: app.MsgLoginError}
	}

	log.Info().Str("func", "*authService.Login").Str("email", req.Email).Msg("logged in")
	return models.AuthResult{Success: true, Message: app.MsgLoginSuccess}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) models.AuthResult {
	log := logger.FromContext(ctx)

	if msg, ok := firstMessage(a.validator.Validate(ctx, req)); ok {
		return models.AuthResult{Message: msg}
	}

	resp, err := a.api.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("register request failed")
		return models.AuthResult{Message: app.MsgRegisterError}
	}

	if !resp.Success {
		return models.AuthResult{Message: orDefault(resp.Message, app.MsgRegisterFailed)}
	}

	return models.AuthResult{Success: true, Message: app.MsgRegisterSuccess}
}

func (a *authService) Logout(ctx context.Context) {
	log := logger.FromContext(ctx)

	token := a.session.Token()
	if err := a.session.Clear(ctx); err != nil {
		log.Err(err).Str("func", "*authService.Logout").Msg("error clearing stored session")
	}
	a.navigator.Navigate(models.PageLogin)

	if token == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, a.logoutTimeout)
	defer cancel()
	if err := a.api.Logout(ctx, token); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Logout").Msg("backend logout failed")
	}
}

func (a *authService) IsLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *authService) Token() string {
	return a.session.Token()
}

func (a *authService) User() (models.User, bool) {
	return a.session.User()
}

func (a *authService) Session() models.Session {
	return a.session.Current()
}

func (a *authService) IsAuthPage(page models.Page) bool {
	return page.IsAuthPage()
}

func (a *authService) RedirectIfAuthenticated(page models.Page) bool {
	if !a.IsAuthPage(page) || !a.IsLoggedIn() {
		return false
	}
	a.navigator.Navigate(models.PageIndex)
	return true
}

// firstMessage returns the first validation message of err. A non-validation
// error is reported by its text.
func firstMessage(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	if msgs, ok := validators.Messages(err); ok && len(msgs) > 0 {
		return msgs[0], true
	}
	return err.Error(), true
}

func orDefault(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
