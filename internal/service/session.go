// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// Session is the in-memory view of the persisted credential. One value is
// created at start-up and shared by the API client (as its token source),
// the auth service and the screens. Writes go through to the repository.
type Session struct {
	mu      sync.RWMutex
	current models.Session

	repo   store.SessionRepository
	logger *logger.Logger
}

// NewSession loads the persisted session from repo. A missing or corrupted
// session yields an anonymous one.
func NewSession(ctx context.Context, repo store.SessionRepository, logger *logger.Logger) *Session {
	s := &Session{repo: repo, logger: logger}

	current, err := repo.LoadSession(ctx)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		logger.Debug().Str("func", "NewSession").Msg("no stored session")
	case err != nil:
		logger.Err(err).Str("func", "NewSession").Msg("error loading stored session, starting anonymous")
	default:
		s.current = current
	}

	return s
}

// Token returns the bearer credential or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// User returns the stored profile; ok is false when anonymous.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.User, !s.current.IsZero()
}

// Current returns a copy of the session.
func (s *Session) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsLoggedIn reports whether both the token and the profile are stored.
func (s *Session) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.current.IsZero()
}

// Save persists session. The in-memory value changes only when the write
// succeeds.
func (s *Session) Save(ctx context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return err
	}
	s.current = session
	return nil
}

// Clear forgets the session in memory and removes both stored keys. The
// in-memory value is cleared even when the repository fails.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = models.Session{}
	return s.repo.ClearSession(ctx)
}
