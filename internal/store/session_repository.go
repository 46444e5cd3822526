// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// sessionRepository stores the session as two string values: the raw token
// and the profile encoded as JSON.
type sessionRepository struct {
	storage KeyValueStorage
	logger  *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] on top of storage.
func NewSessionRepository(storage KeyValueStorage, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	profile, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user profile: %w", err)
	}

	err = r.storage.Put(ctx, map[string]string{
		models.TokenStorageKey: session.Token,
		models.UserStorageKey:  string(profile),
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := r.storage.Get(ctx, models.TokenStorageKey)
	if err != nil {
		return models.Session{}, notFound(err)
	}

	profile, err := r.storage.Get(ctx, models.UserStorageKey)
	if err != nil {
		return models.Session{}, notFound(err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(profile), &user); err != nil {
		log.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("stored user profile is not valid json")
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptedSession, err)
	}

	session := models.Session{Token: token, User: user}
	if session.IsZero() {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	if err := r.storage.Delete(ctx, models.TokenStorageKey, models.UserStorageKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, ErrKeyNotFound) {
		return ErrSessionNotFound
	}
	return err
}
