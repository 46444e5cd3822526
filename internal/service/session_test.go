// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/mock"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/models"
)

var storedSession = models.Session{
	Token: "token-123",
	User:  models.User{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Mobile: "9876543210"},
}

func TestNewSession(t *testing.T) {
	tests := []struct {
		name         string
		loaded       models.Session
		loadErr      error
		wantLoggedIn bool
	}{
		{name: "stored session", loaded: storedSession, wantLoggedIn: true},
		{name: "nothing stored", loadErr: store.ErrSessionNotFound},
		{name: "corrupted profile", loadErr: store.ErrCorruptedSession},
		{name: "storage failure", loadErr: errors.New("disk I/O error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockSessionRepository(ctrl)
			repo.EXPECT().LoadSession(gomock.Any()).Return(tt.loaded, tt.loadErr)

			session := NewSession(context.Background(), repo, logger.Nop())

			assert.Equal(t, tt.wantLoggedIn, session.IsLoggedIn())
			user, ok := session.User()
			assert.Equal(t, tt.wantLoggedIn, ok)
			if tt.wantLoggedIn {
				assert.Equal(t, storedSession.Token, session.Token())
				assert.Equal(t, storedSession.User, user)
			} else {
				assert.Empty(t, session.Token())
			}
		})
	}
}

func TestSession_SaveKeepsStateOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().LoadSession(ctx).Return(models.Session{}, store.ErrSessionNotFound)
	repo.EXPECT().SaveSession(ctx, storedSession).Return(errors.New("read-only file system"))

	session := NewSession(ctx, repo, logger.Nop())
	require.Error(t, session.Save(ctx, storedSession))
	assert.False(t, session.IsLoggedIn())
}

func TestSession_SaveAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().LoadSession(ctx).Return(models.Session{}, store.ErrSessionNotFound),
		repo.EXPECT().SaveSession(ctx, storedSession).Return(nil),
		repo.EXPECT().ClearSession(ctx).Return(errors.New("database is locked")),
	)

	session := NewSession(ctx, repo, logger.Nop())
	require.NoError(t, session.Save(ctx, storedSession))
	assert.True(t, session.IsLoggedIn())
	assert.Equal(t, storedSession, session.Current())

	// memory is cleared even when the repository fails
	require.Error(t, session.Clear(ctx))
	assert.False(t, session.IsLoggedIn())
	assert.Empty(t, session.Token())
}
