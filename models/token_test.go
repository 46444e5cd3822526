// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_IsZero(t *testing.T) {
	assert.True(t, Session{}.IsZero())
	assert.True(t, Session{Token: "  "}.IsZero())
	assert.False(t, Session{Token: "opaque"}.IsZero())
}

func TestSession_ExpiresAt(t *testing.T) {
	exp := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	got, ok := Session{Token: signed}.ExpiresAt()
	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestSession_ExpiresAt_NotJWT(t *testing.T) {
	_, ok := Session{Token: "opaque-token"}.ExpiresAt()
	assert.False(t, ok)

	_, ok = Session{}.ExpiresAt()
	assert.False(t, ok)
}

func TestSession_ExpiresAt_NoExpClaim(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"}).
		SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	_, ok := Session{Token: signed}.ExpiresAt()
	assert.False(t, ok)
}

func TestUser_Names(t *testing.T) {
	u := User{FirstName: " Asha ", LastName: "Verma"}
	assert.Equal(t, "Asha Verma", u.FullName())
	assert.Equal(t, "Asha", u.DisplayName())

	assert.Equal(t, "User", User{}.DisplayName())
	assert.Equal(t, "Verma", User{LastName: "Verma"}.FullName())
}

func TestPage_IsAuthPage(t *testing.T) {
	assert.True(t, PageLogin.IsAuthPage())
	assert.True(t, PageRegister.IsAuthPage())
	assert.False(t, PageIndex.IsAuthPage())
	assert.False(t, PageExpense.IsAuthPage())
}
