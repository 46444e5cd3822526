// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// User is the profile of the signed-in account as returned by the backend on
// login. It is persisted next to the bearer token and is never edited
// locally.
type User struct {
	// ID is the backend identifier of the account, if the backend sends one.
	ID int64 `json:"id,omitempty"`

	// FirstName is shown in the menu greeting.
	FirstName string `json:"firstName"`

	// LastName is the family name of the user.
	LastName string `json:"lastName"`

	// Email is the login identifier.
	Email string `json:"email"`

	// Mobile is a 10-digit phone number.
	Mobile string `json:"mobile"`
}

// FullName joins first and last name, skipping empty parts.
func (u User) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// DisplayName returns the first name or "User" when the profile carries none.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName); name != "" {
		return name
	}
	return "User"
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// RegisterRequest is the body of POST /auth/register.
//
// ConfirmPassword is only checked locally and is sent along unchanged, the
// same way the registration form always submitted it.
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthResult is the outcome of a login or registration attempt in a form
// that can be shown to the user as is.
type AuthResult struct {
	Success bool
	Message string
}
