// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func TestProgramNavigator_DetachedDropsNavigation(t *testing.T) {
	var nav service.Navigator = NewProgramNavigator()

	assert.NotPanics(t, func() { nav.Navigate(models.PageIndex) })
}

func TestProgramNavigator_AttachDetach(t *testing.T) {
	nav := NewProgramNavigator()

	nav.Attach(nil)
	assert.Nil(t, nav.program)
	assert.NotPanics(t, func() { nav.Navigate(models.PageLogin) })
}
