// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/models"
)

// ProgramNavigator implements service.Navigator by sending [NavigateTo] to a
// running Bubble Tea program.
//
// Navigate blocks until the program receives the message, so it must only
// be called from a tea.Cmd, never from Update.
type ProgramNavigator struct {
	mu      sync.RWMutex
	program *tea.Program
}

// NewProgramNavigator returns a navigator with no program attached.
// Navigation requests are dropped until [ProgramNavigator.Attach] is called.
func NewProgramNavigator() *ProgramNavigator {
	return &ProgramNavigator{}
}

// Attach binds the navigator to p. A nil p detaches it.
func (n *ProgramNavigator) Attach(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.program = p
}

func (n *ProgramNavigator) Navigate(page models.Page) {
	n.mu.RLock()
	p := n.program
	n.mu.RUnlock()

	if p == nil {
		return
	}
	p.Send(NavigateTo{Page: page})
}
