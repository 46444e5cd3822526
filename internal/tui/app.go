// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	auth    service.AuthService
	pages   map[models.Page]tea.Model
	page    models.Page
	current tea.Model

	buildInfo models.AppBuildInfo
	userAgent string

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(auth service.AuthService, pages map[models.Page]tea.Model, startPage models.Page, buildInfo models.AppBuildInfo, userAgent string) RootModel {
	return RootModel{
		auth:      auth,
		pages:     pages,
		page:      startPage,
		current:   pages[startPage],
		buildInfo: buildInfo,
		userAgent: userAgent,
	}
}

// Init starts the first page and asks the auth manager whether an already
// authenticated user should skip the login or registration page.
func (r RootModel) Init() tea.Cmd {
	auth := r.auth
	start := r.page
	redirect := func() tea.Msg {
		auth.RedirectIfAuthenticated(start)
		return nil
	}

	if r.current == nil {
		return redirect
	}
	return tea.Batch(r.current.Init(), redirect)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.page == models.PageIndex:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.page = nav.Page
		r.current = next

		if nav.Payload != nil {
			payload := nav.Payload
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.page] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.userAgent)
	}
	if r.current == nil {
		return renderPage("FINANCE TRACKER", "", "")
	}
	return r.current.View()
}

// Page returns the active page.
func (r RootModel) Page() models.Page {
	return r.page
}
