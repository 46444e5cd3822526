// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/mock"
	"github.com/MKhiriev/go-finance-tracker/models"
)

// stubPage records what it receives.
type stubPage struct {
	name     string
	inits    int
	received []tea.Msg
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.received = append(p.received, msg)
	return p, nil
}

func (p *stubPage) View() string { return "page " + p.name }

func newTestRoot(t *testing.T, start models.Page) (RootModel, *mock.MockAuthService, map[models.Page]*stubPage) {
	t.Helper()
	auth := mock.NewMockAuthService(gomock.NewController(t))

	stubs := map[models.Page]*stubPage{
		models.PageLogin: {name: "login"},
		models.PageIndex: {name: "index"},
	}
	pages := make(map[models.Page]tea.Model, len(stubs))
	for page, stub := range stubs {
		pages[page] = stub
	}

	root := NewRootModel(auth, pages, start, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc"), "finance-tracker-client/1.2.3 (X11; Linux)")
	return root, auth, stubs
}

func TestRootModel_InitRedirectsAuthenticatedUser(t *testing.T) {
	root, auth, stubs := newTestRoot(t, models.PageLogin)

	auth.EXPECT().RedirectIfAuthenticated(models.PageLogin).Return(true)

	msgs := collect(root.Init())

	assert.Equal(t, 1, stubs[models.PageLogin].inits)
	assert.Equal(t, []tea.Msg{nil}, msgs)
}

func TestRootModel_Navigate(t *testing.T) {
	root, _, stubs := newTestRoot(t, models.PageLogin)

	model, _ := root.Update(NavigateTo{Page: models.PageIndex})
	root = model.(RootModel)

	assert.Equal(t, models.PageIndex, root.Page())
	assert.Equal(t, 1, stubs[models.PageIndex].inits)
	assert.Equal(t, "page index", root.View())

	root.Update(keyPress("x"))
	require.Len(t, stubs[models.PageIndex].received, 1)
	assert.Empty(t, stubs[models.PageLogin].received)
}

func TestRootModel_NavigateUnknownPageIsIgnored(t *testing.T) {
	root, _, _ := newTestRoot(t, models.PageLogin)

	model, cmd := root.Update(NavigateTo{Page: models.PageDashboard})

	assert.Nil(t, cmd)
	assert.Equal(t, models.PageLogin, model.(RootModel).Page())
}

func TestRootModel_NavigateDeliversPayload(t *testing.T) {
	root, _, _ := newTestRoot(t, models.PageIndex)
	notice := registeredNotice{message: "done"}

	_, cmd := root.Update(NavigateTo{Page: models.PageLogin, Payload: notice})

	assert.Contains(t, collect(cmd), tea.Msg(notice))
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _, _ := newTestRoot(t, models.PageLogin)

	_, cmd := root.Update(keyPress("ctrl+c"))

	assert.Equal(t, tea.QuitMsg{}, runCmd(t, cmd))
}

func TestRootModel_BuildInfoOnlyOnIndex(t *testing.T) {
	root, _, stubs := newTestRoot(t, models.PageLogin)

	model, _ := root.Update(keyPress("v"))
	root = model.(RootModel)
	assert.Equal(t, "page login", root.View())
	assert.Len(t, stubs[models.PageLogin].received, 1, "v is typed into the login page")

	model, _ = root.Update(NavigateTo{Page: models.PageIndex})
	model, _ = model.Update(keyPress("v"))
	root = model.(RootModel)

	view := root.View()
	assert.Contains(t, view, "Version: 1.2.3")
	assert.Contains(t, view, "Commit: abc")
	assert.Contains(t, view, "finance-tracker-client/1.2.3")

	model, _ = root.Update(keyPress("esc"))
	assert.Equal(t, "page index", model.View())
}
