// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/internal/config"
	"github.com/secwatch/console/internal/guard"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/session"
	"github.com/secwatch/console/ui/tui/models/components/menu"
	"github.com/secwatch/console/ui/tui/models/components/router"
	"github.com/secwatch/console/ui/tui/models/views/env/envtest"
	"github.com/secwatch/console/ui/tui/models/views/login"
)

func TestTarget(t *testing.T) {
	analyst := model.Session{Status: model.Authenticated, User: &model.UserProfile{ID: 2}}
	admin := model.Session{Status: model.Authenticated, User: &model.UserProfile{ID: 1, IsAdmin: true}}
	loggedOut := model.Session{Status: model.Unauthenticated}
	settling := model.Session{Status: model.Authenticating}

	cases := []struct {
		name      string
		s         model.Session
		requested string
		want      string
		decision  guard.Decision
	}{
		{"settling", settling, routeAlerts, routeLoading, guard.Loading},
		{"logged out", loggedOut, routeAlerts, routeLogin, guard.RedirectLogin},
		{"login form is public", loggedOut, routeLogin, routeLogin, guard.Admit},
		{"signed in skips login", analyst, routeLogin, routeDashboard, guard.Admit},
		{"analyst on users", analyst, routeUsers, routeDashboard, guard.RedirectDefault},
		{"admin on users", admin, routeUsers, routeUsers, guard.Admit},
		{"unknown route", analyst, "nope", routeDashboard, guard.Admit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, d := target(tc.s, tc.requested)
			if got != tc.want || d != tc.decision {
				t.Fatalf("target = %s/%s, want %s/%s", got, d, tc.want, tc.decision)
			}
		})
	}
}

func menuIDs(items []menu.Item) []string {
	var ids []string
	for _, it := range items {
		ids = append(ids, it.Id)
		ids = append(ids, menuIDs(it.SubItems)...)
	}
	return ids
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestMenuHidesAdminRoutes(t *testing.T) {
	analyst := menuIDs(menuItems(model.Session{Status: model.Authenticated, User: &model.UserProfile{ID: 2}}))
	if contains(analyst, routeUsers) || contains(analyst, routeSimulator) {
		t.Errorf("analyst menu has admin entries: %v", analyst)
	}
	if !contains(analyst, routeFiles) || !contains(analyst, menuLogout) {
		t.Errorf("analyst menu incomplete: %v", analyst)
	}
	admin := menuIDs(menuItems(model.Session{Status: model.Authenticated, User: &model.UserProfile{ID: 1, IsAdmin: true}}))
	if !contains(admin, routeUsers) || !contains(admin, routeSimulator) {
		t.Errorf("admin menu lacks admin entries: %v", admin)
	}
	if items := menuItems(model.Session{Status: model.Unauthenticated}); items != nil {
		t.Errorf("logged out menu = %v", items)
	}
}

// apply feeds the router change produced by cmd back into m.
func apply(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			apply(t, m, c)
		}
	case router.ChangeMsg:
		m.Update(msg)
	}
}

func TestFollowsSession(t *testing.T) {
	h := envtest.New(t, config.PollConfig{})
	m := New(h.Env, nil)
	t.Cleanup(m.Shutdown)

	if m.Shown() != routeLoading {
		t.Fatalf("initially showing %s", m.Shown())
	}

	h.Env.App.Session.CheckAuth(context.Background())
	_, cmd := m.Update(sessionChangedMsg{})
	apply(t, m, cmd)
	if m.Shown() != routeLogin {
		t.Fatalf("without a token showing %s", m.Shown())
	}
	if _, ok := m.router.Active().(*login.Model); !ok {
		t.Fatalf("router shows %T", m.router.Active())
	}

	h.Login(t, false)
	_, cmd = m.Update(navigateMsg{route: session.RouteDashboard})
	apply(t, m, cmd)
	if m.Shown() != routeDashboard {
		t.Fatalf("after login showing %s", m.Shown())
	}
	if ids := menuIDs(m.menu.Items); contains(ids, routeUsers) {
		t.Fatalf("analyst sees %v", ids)
	}

	// admin-only route falls back to the dashboard
	_, cmd = m.Update(menu.ItemSelected{Id: routeUsers})
	apply(t, m, cmd)
	if m.Shown() != routeDashboard || m.requested != routeDashboard {
		t.Fatalf("analyst reached %s (requested %s)", m.Shown(), m.requested)
	}

	_, cmd = m.Update(menu.ItemSelected{Id: routeAlerts})
	apply(t, m, cmd)
	if m.Shown() != routeAlerts {
		t.Fatalf("menu selection showing %s", m.Shown())
	}

	h.Fake.RevokeAll()
	h.Env.App.Session.Expire()
	_, cmd = m.Update(sessionChangedMsg{})
	apply(t, m, cmd)
	if m.Shown() != routeLogin {
		t.Fatalf("after expiry showing %s", m.Shown())
	}
	if len(m.menu.Items) != 0 {
		t.Fatal("menu still populated after expiry")
	}
}

func TestHelpKeyIgnoredWhileTyping(t *testing.T) {
	h := envtest.New(t, config.PollConfig{})
	m := New(h.Env, nil)
	t.Cleanup(m.Shutdown)
	m.shown = routeLogin
	if !m.typing() {
		t.Fatal("login form should capture keys")
	}
	m.shown = routeAlerts
	if m.typing() {
		t.Fatal("alerts view should not capture keys")
	}
}
