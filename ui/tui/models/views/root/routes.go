// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/secwatch/console/internal/guard"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/ui/tui/models/components/menu"
	"github.com/secwatch/console/ui/tui/models/views/alerts"
	"github.com/secwatch/console/ui/tui/models/views/dashboard"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/files"
	"github.com/secwatch/console/ui/tui/models/views/loading"
	"github.com/secwatch/console/ui/tui/models/views/login"
	"github.com/secwatch/console/ui/tui/models/views/logins"
	"github.com/secwatch/console/ui/tui/models/views/simulator"
	"github.com/secwatch/console/ui/tui/models/views/users"
	"github.com/secwatch/console/ui/tui/util"
)

// Route ids. routeLoading is never requested, it is only shown while the
// session settles.
const (
	routeLoading   = "loading"
	routeLogin     = "login"
	routeDashboard = "dashboard"
	routeAlerts    = "alerts"
	routeLogins    = "logins"
	routeFiles     = "files"
	routeUsers     = "users"
	routeSimulator = "simulator"

	menuActivity = "activity"
	menuLogout   = "logout"
)

type route struct {
	requirement guard.Requirement
	build       func(e *env.Env) util.Model
	// captures typed keys, so single key shortcuts are off
	typing bool
}

var routes = map[string]route{
	routeLoading:   {requirement: guard.Public, build: func(*env.Env) util.Model { return loading.New() }},
	routeLogin:     {requirement: guard.Public, build: func(e *env.Env) util.Model { return login.New(e) }, typing: true},
	routeDashboard: {requirement: guard.Protected, build: func(e *env.Env) util.Model { return dashboard.New(e) }},
	routeAlerts:    {requirement: guard.Protected, build: func(e *env.Env) util.Model { return alerts.New(e) }},
	routeLogins:    {requirement: guard.Protected, build: func(e *env.Env) util.Model { return logins.New(e) }},
	routeFiles:     {requirement: guard.Protected, build: func(e *env.Env) util.Model { return files.New(e) }},
	routeUsers:     {requirement: guard.AdminOnly, build: func(e *env.Env) util.Model { return users.New(e) }},
	routeSimulator: {requirement: guard.AdminOnly, build: func(e *env.Env) util.Model { return simulator.New(e) }, typing: true},
}

// target resolves the requested route against the session.
func target(s model.Session, requested string) (string, guard.Decision) {
	r, ok := routes[requested]
	if !ok {
		requested, r = routeDashboard, routes[routeDashboard]
	}
	if requested == routeLogin && s.IsAuthenticated() {
		// a signed-in operator has nothing to do on the login form
		requested, r = routeDashboard, routes[routeDashboard]
	}
	decision := guard.Evaluate(s, r.requirement)
	switch decision {
	case guard.Loading:
		return routeLoading, decision
	case guard.RedirectLogin:
		return routeLogin, decision
	case guard.RedirectDefault:
		return routeDashboard, decision
	default:
		return requested, decision
	}
}

// menuItems lists the routes the session may open.
func menuItems(s model.Session) []menu.Item {
	if !s.IsAuthenticated() {
		return nil
	}
	items := []menu.Item{
		menu.WithItem(routeDashboard, i18n.T("menu.dashboard")),
		menu.WithItem(routeAlerts, i18n.T("menu.alerts")),
		menu.WithItem(menuActivity, i18n.T("menu.activity"),
			menu.WithItem(routeLogins, i18n.T("menu.logins")),
			menu.WithItem(routeFiles, i18n.T("menu.files")),
		),
	}
	if s.IsAdmin() {
		items = append(items,
			menu.WithItem(routeUsers, i18n.T("menu.users")),
			menu.WithItem(routeSimulator, i18n.T("menu.simulator")),
		)
	}
	return append(items, menu.WithItem(menuLogout, i18n.T("menu.logout")))
}
