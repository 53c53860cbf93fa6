// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package app wires the data layer once per process: one token store, one
// executor and one session manager, shared by whichever front-end runs.
package app // import "github.com/secwatch/console/internal/app"

import (
	"fmt"

	"github.com/secwatch/console/internal/api"
	"github.com/secwatch/console/internal/config"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/poller"
	"github.com/secwatch/console/internal/session"
	"github.com/secwatch/console/internal/tokenstore"
	"github.com/secwatch/console/internal/views"
)

// App holds the shared services.
type App struct {
	Config  config.Config
	Store   tokenstore.Store
	API     *api.Client
	Session *session.Manager
}

// New opens the configured token store and wires the services.
func New(cfg config.Config) (*App, error) {
	store, err := tokenstore.New(tokenstore.Options{
		Backend:  cfg.Token.Store,
		Dsn:      cfg.Token.Dsn,
		Password: cfg.Token.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("open token store: %w", err)
	}
	return NewWithStore(cfg, store), nil
}

// NewWithStore wires the services around an existing store.
func NewWithStore(cfg config.Config, store tokenstore.Store) *App {
	client := api.New(cfg.API.BaseURL, store,
		api.WithTimeout(cfg.API.Timeout),
		api.WithRateLimit(cfg.API.RateLimit, cfg.API.RateBurst),
	)
	mgr := session.New(client, store)
	client.OnSessionExpired(mgr.Expire)
	return &App{Config: cfg, Store: store, API: client, Session: mgr}
}

// Close releases the token store.
func (a *App) Close() error { return tokenstore.Close(a.Store) }

// Dashboard returns a new dashboard poller.
func (a *App) Dashboard(opts ...poller.Option[model.Dashboard]) *poller.Poller[model.Dashboard] {
	return views.NewDashboard(a.API, a.Config.Poll.Dashboard, opts...)
}

// Alerts returns a new alert view.
func (a *App) Alerts(opts ...views.ListOption[[]model.Alert]) *views.Alerts {
	return views.NewAlerts(a.API, a.Config.Poll.Alerts, opts...)
}

// Logins returns a new login activity view.
func (a *App) Logins(opts ...views.ListOption[[]model.LoginActivity]) *views.List[[]model.LoginActivity] {
	return views.NewLoginActivity(a.API, a.Config.Poll.Logins, opts...)
}

// Files returns a new file activity view.
func (a *App) Files(opts ...views.ListOption[[]model.FileActivity]) *views.List[[]model.FileActivity] {
	return views.NewFileActivity(a.API, a.Config.Poll.Files, opts...)
}

// Users returns a new user administration view.
func (a *App) Users(opts ...views.ListOption[[]model.UserProfile]) *views.Users {
	return views.NewUsers(a.API, a.Config.Poll.Users, opts...)
}

// Simulator returns a simulator that refreshes affected after each run.
func (a *App) Simulator(affected ...views.Refresher) *views.Simulator {
	return views.NewSimulator(a.API, affected...)
}
