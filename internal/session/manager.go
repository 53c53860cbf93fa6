// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package session owns the authentication state of the console.
// It is the single writer of the token store apart from the executor's
// expiry path, and it tells the front-ends where to navigate.
package session // import "github.com/secwatch/console/internal/session"

import (
	"context"
	"errors"
	"sync"

	"github.com/secwatch/console/internal/api"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/logging"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/tokenstore"
)

// Route is a navigation target requested by the manager.
type Route int

const (
	RouteLogin Route = iota
	RouteDashboard
)

func (r Route) String() string {
	if r == RouteDashboard {
		return "dashboard"
	}
	return "login"
}

// Navigator receives route changes.
type Navigator interface {
	Navigate(Route)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(Route)

func (f NavigatorFunc) Navigate(r Route) { f(r) }

// Backend is the part of the executor the manager needs.
type Backend interface {
	Login(ctx context.Context, identifier, secret string) (model.TokenResponse, error)
	Me(ctx context.Context) (model.UserProfile, error)
	BaseURL() string
}

// Manager holds the current Session and notifies subscribers on change.
type Manager struct {
	backend Backend
	store   tokenstore.Store

	// loginMu serializes Login calls so the token of an older attempt can
	// never overwrite a newer one.
	loginMu sync.Mutex

	mu      sync.Mutex
	state   model.Session
	nav     Navigator
	subs    map[int]func(model.Session)
	nextSub int
}

// New returns a manager in the Authenticating state. Call CheckAuth to
// settle it from the stored token.
func New(backend Backend, store tokenstore.Store) *Manager {
	return &Manager{
		backend: backend,
		store:   store,
		state:   model.Session{Status: model.Authenticating},
		subs:    map[int]func(model.Session){},
	}
}

// SetNavigator installs the route sink. A nil navigator drops navigation.
func (m *Manager) SetNavigator(n Navigator) {
	m.mu.Lock()
	m.nav = n
	m.mu.Unlock()
}

// Session returns the current snapshot.
func (m *Manager) Session() model.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn for every state change. The returned function
// removes the subscription.
func (m *Manager) Subscribe(fn func(model.Session)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// set replaces the state and notifies subscribers when it changed.
// Notifications run outside the lock.
func (m *Manager) set(next model.Session, route *Route) bool {
	m.mu.Lock()
	if sameSession(m.state, next) {
		m.mu.Unlock()
		return false
	}
	m.state = next
	subs := make([]func(model.Session), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	nav := m.nav
	m.mu.Unlock()

	logging.Debugf("session: %s", next.Status)
	for _, fn := range subs {
		fn(next)
	}
	if route != nil && nav != nil {
		nav.Navigate(*route)
	}
	return true
}

func sameSession(a, b model.Session) bool {
	if a.Status != b.Status || a.Error != b.Error {
		return false
	}
	if a.User == nil || b.User == nil {
		return a.User == b.User
	}
	return a.User == b.User || *a.User == *b.User
}

// Login authenticates with the backend, stores the token and resolves the
// user profile. On failure the session is left Unauthenticated with a
// human-readable error and no token is stored.
func (m *Manager) Login(ctx context.Context, identifier, secret string) error {
	m.loginMu.Lock()
	defer m.loginMu.Unlock()

	m.set(model.Session{Status: model.Authenticating}, nil)

	user, err := m.login(ctx, identifier, secret)
	if err != nil {
		if cerr := m.store.Clear(context.WithoutCancel(ctx)); cerr != nil {
			logging.Warnf("session: could not clear token after failed login: %v", cerr)
		}
		msg := m.loginMessage(err)
		logging.Infof("session: login for %s failed: %s", identifier, msg)
		m.set(model.Session{Status: model.Unauthenticated, Error: msg}, nil)
		return err
	}

	logging.Infof("session: logged in as %s", user.Email)
	route := RouteDashboard
	m.set(model.Session{Status: model.Authenticated, User: &user}, &route)
	return nil
}

func (m *Manager) login(ctx context.Context, identifier, secret string) (model.UserProfile, error) {
	resp, err := m.backend.Login(ctx, identifier, secret)
	if err != nil {
		return model.UserProfile{}, err
	}
	if err := m.store.Set(ctx, resp.AccessToken); err != nil {
		return model.UserProfile{}, err
	}
	if resp.User != nil {
		return *resp.User, nil
	}
	return m.backend.Me(ctx)
}

func (m *Manager) loginMessage(err error) string {
	var nu *api.NetworkUnreachable
	var rr *api.RequestRejected
	switch {
	case errors.As(err, &nu):
		return i18n.T("session.error_unreachable", nu.BaseURL)
	case errors.As(err, &rr):
		return rr.Detail
	case errors.Is(err, api.ErrSessionExpired):
		return i18n.T("session.error_rejected")
	default:
		return i18n.T("session.error_login_failed", err)
	}
}

// Logout clears the token and returns to the login route. Calling it on a
// logged-out session changes nothing.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		logging.Warnf("session: could not clear token on logout: %v", err)
	}
	route := RouteLogin
	if m.set(model.Session{Status: model.Unauthenticated}, &route) {
		logging.Infof("session: logged out")
	}
}

// CheckAuth settles the state from the stored token. It never fails: any
// problem leaves the session Unauthenticated.
func (m *Manager) CheckAuth(ctx context.Context) {
	token, err := m.store.Get(ctx)
	if err != nil {
		logging.Warnf("session: could not read token: %v", err)
		m.set(model.Session{Status: model.Unauthenticated}, nil)
		return
	}
	if token == "" {
		m.set(model.Session{Status: model.Unauthenticated}, nil)
		return
	}

	user, err := m.backend.Me(ctx)
	if err != nil {
		logging.Infof("session: stored token not accepted: %v", err)
		if cerr := m.store.Clear(ctx); cerr != nil {
			logging.Warnf("session: could not clear token: %v", cerr)
		}
		m.set(model.Session{Status: model.Unauthenticated}, nil)
		return
	}
	m.set(model.Session{Status: model.Authenticated, User: &user}, nil)
}

// Expire is the executor's session-expired hook. It forces the logged-out
// state and navigates to login only when the state actually changed.
func (m *Manager) Expire() {
	m.mu.Lock()
	already := m.state.Status == model.Unauthenticated && m.state.User == nil
	m.mu.Unlock()
	if already {
		return
	}
	route := RouteLogin
	if m.set(model.Session{Status: model.Unauthenticated}, &route) {
		logging.Infof("session: expired")
	}
}
