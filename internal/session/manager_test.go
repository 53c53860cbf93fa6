// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/secwatch/console/internal/api"
	"github.com/secwatch/console/internal/guard"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/testutil/fakeapi"
	"github.com/secwatch/console/internal/tokenstore"
)

type recordingNav struct {
	mu     sync.Mutex
	routes []Route
}

func (n *recordingNav) Navigate(r Route) {
	n.mu.Lock()
	n.routes = append(n.routes, r)
	n.mu.Unlock()
}

func (n *recordingNav) all() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Route(nil), n.routes...)
}

type fixture struct {
	fake   *fakeapi.Server
	server *httptest.Server
	client *api.Client
	store  tokenstore.Store
	mgr    *Manager
	nav    *recordingNav
}

func setup(t *testing.T) *fixture {
	t.Helper()
	i18n.Init("en")
	fake, ts := fakeapi.Start(t)
	store := tokenstore.NewMemoryStore()
	client := api.New(ts.URL, store)
	mgr := New(client, store)
	client.OnSessionExpired(mgr.Expire)
	nav := &recordingNav{}
	mgr.SetNavigator(nav)
	return &fixture{fake: fake, server: ts, client: client, store: store, mgr: mgr, nav: nav}
}

func (f *fixture) token(t *testing.T) string {
	t.Helper()
	tok, err := f.store.Get(context.Background())
	if err != nil {
		t.Fatalf("store.Get: %v", err)
	}
	return tok
}

func TestInitialStateIsAuthenticating(t *testing.T) {
	f := setup(t)
	if got := f.mgr.Session().Status; got != model.Authenticating {
		t.Fatalf("initial status = %s", got)
	}
}

func TestLoginWithInlineUser(t *testing.T) {
	f := setup(t)
	f.fake.QueueToken("abc")

	if err := f.mgr.Login(context.Background(), "admin@example.com", "Admin@123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	s := f.mgr.Session()
	if s.Status != model.Authenticated || !s.IsAdmin() {
		t.Fatalf("expected authenticated admin, got %+v", s)
	}
	if tok := f.token(t); tok != "abc" {
		t.Errorf("store holds %q, want abc", tok)
	}
	if len(f.fake.RequestsTo("/api/v1/users/me")) != 0 {
		t.Error("inline user should not trigger /users/me")
	}
	if routes := f.nav.all(); len(routes) != 1 || routes[0] != RouteDashboard {
		t.Errorf("routes = %v, want [dashboard]", routes)
	}
}

func TestLoginFetchesProfileWhenNotInline(t *testing.T) {
	f := setup(t)
	f.fake.SetInlineUser(false)

	if err := f.mgr.Login(context.Background(), fakeapi.AnalystEmail, fakeapi.AnalystPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}
	s := f.mgr.Session()
	if !s.IsAuthenticated() || s.IsAdmin() || s.User.Email != fakeapi.AnalystEmail {
		t.Fatalf("unexpected session %+v", s)
	}
	if len(f.fake.RequestsTo("/api/v1/users/me")) != 1 {
		t.Error("expected one /users/me request")
	}
}

func TestLoginRejectedKeepsDetailAndNoToken(t *testing.T) {
	f := setup(t)
	err := f.mgr.Login(context.Background(), fakeapi.AdminEmail, "nope")
	var rr *api.RequestRejected
	if !errors.As(err, &rr) {
		t.Fatalf("expected RequestRejected, got %v", err)
	}
	s := f.mgr.Session()
	if s.Status != model.Unauthenticated || s.Error != "Incorrect username or password" {
		t.Errorf("unexpected session %+v", s)
	}
	if tok := f.token(t); tok != "" {
		t.Errorf("token stored after failed login: %q", tok)
	}
}

func TestLoginUnreachableNamesBaseURL(t *testing.T) {
	f := setup(t)
	f.server.Close()

	if err := f.mgr.Login(context.Background(), fakeapi.AdminEmail, fakeapi.AdminPassword); err == nil {
		t.Fatal("expected an error from an unreachable backend")
	}
	s := f.mgr.Session()
	if s.Status != model.Unauthenticated || !strings.Contains(s.Error, f.server.URL) {
		t.Errorf("error should mention %s, got %q", f.server.URL, s.Error)
	}
}

func TestProfileFailureClearsToken(t *testing.T) {
	f := setup(t)
	f.fake.SetInlineUser(false)
	f.fake.Fail("/api/v1/users/me", 500, "")

	if err := f.mgr.Login(context.Background(), fakeapi.AdminEmail, fakeapi.AdminPassword); err == nil {
		t.Fatal("expected login to fail when the profile cannot be fetched")
	}
	if tok := f.token(t); tok != "" {
		t.Errorf("token must not outlive a failed login, got %q", tok)
	}
	if s := f.mgr.Session(); s.Status != model.Unauthenticated || s.Error == "" {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestLoginSequenceInvariant(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	attempts := []struct{ id, secret string }{
		{fakeapi.AdminEmail, "bad"},
		{fakeapi.AdminEmail, fakeapi.AdminPassword},
		{fakeapi.AnalystEmail, "bad"},
		{fakeapi.AnalystEmail, fakeapi.AnalystPassword},
	}
	for _, a := range attempts {
		_ = f.mgr.Login(ctx, a.id, a.secret)
		s := f.mgr.Session()
		tok := f.token(t)
		switch s.Status {
		case model.Authenticated:
			if tok == "" {
				t.Fatalf("authenticated without a token after %s", a.id)
			}
		case model.Unauthenticated:
			if tok != "" || s.Error == "" {
				t.Fatalf("logged out state must carry an error and no token: %+v tok=%q", s, tok)
			}
		default:
			t.Fatalf("login left session in %s", s.Status)
		}
	}
}

func TestConcurrentLoginsSettle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pw := fakeapi.AdminPassword
			if i%2 == 1 {
				pw = "bad"
			}
			_ = f.mgr.Login(ctx, fakeapi.AdminEmail, pw)
		}(i)
	}
	wg.Wait()

	s := f.mgr.Session()
	tok := f.token(t)
	if (s.Status == model.Authenticated) != (tok != "") {
		t.Fatalf("token stored iff authenticated violated: %+v tok=%q", s, tok)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	if err := f.mgr.Login(ctx, fakeapi.AdminEmail, fakeapi.AdminPassword); err != nil {
		t.Fatal(err)
	}

	var notified int
	unsub := f.mgr.Subscribe(func(model.Session) { notified++ })
	defer unsub()

	f.mgr.Logout(ctx)
	once := f.mgr.Session()
	f.mgr.Logout(ctx)
	twice := f.mgr.Session()

	if once.Status != model.Unauthenticated || twice != once {
		t.Errorf("logout twice differs from once: %+v vs %+v", once, twice)
	}
	if notified != 1 {
		t.Errorf("subscribers notified %d times, want 1", notified)
	}
	if tok := f.token(t); tok != "" {
		t.Errorf("token left after logout: %q", tok)
	}
	routes := f.nav.all()
	if routes[len(routes)-1] != RouteLogin {
		t.Errorf("last route = %s, want login", routes[len(routes)-1])
	}
}

func TestCheckAuth(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.mgr.CheckAuth(ctx)
	if s := f.mgr.Session(); s.Status != model.Unauthenticated || s.Error != "" {
		t.Fatalf("no token: %+v", s)
	}

	_ = f.store.Set(ctx, f.fake.IssueToken(fakeapi.AnalystEmail))
	f.mgr.CheckAuth(ctx)
	if s := f.mgr.Session(); !s.IsAuthenticated() || s.User.Email != fakeapi.AnalystEmail {
		t.Fatalf("valid token: %+v", s)
	}

	_ = f.store.Set(ctx, "revoked")
	f.mgr.CheckAuth(ctx)
	if s := f.mgr.Session(); s.Status != model.Unauthenticated {
		t.Fatalf("invalid token: %+v", s)
	}
	if tok := f.token(t); tok != "" {
		t.Errorf("invalid token should be cleared, got %q", tok)
	}
}

func TestPollExpiryRedirectsWithoutLogout(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	if err := f.mgr.Login(ctx, fakeapi.AdminEmail, fakeapi.AdminPassword); err != nil {
		t.Fatal(err)
	}
	if d := guard.Evaluate(f.mgr.Session(), guard.Protected); d != guard.Admit {
		t.Fatalf("before expiry: %s", d)
	}

	f.fake.RevokeAll()
	if _, err := f.client.FileActivities(ctx, nil); !errors.Is(err, api.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	if tok := f.token(t); tok != "" {
		t.Errorf("token survived a 401: %q", tok)
	}
	if d := guard.Evaluate(f.mgr.Session(), guard.Protected); d != guard.RedirectLogin {
		t.Errorf("after expiry: %s, want redirect-login", d)
	}
	if s := f.mgr.Session(); s.Error != "" {
		t.Errorf("expiry should not set an error, got %q", s.Error)
	}
	routes := f.nav.all()
	if routes[len(routes)-1] != RouteLogin {
		t.Errorf("expected navigation to login, got %v", routes)
	}
}

func TestExpireWhenLoggedOutDoesNotNavigate(t *testing.T) {
	f := setup(t)
	f.mgr.CheckAuth(context.Background())
	f.mgr.Expire()
	if routes := f.nav.all(); len(routes) != 0 {
		t.Errorf("unexpected navigation %v", routes)
	}
}

func TestReissuedTokenExpiresOnEveryLogin(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for round := 1; round <= 2; round++ {
		f.fake.QueueToken("abc")
		if err := f.mgr.Login(ctx, fakeapi.AdminEmail, fakeapi.AdminPassword); err != nil {
			t.Fatalf("round %d: Login: %v", round, err)
		}
		if tok := f.token(t); tok != "abc" {
			t.Fatalf("round %d: stored token %q, want abc", round, tok)
		}

		f.fake.RevokeAll()
		if _, err := f.client.FileActivities(ctx, nil); !errors.Is(err, api.ErrSessionExpired) {
			t.Fatalf("round %d: expected ErrSessionExpired, got %v", round, err)
		}
		if tok := f.token(t); tok != "" {
			t.Errorf("round %d: token survived a 401: %q", round, tok)
		}
		if s := f.mgr.Session(); s.Status != model.Unauthenticated {
			t.Errorf("round %d: status = %v, want unauthenticated", round, s.Status)
		}
		if d := guard.Evaluate(f.mgr.Session(), guard.Protected); d != guard.RedirectLogin {
			t.Errorf("round %d: guard = %s, want redirect-login", round, d)
		}
	}
}
