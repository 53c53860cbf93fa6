// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/testutil/fakeapi"
	"github.com/secwatch/console/internal/tokenstore"
)

func newClient(t *testing.T) (*Client, *fakeapi.Server, tokenstore.Store) {
	t.Helper()
	fake, ts := fakeapi.Start(t)
	store := tokenstore.NewMemoryStore()
	return New(ts.URL, store), fake, store
}

func TestAuthenticatedRequestCarriesHeaders(t *testing.T) {
	c, fake, store := newClient(t)
	ctx := context.Background()
	tok := fake.IssueToken(fakeapi.AdminEmail)
	_ = store.Set(ctx, tok)

	if _, err := c.Dashboard(ctx); err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	reqs := fake.RequestsTo("/api/v1/dashboard")
	if len(reqs) != 1 {
		t.Fatalf("expected 1 dashboard request, got %d", len(reqs))
	}
	if reqs[0].Authorization != "Bearer "+tok {
		t.Errorf("Authorization = %q", reqs[0].Authorization)
	}
	if reqs[0].RequestID == "" {
		t.Error("missing X-Request-ID")
	}
	if reqs[0].ContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json on a bodiless GET", reqs[0].ContentType)
	}
}

func TestTokenIsReadPerCall(t *testing.T) {
	c, fake, store := newClient(t)
	ctx := context.Background()
	first := fake.IssueToken(fakeapi.AdminEmail)
	second := fake.IssueToken(fakeapi.AdminEmail)

	_ = store.Set(ctx, first)
	_, _ = c.Me(ctx)
	_ = store.Set(ctx, second)
	_, _ = c.Me(ctx)

	reqs := fake.RequestsTo("/api/v1/users/me")
	if len(reqs) != 2 || reqs[0].Authorization != "Bearer "+first || reqs[1].Authorization != "Bearer "+second {
		t.Fatalf("token not re-read per call: %+v", reqs)
	}
}

func TestLoginIsFormEncoded(t *testing.T) {
	c, fake, _ := newClient(t)
	fake.QueueToken("abc")

	resp, err := c.Login(context.Background(), fakeapi.AdminEmail, fakeapi.AdminPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken != "abc" || resp.User == nil || !resp.User.IsAdmin {
		t.Errorf("unexpected login response: %+v", resp)
	}
	reqs := fake.RequestsTo("/api/v1/login")
	if len(reqs) != 1 || reqs[0].ContentType != "application/x-www-form-urlencoded" {
		t.Fatalf("login request not form-encoded: %+v", reqs)
	}
	if reqs[0].Authorization != "" {
		t.Errorf("login must not carry a bearer token, got %q", reqs[0].Authorization)
	}
}

func TestLogin401IsRejectionNotExpiry(t *testing.T) {
	c, _, _ := newClient(t)
	var fired atomic.Int32
	c.OnSessionExpired(func() { fired.Add(1) })

	_, err := c.Login(context.Background(), fakeapi.AdminEmail, "wrong")
	var rr *RequestRejected
	if !errors.As(err, &rr) {
		t.Fatalf("expected RequestRejected, got %T %v", err, err)
	}
	if rr.Status != http.StatusUnauthorized || rr.Detail != "Incorrect username or password" {
		t.Errorf("unexpected rejection: %+v", rr)
	}
	if fired.Load() != 0 {
		t.Error("login failure must not fire the expiry hook")
	}
}

func TestUnauthorizedClearsStoreAndFiresOnce(t *testing.T) {
	c, fake, store := newClient(t)
	ctx := context.Background()
	_ = store.Set(ctx, fake.IssueToken(fakeapi.AdminEmail))
	fake.RevokeAll()

	var fired atomic.Int32
	c.OnSessionExpired(func() { fired.Add(1) })

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Alerts(ctx, nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if !errors.Is(err, ErrSessionExpired) {
			t.Errorf("request %d: expected ErrSessionExpired, got %v", i, err)
		}
	}
	if got, _ := store.Get(ctx); got != "" {
		t.Errorf("store not cleared: %q", got)
	}
	if n := fired.Load(); n != 1 {
		t.Errorf("expiry hook fired %d times, want 1", n)
	}
}

func TestReissuedTokenExpiresAgain(t *testing.T) {
	c, fake, store := newClient(t)
	ctx := context.Background()
	var fired atomic.Int32
	c.OnSessionExpired(func() { fired.Add(1) })

	for round := 1; round <= 2; round++ {
		fake.QueueToken("abc")
		resp, err := c.Login(ctx, fakeapi.AdminEmail, fakeapi.AdminPassword)
		if err != nil {
			t.Fatalf("round %d: Login: %v", round, err)
		}
		_ = store.Set(ctx, resp.AccessToken)
		fake.RevokeAll()

		if _, err := c.FileActivities(ctx, nil); !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("round %d: expected ErrSessionExpired, got %v", round, err)
		}
		if got, _ := store.Get(ctx); got != "" {
			t.Fatalf("round %d: token %q survived a 401", round, got)
		}
		if n := fired.Load(); n != int32(round) {
			t.Fatalf("round %d: expiry hook fired %d times", round, n)
		}
	}
}

func TestStale401DoesNotClearNewerToken(t *testing.T) {
	c, fake, store := newClient(t)
	ctx := context.Background()
	old := fake.IssueToken(fakeapi.AdminEmail)
	_ = store.Set(ctx, old)

	held := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	fake.Before(func(r *http.Request) {
		if r.URL.Path == "/api/v1/dashboard" {
			once.Do(func() { close(held) })
			<-release
		}
	})

	var fired atomic.Int32
	c.OnSessionExpired(func() { fired.Add(1) })

	done := make(chan error, 1)
	go func() {
		_, err := c.Dashboard(ctx)
		done <- err
	}()

	<-held
	fresh := fake.IssueToken(fakeapi.AdminEmail)
	_ = store.Set(ctx, fresh)
	fake.Revoke(old)
	close(release)

	if err := <-done; !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if got, _ := store.Get(ctx); got != fresh {
		t.Errorf("newer token was cleared: store holds %q", got)
	}
	if fired.Load() != 0 {
		t.Error("stale 401 must not fire the expiry hook")
	}
}

func TestErrorMapping(t *testing.T) {
	c, fake, store := newClient(t)
	ctx := context.Background()
	_ = store.Set(ctx, fake.IssueToken(fakeapi.AdminEmail))

	fake.Fail("/api/v1/dashboard", http.StatusBadRequest, "bad filter")
	_, err := c.Dashboard(ctx)
	var rr *RequestRejected
	if !errors.As(err, &rr) || rr.Detail != "bad filter" || rr.Status != 400 {
		t.Errorf("expected RequestRejected{400, bad filter}, got %v", err)
	}

	fake.Fail("/api/v1/dashboard", http.StatusInternalServerError, "")
	_, err = c.Dashboard(ctx)
	var rf *RequestFailed
	if !errors.As(err, &rf) {
		t.Fatalf("expected RequestFailed, got %T %v", err, err)
	}
	if err.Error() != "500 Internal Server Error" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if StatusCode(err) != 500 {
		t.Errorf("StatusCode = %d", StatusCode(err))
	}
}

func TestValidationDetailIsJoined(t *testing.T) {
	c, fake, store := newClient(t)
	ctx := context.Background()
	_ = store.Set(ctx, fake.IssueToken(fakeapi.AdminEmail))

	_, err := c.CreateUser(ctx, model.UserCreate{})
	var rr *RequestRejected
	if !errors.As(err, &rr) {
		t.Fatalf("expected RequestRejected, got %v", err)
	}
	if rr.Status != http.StatusUnprocessableEntity || rr.Detail != "email: field required" {
		t.Errorf("unexpected validation detail: %+v", rr)
	}
}

func TestParseDetail(t *testing.T) {
	cases := map[string]string{
		`{"detail":"nope"}`: "nope",
		`{"detail":[{"loc":["body","email"],"msg":"field required"},{"loc":["body"],"msg":"bad"}]}`: "email: field required; bad",
		`{"other":1}`: "",
		`not json`:    "",
	}
	for in, want := range cases {
		if got := parseDetail([]byte(in)); got != want {
			t.Errorf("parseDetail(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestNoContentLeavesOutUntouched(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()
	c := New(ts.URL, tokenstore.NewMemoryStore())

	out := map[string]string{"kept": "yes"}
	if err := c.Do(context.Background(), http.MethodDelete, "/users/1", nil, nil, &out); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if out["kept"] != "yes" {
		t.Errorf("out modified on 204: %v", out)
	}
}

func TestNetworkUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	c := New(base, tokenstore.NewMemoryStore(), WithTimeout(time.Second))
	_, err := c.Health(context.Background())
	var nu *NetworkUnreachable
	if !errors.As(err, &nu) {
		t.Fatalf("expected NetworkUnreachable, got %T %v", err, err)
	}
	if nu.BaseURL != base {
		t.Errorf("BaseURL = %q, want %q", nu.BaseURL, base)
	}
}

func TestResolveAlertAndQuery(t *testing.T) {
	c, fake, store := newClient(t)
	ctx := context.Background()
	_ = store.Set(ctx, fake.IssueToken(fakeapi.AdminEmail))
	fake.SeedAlerts(
		model.Alert{ID: 1, Severity: model.SeverityCritical},
		model.Alert{ID: 2, Severity: model.SeverityLow},
	)

	got, err := c.Alerts(ctx, url.Values{"severity": {"critical"}})
	if err != nil || len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("Alerts(critical) = %+v, %v", got, err)
	}
	if err := c.ResolveAlert(ctx, 1); err != nil {
		t.Fatalf("ResolveAlert: %v", err)
	}
	if a, _ := fake.Alert(1); !a.Resolved {
		t.Error("alert 1 not resolved")
	}
	reqs := fake.RequestsTo("/api/v1/activities/alerts/1")
	if len(reqs) != 1 || reqs[0].Method != http.MethodPut || reqs[0].ContentType != "application/json" {
		t.Errorf("unexpected resolve request: %+v", reqs)
	}
}

func TestRateLimitHonoursContext(t *testing.T) {
	c, _, _ := newClient(t)
	WithRateLimit(0.001, 1)(c)

	ctx := context.Background()
	if _, err := c.Health(ctx); err != nil {
		t.Fatalf("first request should pass the burst: %v", err)
	}
	cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	if _, err := c.Health(cctx); err == nil {
		t.Fatal("expected the limiter to refuse a request it cannot serve before the deadline")
	}
}
