// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package envtest builds view environments against the fake backend.
package envtest // import "github.com/secwatch/console/ui/tui/models/views/env/envtest"

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/internal/app"
	"github.com/secwatch/console/internal/config"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/testutil/fakeapi"
	"github.com/secwatch/console/internal/tokenstore"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/util"
)

// Harness is an Env wired to a fake backend, with every posted message
// captured in Msgs.
type Harness struct {
	Env  *env.Env
	Fake *fakeapi.Server
	Msgs chan tea.Msg
}

// New starts a fake backend and an App talking to it. Intervals of zero
// keep the views in manual mode so tests decide when data is fetched.
func New(t testing.TB, poll config.PollConfig) *Harness {
	t.Helper()
	i18n.Init("en")
	fake, ts := fakeapi.Start(t)

	cfg := config.Config{
		API:   config.APIConfig{BaseURL: ts.URL, Timeout: 2 * time.Second},
		Token: config.TokenConfig{Store: "memory"},
		Poll:  poll,
	}
	a := app.NewWithStore(cfg, tokenstore.NewMemoryStore())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := &Harness{
		Env:  &env.Env{Ctx: ctx, App: a, Bridge: util.NewBridge()},
		Fake: fake,
		Msgs: make(chan tea.Msg, 256),
	}
	h.Env.Bridge.Attach(util.SenderFunc(func(msg tea.Msg) {
		select {
		case h.Msgs <- msg:
		default:
		}
	}))
	return h
}

// Login signs in with the admin (or analyst) account.
func (h *Harness) Login(t testing.TB, admin bool) {
	t.Helper()
	email, password := fakeapi.AnalystEmail, fakeapi.AnalystPassword
	if admin {
		email, password = fakeapi.AdminEmail, fakeapi.AdminPassword
	}
	if err := h.Env.App.Session.Login(context.Background(), email, password); err != nil {
		t.Fatalf("login: %v", err)
	}
}

// Await feeds posted messages into m until cond holds or the deadline passes.
func (h *Harness) Await(t testing.TB, m util.Model, cond func() bool) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for !cond() {
		select {
		case msg := <-h.Msgs:
			m.Update(msg)
		case <-deadline:
			t.Fatal("condition not reached in time")
		}
	}
}
