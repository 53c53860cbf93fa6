// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package users

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/internal/config"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/testutil/fakeapi"
	"github.com/secwatch/console/ui/tui/models/views/env/envtest"
	"github.com/secwatch/console/ui/tui/models/views/footer"
	"github.com/secwatch/console/ui/tui/util"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func loaded(t *testing.T) (*envtest.Harness, *Model) {
	t.Helper()
	h := envtest.New(t, config.PollConfig{})
	h.Login(t, true)
	m := New(h.Env)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	m.Init()
	m.Focus()
	t.Cleanup(m.Unmount)
	h.Await(t, m, func() bool { return len(m.state.Data) == 2 })
	return h, m
}

func TestToggleAdmin(t *testing.T) {
	h, m := loaded(t)
	// second row is the analyst
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	cmd := m.Update(runes("a"))
	if cmd == nil {
		t.Fatal("no update command")
	}
	st, ok := m.Update(cmd())().(footer.StatusMsg)
	if !ok || st.Error {
		t.Fatalf("unexpected status %#v", st)
	}
	h.Await(t, m, func() bool { return m.state.Data[1].IsAdmin })
	if m.state.Data[1].Email != fakeapi.AnalystEmail {
		t.Fatalf("toggled %s", m.state.Data[1].Email)
	}
}

func TestDeleteSelfIsRefused(t *testing.T) {
	_, m := loaded(t)
	cmd := m.Update(runes("d"))
	st, ok := cmd().(footer.StatusMsg)
	if !ok || st.Text == "" {
		t.Fatalf("expected a refusal, got %#v", cmd())
	}
}

func TestCreateDialog(t *testing.T) {
	h, m := loaded(t)
	d := newCreateDialog(m.env, m.list)

	if cmd := d.submit(createInput{Email: "new@example.com"}); cmd != nil || d.message == "" {
		t.Fatal("submitted without a password")
	}

	cmd := d.submit(createInput{Email: " new@example.com ", Password: "s3cret", IsActive: true})
	msg := cmd().(createdMsg)
	if msg.err != nil {
		t.Fatalf("create: %v", msg.err)
	}
	if msg.user.Email != "new@example.com" {
		t.Fatalf("created %+v", msg.user)
	}
	if d.Update(msg) == nil {
		t.Fatal("dialog did not close after success")
	}
	if st, ok := afterCreate(util.ModelPointer(d))().(footer.StatusMsg); !ok || st.Error {
		t.Fatalf("expected a created status, got %#v", st)
	}
	h.Await(t, m, func() bool { return len(m.state.Data) == 3 })

	dup := d.submit(createInput{Email: "new@example.com", Password: "x"})
	d.Update(dup())
	if d.message != "create user new@example.com: Email already registered" {
		t.Fatalf("message = %q", d.message)
	}
}

func TestDeleteUser(t *testing.T) {
	h, m := loaded(t)
	msg := remove(m.env, m.list, model.UserProfile{ID: 2, Email: fakeapi.AnalystEmail})()
	if st := m.Update(msg)().(footer.StatusMsg); st.Error {
		t.Fatalf("delete failed: %s", st.Text)
	}
	h.Await(t, m, func() bool { return len(m.state.Data) == 1 })
}
