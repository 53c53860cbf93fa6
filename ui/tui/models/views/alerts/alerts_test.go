// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package alerts

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/internal/config"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/ui/tui/models/components/router"
	"github.com/secwatch/console/ui/tui/models/views/env/envtest"
	"github.com/secwatch/console/ui/tui/models/views/footer"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func seeded(t *testing.T) (*envtest.Harness, *Model) {
	t.Helper()
	h := envtest.New(t, config.PollConfig{})
	h.Login(t, false)
	now := time.Now()
	h.Fake.SeedAlerts(
		model.Alert{ID: 1, Type: "brute_force", Severity: model.SeverityCritical, Message: "many failed logins", Timestamp: now},
		model.Alert{ID: 2, Type: "new_location", Severity: model.SeverityLow, Message: "login from new country", Timestamp: now},
	)
	m := New(h.Env)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	m.Init()
	m.Focus()
	t.Cleanup(m.Unmount)
	h.Await(t, m, func() bool { return len(m.state.Data) == 2 })
	return h, m
}

func TestListsAlerts(t *testing.T) {
	_, m := seeded(t)
	v := m.View()
	for _, want := range []string{"many failed logins", "login from new country", "brute_force"} {
		if !strings.Contains(v, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestSeverityFilterIsSentToBackend(t *testing.T) {
	h, m := seeded(t)
	m.Update(keyMsg("s"))
	if got := m.list.Criteria().Get("severity"); got != model.SeverityLow {
		t.Fatalf("severity filter = %q, want %q", got, model.SeverityLow)
	}
	h.Await(t, m, func() bool { return len(m.state.Data) == 1 })
	reqs := h.Fake.RequestsTo("/api/v1/activities/alerts")
	if last := reqs[len(reqs)-1]; last.Query.Get("severity") != model.SeverityLow {
		t.Fatalf("last query = %v", last.Query)
	}

	m.Update(keyMsg("c"))
	if !m.list.Criteria().IsEmpty() {
		t.Fatal("clear kept filters")
	}
}

func TestResolveMarksAlert(t *testing.T) {
	h, m := seeded(t)
	msg := resolve(m.env, m.list, 1)()
	cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("expected a status command")
	}
	if st, ok := cmd().(footer.StatusMsg); !ok || st.Error {
		t.Fatalf("unexpected status %#v", st)
	}
	if a, _ := h.Fake.Alert(1); !a.Resolved {
		t.Fatal("alert not resolved on the backend")
	}
	h.Await(t, m, func() bool { return m.state.Data[0].Resolved })
}

func TestResolveUnknownAlertReportsError(t *testing.T) {
	_, m := seeded(t)
	cmd := m.Update(resolve(m.env, m.list, 99)())
	if st, ok := cmd().(footer.StatusMsg); !ok || !st.Error {
		t.Fatalf("expected an error status, got %#v", st)
	}
}

func TestEnterPushesDetail(t *testing.T) {
	_, m := seeded(t)
	cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("no command")
	}
	push, ok := cmd().(router.PushMsg)
	if !ok {
		t.Fatal("expected a router push")
	}
	if v := (*push.Model).View(); !strings.Contains(v, "Alert #1") {
		t.Fatalf("detail view does not show the alert:\n%s", v)
	}
}

func TestCopyUsesClipboard(t *testing.T) {
	_, m := seeded(t)
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	m.Update(keyMsg("y"))
	if !strings.Contains(copied, "Alert #1 [critical] brute_force") {
		t.Fatalf("clipboard got %q", copied)
	}
}
