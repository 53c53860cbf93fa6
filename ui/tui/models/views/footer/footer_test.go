// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/ui/tui/util"
)

type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func TestMergesBaseKeysAndExpiresStatus(t *testing.T) {
	base := bindings{key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit"))}
	m := New(base)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: bindings{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}})
	v := m.View()
	if !strings.Contains(v, "refresh") || !strings.Contains(v, "exit") {
		t.Fatalf("expected merged help, got %q", v)
	}

	if cmd := m.Update(Error(errors.New("boom"))()); cmd == nil {
		t.Fatal("status must schedule its own expiry")
	}
	if !m.Status().Error || !strings.Contains(m.View(), "boom") {
		t.Fatal("error status not shown")
	}

	m.Update(Status("saved")())
	// expiry of the first message must not clear the second
	m.Update(clearStatusMsg{seq: 1})
	if m.Status().Text != "saved" {
		t.Fatal("stale expiry cleared a newer status")
	}
	m.Update(clearStatusMsg{seq: 2})
	if m.Status().Text != "" {
		t.Fatal("status did not expire")
	}
}
