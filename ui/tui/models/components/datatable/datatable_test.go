// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package datatable

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRowsAndCursor(t *testing.T) {
	m := New(Column{Title: "ID", Weight: 1}, Column{Title: "Message", Weight: 4})
	if m.Cursor() != -1 {
		t.Fatal("empty table must report no cursor")
	}
	m.SetSize(60, 6)
	m.SetRows([][]string{{"1", "first"}, {"2", "second"}, {"3", "third"}})
	m.Focus()

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", m.Cursor())
	}

	m.SetRows([][]string{{"1", "only"}})
	if m.Cursor() != 0 {
		t.Fatalf("cursor not clamped, got %d", m.Cursor())
	}
	if !strings.Contains(m.View(), "only") {
		t.Fatalf("row not rendered: %q", m.View())
	}
}
