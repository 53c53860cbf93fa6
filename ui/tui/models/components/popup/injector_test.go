// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/ui/tui/util"
)

type box struct {
	text    string
	keys    int
	others  int
	focused bool
}

func (b *box) Init() tea.Cmd { return nil }
func (b *box) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case tea.KeyMsg:
		b.keys++
	case tea.WindowSizeMsg:
	default:
		b.others++
	}
	return nil
}
func (b *box) View() string                  { return b.text }
func (b *box) Focus() (tea.Cmd, help.KeyMap) { b.focused = true; return nil, nil }
func (b *box) Blur()                         { b.focused = false }

func TestPopupCapturesKeysButChildKeepsUpdating(t *testing.T) {
	child := &box{text: strings.Repeat(strings.Repeat(".", 20)+"\n", 5) + strings.Repeat(".", 20)}
	inj := NewInjector(util.ModelPointer(child))
	inj.Update(tea.WindowSizeMsg{Width: 20, Height: 6})
	inj.Focus()

	dialog := &box{text: "hi"}
	closed := false
	inj.Update(OpenWithCallback(util.ModelPointer(dialog), func(*util.Model) tea.Cmd {
		closed = true
		return nil
	})())
	if !inj.IsOpen() || child.focused || !dialog.focused {
		t.Fatal("popup did not take focus")
	}

	inj.Update(tea.KeyMsg{Type: tea.KeyEnter})
	inj.Update("tick")
	if dialog.keys != 1 || child.keys != 0 {
		t.Fatalf("keys leaked: dialog=%d child=%d", dialog.keys, child.keys)
	}
	if child.others != 1 {
		t.Fatal("child must keep receiving non-key messages")
	}
	if !strings.Contains(inj.View(), "hi") {
		t.Fatal("popup not rendered")
	}

	inj.Update(Close()())
	if inj.IsOpen() || !closed || !child.focused {
		t.Fatal("close did not restore the child")
	}
}
