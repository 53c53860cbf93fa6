// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keys []key.Binding

func (k keys) ShortHelp() []key.Binding  { return k }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestMergeKeyMapsSkipsNil(t *testing.T) {
	a := keys{key.NewBinding(key.WithKeys("a"))}
	b := keys{key.NewBinding(key.WithKeys("b")), key.NewBinding(key.WithKeys("c"))}

	merged := MergeKeyMaps(a, nil, b)
	if got := len(merged.ShortHelp()); got != 3 {
		t.Fatalf("expected 3 short bindings, got %d", got)
	}
	if got := len(merged.FullHelp()); got != 2 {
		t.Fatalf("expected 2 groups, got %d", got)
	}
}

func TestBridgeDropsUntilAttached(t *testing.T) {
	b := NewBridge()
	b.Post("lost")

	got := make(chan tea.Msg, 1)
	b.Attach(SenderFunc(func(msg tea.Msg) { got <- msg }))
	b.Post("hello")

	select {
	case msg := <-got:
		if msg != "hello" {
			t.Fatalf("unexpected message %v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestSizeUpdate(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatal("key message must not resize")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) || s.Width != 80 || s.Height != 24 {
		t.Fatalf("unexpected size %+v", s)
	}
	if Clamp(0, 12, 10) != 10 || Clamp(5, 1, 10) != 5 {
		t.Fatal("clamp out of range")
	}
}
