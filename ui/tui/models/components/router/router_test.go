// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/ui/tui/util"
)

type page struct {
	name      string
	controll  *Controll
	size      util.Size
	focused   bool
	unmounted bool
}

func (p *page) Init() tea.Cmd { return nil }
func (p *page) Update(msg tea.Msg) tea.Cmd {
	if p.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(InitMsg); ok {
		c := msg.Controll
		p.controll = &c
	}
	return nil
}
func (p *page) View() string                  { return p.name }
func (p *page) Focus() (tea.Cmd, help.KeyMap) { p.focused = true; return nil, nil }
func (p *page) Blur()                         { p.focused = false }
func (p *page) Unmount()                      { p.unmounted = true }

func TestChangeUnmountsPrevious(t *testing.T) {
	first := &page{name: "first"}
	r, ctl := New(util.ModelPointer(first))
	r.Init()
	r.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	r.Focus()
	if first.controll == nil {
		t.Fatal("mounted model did not receive its controll")
	}

	second := &page{name: "second"}
	r.Update(ctl.Change(util.ModelPointer(second))())

	if !first.unmounted || first.focused {
		t.Fatal("replaced model must be blurred and unmounted")
	}
	if r.View() != "second" || second.size.Width != 30 || !second.focused {
		t.Fatalf("second not mounted properly: view=%q size=%+v focused=%v", r.View(), second.size, second.focused)
	}
}

func TestPushPop(t *testing.T) {
	base := &page{name: "base"}
	r, ctl := New(util.ModelPointer(base))
	r.Init()
	r.Focus()

	detail := &page{name: "detail"}
	r.Update(ctl.Push(util.ModelPointer(detail))())
	if r.Depth() != 2 || r.View() != "detail" || base.focused {
		t.Fatalf("push failed: depth=%d view=%q", r.Depth(), r.View())
	}

	r.Update(ctl.Pop(5)())
	if r.Depth() != 1 || !detail.unmounted || !base.focused || base.unmounted {
		t.Fatalf("pop failed: depth=%d", r.Depth())
	}
}

func TestForeignRouterMessagesPassThrough(t *testing.T) {
	inner := &page{name: "inner"}
	r, _ := New(util.ModelPointer(inner))
	_, other := New(util.ModelPointer(&page{}))

	// a push for another router is forwarded, not applied here
	r.Update(other.Push(util.ModelPointer(&page{name: "x"}))())
	if r.Depth() != 1 {
		t.Fatal("foreign push must not change this router")
	}
}
