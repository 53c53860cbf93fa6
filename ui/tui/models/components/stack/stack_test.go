// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/ui/tui/util"
)

type probe struct {
	size    util.Size
	keys    int
	focused bool
}

func (p *probe) Init() tea.Cmd { return nil }
func (p *probe) Update(msg tea.Msg) tea.Cmd {
	if !p.size.Update(msg) {
		if _, ok := msg.(tea.KeyMsg); ok {
			p.keys++
		}
	}
	return nil
}
func (p *probe) View() string                  { return "x" }
func (p *probe) Focus() (tea.Cmd, help.KeyMap) { p.focused = true; return nil, nil }
func (p *probe) Blur()                         { p.focused = false }

func TestSizesAndKeyRouting(t *testing.T) {
	fixed, grow := &probe{}, &probe{}
	s := New(
		WithOrientation(Vertical),
		WithFocus(FocusIndex(1)),
		WithItem(util.ModelPointer(fixed), StaticSize(3)),
		WithItem(util.ModelPointer(grow), VariableSize(1)),
	)

	s.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if fixed.size.Height != 3 || grow.size.Height != 17 {
		t.Fatalf("unexpected heights %d/%d", fixed.size.Height, grow.size.Height)
	}
	if grow.size.Width != 40 {
		t.Fatalf("expected full width, got %d", grow.size.Width)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if fixed.keys != 0 || grow.keys != 1 {
		t.Fatalf("keys must reach only the focused item: %d/%d", fixed.keys, grow.keys)
	}

	s.SetFocus(FocusIndex(0))
	if !fixed.focused || grow.focused {
		t.Fatal("focus did not move")
	}
}

func TestVariableWeights(t *testing.T) {
	a, b := &probe{}, &probe{}
	s := New(
		WithItem(util.ModelPointer(a), VariableSize(1)),
		WithItem(util.ModelPointer(b), VariableSize(3)),
	)
	s.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if a.size.Width != 20 || b.size.Width != 60 {
		t.Fatalf("unexpected widths %d/%d", a.size.Width, b.size.Width)
	}
}
