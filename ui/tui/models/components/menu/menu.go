// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package menu renders a nested navigation menu.
package menu // import "github.com/secwatch/console/ui/tui/models/components/menu"

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/ui/tui/util"
	"github.com/secwatch/console/util/slicest"
)

type Model struct {
	Items       []Item
	ActiveStack []int
	size        util.Size
	focused     bool
}

func New(items ...Item) *Model {
	return &Model{
		Items:       items,
		ActiveStack: []int{0},
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)

	if m.focused {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, DefaultKeyMap.Up):
				m.up()
			case key.Matches(msg, DefaultKeyMap.Down):
				m.down()
			case key.Matches(msg, DefaultKeyMap.Left):
				m.left()
			case key.Matches(msg, DefaultKeyMap.Right):
				return m.right()
			}
		}
	}
	return nil
}

func (m *Model) view() string {
	view := renderItems(m.Items, m.ActiveStack)

	// scroll so the active item stays visible
	height := lipgloss.Height(view)
	if m.size.Height > 0 && height > m.size.Height {
		align := float64(slicest.Reduce(m.ActiveStack, func(i int, sum int) int { return sum + i + 1 })) / float64(height)
		lines := strings.Split(view, "\n")
		i := int(float64(height-m.size.Height) * align)
		view = strings.Join(lines[i:i+m.size.Height], "\n")
	}
	return view
}

func (m *Model) View() string {
	return lipgloss.
		NewStyle().
		MaxWidth(m.size.Width).
		MaxHeight(m.size.Height).
		Margin(0, 1).
		Render(m.view())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap
}
func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// SetItems replaces the menu, keeping the selection on id when it still exists.
func (m *Model) SetItems(id string, items ...Item) {
	m.Items = items
	m.ActiveStack = []int{0}
	m.Select(id)
}

// Select moves the cursor to the item with id.
func (m *Model) Select(id string) bool {
	p := path(m.Items, id)
	if p == nil {
		return false
	}
	m.ActiveStack = slices.Clone(p)
	return true
}

// Selected returns the id under the cursor.
func (m *Model) Selected() string {
	stack := m.getActiveItemStack()
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1].Id
}
