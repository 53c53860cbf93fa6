// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/ui/tui/models/helpers/form"
)

// Toggle is a boolean checkbox.
type Toggle struct {
	Label  string
	KeyMap ToggleKeyMap

	initial bool
	value   bool
	focused bool
}

type ToggleKeyMap struct {
	Toggle key.Binding
}

func (k ToggleKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Toggle} }

func (k ToggleKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Toggle}} }

func NewToggle(label string, initial bool) *Toggle {
	return &Toggle{
		Label: label,
		KeyMap: ToggleKeyMap{
			Toggle: key.NewBinding(
				key.WithKeys(" ", "x"),
				key.WithHelp("space", "toggle"),
			),
		},
		initial: initial,
		value:   initial,
	}
}

func (t *Toggle) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return nil, t.KeyMap
}

func (t *Toggle) Blur() { t.focused = false }

func (t *Toggle) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, t.KeyMap.Toggle):
			t.value = !t.value
		case msg.Type == tea.KeyEnter:
			return nil, form.ActionNext
		}
	}
	return nil, form.ActionNone
}

func (t *Toggle) View(width int) string {
	box := "[ ] "
	if t.value {
		box = "[x] "
	}
	style := labelStyle
	if t.focused {
		style = focusedStyle
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(style.Render(box + t.Label))
}

func (t *Toggle) Get() any      { return t.value }
func (t *Toggle) Init() tea.Cmd { return nil }
func (t *Toggle) Reset()        { t.value = t.initial }
func (t *Toggle) Set(v any) {
	if b, ok := v.(bool); ok {
		t.value = b
	}
}

var _ form.FormInput = (*Toggle)(nil)
