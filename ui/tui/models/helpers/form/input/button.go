// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/ui/tui/models/helpers/form"
)

type Button struct {
	Label    string
	Disabled bool
	KeyMap   ButtonKeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type ButtonKeyMap struct {
	Click key.Binding
}

func (k ButtonKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k ButtonKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

func NewButton(label string) *Button {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Foreground(lipgloss.Color("240"))
	return &Button{
		Label: label,
		KeyMap: ButtonKeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", strings.ToLower(label)),
			),
		},
		DisabledStyle: base.Faint(true),
		BlurredStyle:  base,
		FocusedStyle: base.
			BorderForeground(lipgloss.Color("#D9534F")).
			Bold(true),
	}
}

func (b *Button) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	return nil, b.KeyMap
}

func (b *Button) Blur() {
	b.focused = false
}

func (b *Button) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && !b.Disabled && key.Matches(msg, b.KeyMap.Click) {
		return nil, form.ActionSubmit
	}
	return nil, form.ActionNone
}

func (b *Button) View(width int) string {
	style := b.BlurredStyle
	switch {
	case b.Disabled:
		style = b.DisabledStyle
	case b.focused:
		style = b.FocusedStyle
	}
	return style.MaxWidth(width - 2).Render(b.Label)
}

// buttons carry no value
func (b *Button) Get() any      { return nil }
func (b *Button) Init() tea.Cmd { return nil }
func (b *Button) Reset()        {}
func (b *Button) Set(any)       {}

var _ form.FormInput = (*Button)(nil)
