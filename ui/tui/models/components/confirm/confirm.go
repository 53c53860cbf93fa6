// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package confirm is a yes/no popup.
package confirm // import "github.com/secwatch/console/ui/tui/models/components/confirm"

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/ui/tui/models/components/popup"
	"github.com/secwatch/console/ui/tui/util"
)

type KeyMap struct {
	Yes key.Binding
	No  key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Yes, k.No} }
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Yes, k.No}} }

var DefaultKeyMap = KeyMap{
	Yes: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "no"),
	),
}

type Model struct {
	question string
	onYes    tea.Cmd
}

// New asks question and runs onYes after the popup closed on "yes".
func New(question string, onYes tea.Cmd) *Model {
	return &Model{question: question, onYes: onYes}
}

// Open shows the dialog.
func Open(question string, onYes tea.Cmd) tea.Cmd {
	return popup.Open(util.ModelPointer(New(question, onYes)))
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Yes):
			return tea.Sequence(popup.Close(), m.onYes)
		case key.Matches(msg, DefaultKeyMap.No):
			return popup.Close()
		}
	}
	return nil
}

func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(m.question),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(i18n.T("confirm.hint")),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, DefaultKeyMap }
func (m *Model) Blur()                         {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
