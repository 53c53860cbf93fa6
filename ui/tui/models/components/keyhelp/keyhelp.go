// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/ui/tui/util"
)

// Model shows the last announced key map, short by default.
type Model struct {
	keyMap   help.KeyMap
	expanded bool
	size     util.Size
	help     help.Model
}

func New() *Model {
	return &Model{help: help.New()}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		m.keyMap = msg.KeyMap
	default:
		if m.size.Update(msg) {
			m.help.Width = m.size.Width
		}
	}
	return nil
}

func (m *Model) View() string {
	switch {
	case m.keyMap == nil:
		return ""
	case m.expanded:
		return FullHelpView(m.help, m.keyMap.FullHelp())
	default:
		return ShortHelpView(m.help, m.keyMap.ShortHelp())
	}
}

// Focus is a no-op: the help line never takes the keyboard.
func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Expanded reports whether the full help is shown.
func (m *Model) Expanded() bool { return m.expanded }

func (m *Model) ToggleExpanded() { m.expanded = !m.expanded }
