// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package footer shows the key help of the focused model and transient
// status messages.
package footer // import "github.com/secwatch/console/ui/tui/models/views/footer"

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/ui/tui/models/components/keyhelp"
	"github.com/secwatch/console/ui/tui/util"
)

// StatusTTL is how long a status message stays visible.
const StatusTTL = 5 * time.Second

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5CB85C"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9534F"))
)

type StatusMsg struct {
	Text  string
	Error bool
}

type clearStatusMsg struct{ seq int }

// Status shows text in the footer.
func Status(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// Error shows err in the footer.
func Error(err error) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: err.Error(), Error: true} }
}

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     StatusMsg
	seq        int
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// the root bindings are always available
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case StatusMsg:
		m.status = msg
		m.seq++
		seq := m.seq
		return tea.Tick(StatusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
	case clearStatusMsg:
		if msg.seq == m.seq {
			m.status = StatusMsg{}
		}
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m *Model) view() string {
	if m.status.Text == "" {
		return m.help.View()
	}
	style := infoStyle
	if m.status.Error {
		style = errorStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.MaxWidth(m.size.Width).Render(m.status.Text),
		m.help.View(),
	)
}

func (m *Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded() {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			h_pos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.help.Focus()
}

func (m *Model) Blur() {
	m.help.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

// Status returns the visible status message.
func (m *Model) Status() StatusMsg { return m.status }
