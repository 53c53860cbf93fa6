// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package loading is shown while the stored session is being verified.
package loading // import "github.com/secwatch/console/ui/tui/models/views/loading"

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/ui/tui/util"
)

type Model struct {
	spinner spinner.Model
	size    util.Size
}

func New() *Model {
	return &Model{spinner: spinner.New(spinner.WithSpinner(spinner.Dot))}
}

func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) View() string {
	return lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Center, lipgloss.Center,
		m.spinner.View()+" "+i18n.T("loading.session"))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (m *Model) Blur()                         {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
