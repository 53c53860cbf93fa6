// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package header renders the product banner and the signed-in operator.
package header // import "github.com/secwatch/console/ui/tui/models/components/header"

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/ui/tui/util"
)

const logo string = "" +
	"╔═╗┌─┐┌─┐╦ ╦┌─┐┌┬┐┌─┐┬ ┬\n" +
	"╚═╗├┤ │  ║║║├─┤ │ │  ├─┤\n" +
	"╚═╝└─┘└─┘╚╩╝┴ ┴ ┴ └─┘┴ ┴"

var (
	logoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9534F")).Bold(true)
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	adminStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#F0AD4E")).Padding(0, 1)
)

type Model struct {
	size    util.Size
	session model.Session
	baseURL string
}

func New(baseURL string) *Model {
	return &Model{baseURL: baseURL}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

// SetSession updates the operator shown on the right.
func (m *Model) SetSession(s model.Session) {
	m.session = s
}

func (m *Model) operator() string {
	lines := []string{userStyle.Render(m.baseURL)}
	if m.session.User != nil {
		who := m.session.User.DisplayName()
		if m.session.IsAdmin() {
			who = lipgloss.JoinHorizontal(lipgloss.Top, who, " ", adminStyle.Render(i18n.T("header.admin")))
		}
		lines = append(lines, who)
	}
	return lipgloss.JoinVertical(lipgloss.Right, lines...)
}

func (m *Model) View() string {
	left := logoStyle.Render(logo)
	right := m.operator()
	gap := max(m.size.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
