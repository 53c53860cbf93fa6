// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/ui/tui/util"
)

type openMsg struct {
	Model   *util.Model
	OnClose func(*util.Model) tea.Cmd
}

type closeMsg struct{}

func Open(m *util.Model) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m} }
}

// OpenWithCallback opens m and runs cb with it once it is closed.
func OpenWithCallback(m *util.Model, cb func(*util.Model) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m, OnClose: cb} }
}

func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}
