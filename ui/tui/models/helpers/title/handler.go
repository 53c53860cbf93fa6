// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package windowtitle keeps the terminal title in sync with the shown view.
package windowtitle // import "github.com/secwatch/console/ui/tui/models/helpers/title"

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set asks the root handler to show title after the base title.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

// Title returns the full title currently shown.
func (t *TitleHandler) Title() string {
	if t.current != "" {
		return t.Base + t.Delimiter + t.current
	}
	return t.Base
}

func (t *TitleHandler) Init() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

// Handle consumes title messages. It reports whether msg was one.
func (t *TitleHandler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	title, ok := msg.(titleMsg)
	if !ok {
		return nil, false
	}
	if t.current == string(title) {
		return nil, true
	}
	t.current = string(title)
	return tea.SetWindowTitle(t.Title()), true
}
