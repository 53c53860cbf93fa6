// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package alerts

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Severity key.Binding
	Resolved key.Binding
	Clear    key.Binding
	Refresh  key.Binding
	Resolve  key.Binding
	Details  key.Binding
	Copy     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Details, k.Resolve, k.Severity, k.Resolved, k.Clear}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Severity, k.Resolved, k.Clear}, {k.Details, k.Resolve, k.Copy, k.Refresh}}
}

var DefaultKeyMap = KeyMap{
	Severity: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "severity")),
	Resolved: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "status")),
	Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Resolve:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "resolve")),
	Details:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
}

type DetailKeyMap struct {
	Back    key.Binding
	Resolve key.Binding
	Copy    key.Binding
}

func (k DetailKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Back, k.Resolve, k.Copy} }
func (k DetailKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var DefaultDetailKeyMap = DetailKeyMap{
	Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Resolve: DefaultKeyMap.Resolve,
	Copy:    DefaultKeyMap.Copy,
}
