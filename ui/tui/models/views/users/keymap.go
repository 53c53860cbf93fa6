// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package users

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	New     key.Binding
	Delete  key.Binding
	Admin   key.Binding
	Active  key.Binding
	Refresh key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Delete, k.Admin, k.Active, k.Refresh}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var DefaultKeyMap = KeyMap{
	New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new user")),
	Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	Admin:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle admin")),
	Active:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle active")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
}
