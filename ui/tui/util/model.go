// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package util contains the model contract shared by every component of the
// terminal UI plus a few helpers to compose them.
package util // import "github.com/secwatch/console/ui/tui/util"

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a bubbletea model that mutates in place and can take focus.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// Unmounter is implemented by models that own background work which must
// stop once the model leaves the screen.
type Unmounter interface {
	Unmount()
}

// Unmount calls Unmount on m when it implements Unmounter.
func Unmount(m Model) {
	if u, ok := m.(Unmounter); ok {
		u.Unmount()
	}
}

func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	m := Model(v)
	return &m
}

// BorrowModelFunc runs fn against the concrete model behind m.
func BorrowModelFunc[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) {
	t := (*m).(PT)
	fn(t)
	*m = Model(t)
}
