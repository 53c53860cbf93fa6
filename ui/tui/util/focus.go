// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/util/slicest"
)

// Focusable is the focus half of Model.
type Focusable interface {
	Focus() (tea.Cmd, help.KeyMap)
	Blur()
}

// FocusCmd focuses f and announces its key map.
func FocusCmd(f Focusable) tea.Cmd {
	cmd, keyMap := f.Focus()
	return tea.Batch(cmd, AnnounceKeyMapCmd(keyMap))
}

// AnnounceKeyMapMsg tells the footer which bindings the focused model
// accepts.
type AnnounceKeyMapMsg struct {
	KeyMap help.KeyMap
}

func AnnounceKeyMapCmd(k help.KeyMap) tea.Cmd {
	return func() tea.Msg {
		return AnnounceKeyMapMsg{KeyMap: k}
	}
}

// MergeKeyMaps combines key maps in order. Nil maps are dropped.
func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: slicest.Filter(keymaps, func(k help.KeyMap) bool { return k != nil })}
}

// MergedKeyMaps concatenates the bindings of its members.
type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	return slices.Concat(slicest.Map(m.KeyMaps, help.KeyMap.ShortHelp)...)
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	return slices.Concat(slicest.Map(m.KeyMaps, help.KeyMap.FullHelp)...)
}

var _ help.KeyMap = MergedKeyMaps{}
