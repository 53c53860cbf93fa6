// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package stack lays out child models along one axis and routes focus and
// key input to the focused child.
package stack // import "github.com/secwatch/console/ui/tui/models/components/stack"

import (
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/ui/tui/util"
	"github.com/secwatch/console/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int

	items         []Item
	size          util.Size
	focussedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	size       int
	prev       int
}

func (s *Model) Init() tea.Cmd {
	return tea.Batch(slices.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.layout()
		cmds = append(cmds, s.resize(true)...)
	} else {
		_, isKey := msg.(tea.KeyMsg)
		cmds = append(cmds, slicest.MapI(s.items, func(i int, item Item) tea.Cmd {
			// keys only reach the focused item
			if isKey && s.focussedIndex != FocusAll() && Focus(i) != s.focussedIndex {
				return nil
			}
			return (*item.Model).Update(msg)
		})...)

		// children may have changed what their SizeConfig reports
		s.layout()
		cmds = append(cmds, s.resize(false)...)
	}

	return tea.Batch(cmds...)
}

func (s *Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	return joiner(
		s.Align,
		slicest.MapI(s.items, func(i int, item Item) string {
			if item.size == 0 {
				return ""
			}
			// no gap before the first item
			margin := s.Gap * min(i, 1)
			return styler(item.size, margin).Render((*item.Model).View())
		})...,
	)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focussedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))

		for i, item := range s.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}

		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*s.items[s.focussedIndex].Model).Focus()
}

func (s *Model) Blur() {
	if len(s.items) == 0 {
		return
	}
	if s.focussedIndex == FocusAll() {
		for _, item := range s.items {
			(*item.Model).Blur()
		}
	} else {
		(*s.items[s.focussedIndex].Model).Blur()
	}
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

// Focused returns the current focus target.
func (s *Model) Focused() Focus { return s.focussedIndex }

// SetFocus moves focus and returns the newly focused item's command and key map.
func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focussedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}
