// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/ui/tui/util"
)

// Option configures a stack built by New.
type Option func(*Model)

// New returns a top-aligned horizontal stack. An out of range focus is
// clamped to the last item.
func New(opts ...Option) *Model {
	s := &Model{Orientation: Horizontal, Align: lipgloss.Top}
	for _, opt := range opts {
		opt(s)
	}
	s.focussedIndex = util.Clamp(FocusAll(), s.focussedIndex, Focus(len(s.items)-1))
	return s
}

func WithOrientation(o Orientation) Option { return func(s *Model) { s.Orientation = o } }

func WithAlign(a lipgloss.Position) Option { return func(s *Model) { s.Align = a } }

// WithGap puts gap empty cells between neighbouring items.
func WithGap(gap int) Option { return func(s *Model) { s.Gap = gap } }

func WithFocus(f Focus) Option { return func(s *Model) { s.focussedIndex = f } }

// WithItem appends m, sized by sc.
func WithItem(m *util.Model, sc SizeConfig) Option {
	return func(s *Model) {
		s.items = append(s.items, Item{Model: m, SizeConfig: sc})
	}
}
