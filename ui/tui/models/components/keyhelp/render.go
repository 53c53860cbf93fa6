// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package keyhelp renders the key bindings announced by the focused model.
package keyhelp // import "github.com/secwatch/console/ui/tui/models/components/keyhelp"

import (
	"strings"

	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/util/slicest"
)

func enabled(b key.Binding) bool { return b.Enabled() }

// fit keeps leading parts while they and the tail fit into width. When a
// part is dropped the tail is appended in its place, if it still fits.
func fit(parts []string, tail string, width int) []string {
	tailWidth := lipgloss.Width(tail)
	used := 0
	var out []string
	for i, p := range parts {
		w := lipgloss.Width(p)
		last := i == len(parts)-1
		if (last && used+w <= width) || (!last && used+w+tailWidth <= width) {
			out = append(out, p)
			used += w
			continue
		}
		if used+tailWidth <= width {
			out = append(out, tail)
		}
		break
	}
	return out
}

func ellipsis(m help.Model) string {
	return " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
}

// ShortHelpView renders bindings on one line and cuts off with an ellipsis
// at m.Width. help.Model's own version miscounts the tail.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	sep := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	items := slicest.MapI(slicest.Filter(bindings, enabled), func(i int, b key.Binding) string {
		s := m.Styles.ShortKey.Inline(true).Render(b.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(b.Help().Desc)
		if i > 0 {
			s = sep + s
		}
		return s
	})
	return strings.Join(fit(items, ellipsis(m), m.Width), "")
}

// FullHelpView renders binding groups as columns. Groups without an
// enabled binding are left out.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	sep := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, enabled) {
			continue
		}
		active := slicest.Filter(group, enabled)
		keys := slicest.Map(active, func(b key.Binding) string { return b.Help().Key })
		descs := slicest.Map(active, func(b key.Binding) string { return b.Help().Desc })

		col := lipgloss.JoinHorizontal(lipgloss.Top,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descs...)),
		)
		if len(cols) > 0 {
			col = lipgloss.JoinHorizontal(lipgloss.Top, sep, col)
		}
		cols = append(cols, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, ellipsis(m), m.Width)...)
}
