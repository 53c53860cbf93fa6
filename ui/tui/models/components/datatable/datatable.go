// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package datatable wraps bubbles/table with weighted column widths.
package datatable // import "github.com/secwatch/console/ui/tui/models/components/datatable"

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/util/slicest"
)

// Column describes a header and its share of the width.
type Column struct {
	Title  string
	Weight int
}

type Model struct {
	columns []Column
	table   table.Model
	width   int
}

func New(columns ...Column) *Model {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#D9534F"))

	m := &Model{
		columns: columns,
		table:   table.New(table.WithStyles(styles)),
	}
	m.SetSize(80, 10)
	return m
}

// SetSize resizes the table and redistributes column widths.
func (m *Model) SetSize(width, height int) {
	m.width = width
	totalWeight := slicest.Reduce(m.columns, func(c Column, sum int) int { return sum + max(c.Weight, 1) })
	// every cell carries one char of padding on each side
	usable := max(width-2*len(m.columns), len(m.columns))
	m.table.SetColumns(slicest.Map(m.columns, func(c Column) table.Column {
		return table.Column{Title: c.Title, Width: max(usable*max(c.Weight, 1)/max(totalWeight, 1), 1)}
	}))
	m.table.SetHeight(max(height, 2))
}

// SetRows replaces the rows and keeps the cursor in range.
func (m *Model) SetRows(rows [][]string) {
	m.table.SetRows(slicest.Map(rows, func(r []string) table.Row { return table.Row(r) }))
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Cursor returns the selected row index, -1 when empty.
func (m *Model) Cursor() int {
	if len(m.table.Rows()) == 0 {
		return -1
	}
	return m.table.Cursor()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *Model) View() string {
	return m.table.View()
}

func (m *Model) Focus() { m.table.Focus() }
func (m *Model) Blur()  { m.table.Blur() }

// KeyMap exposes the navigation bindings for the help footer.
func (m *Model) KeyMap() help.KeyMap {
	return keyMap{m.table.KeyMap}
}

type keyMap struct{ table.KeyMap }

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LineUp, k.LineDown}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.LineUp, k.LineDown}, {k.PageUp, k.PageDown}, {k.GotoTop, k.GotoBottom}}
}
