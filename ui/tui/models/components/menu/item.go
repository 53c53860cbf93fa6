// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/util/slicest"
)

func WithItem(id string, name string, sub_items ...Item) Item {
	return Item{
		Id:       id,
		Name:     name,
		SubItems: sub_items,
	}
}

type Item struct {
	Id       string
	Name     string
	SubItems []Item
	Cmd      tea.Cmd
}

var accent = lipgloss.Color("#D9534F")

func (i Item) View(is_active bool, active_stack []int) string {
	content := i.Name

	item_style := lipgloss.NewStyle()
	if len(i.SubItems) > 0 {
		item_style = item_style.
			Underline(true).
			Italic(true)
	}
	if is_active {
		if len(active_stack) > 0 {
			item_style = item_style.Foreground(accent)
		} else {
			item_style = item_style.
				Foreground(lipgloss.Color("#000000")).
				Background(accent)
		}
	}

	content = item_style.Render(content)

	// expand sub items of the active branch
	if is_active && len(i.SubItems) > 0 && len(active_stack) > 0 {
		style := lipgloss.
			NewStyle().
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			PaddingLeft(1)
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			style.Render(renderItems(i.SubItems, active_stack)),
		)
	}

	return content
}

// ItemSelected is emitted when a leaf item without Cmd is chosen.
type ItemSelected struct {
	Id string
}

func renderItems(items []Item, active_stack []int) string {
	active_i := -1
	if len(active_stack) > 0 {
		active_i, active_stack = active_stack[0], active_stack[1:]
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.MapI(items, func(i int, item Item) string {
			return item.View(active_i == i, active_stack)
		})...,
	)
}

// path returns the index path to the item with id.
func path(items []Item, id string) []int {
	for i, item := range items {
		if item.Id == id {
			return []int{i}
		}
		if sub := path(item.SubItems, id); sub != nil {
			return append([]int{i}, sub...)
		}
	}
	return nil
}
