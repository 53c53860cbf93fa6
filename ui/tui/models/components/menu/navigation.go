// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) up() {
	index := &m.ActiveStack[len(m.ActiveStack)-1]
	if *index > 0 {
		(*index)--
	}
}
func (m *Model) down() {
	parent_len := m.getParentLen(m.getActiveItemStack())
	index := &m.ActiveStack[len(m.ActiveStack)-1]
	if *index < parent_len-1 {
		(*index)++
	}
}
func (m *Model) left() {
	if len(m.ActiveStack) > 1 {
		m.ActiveStack = m.ActiveStack[:len(m.ActiveStack)-1]
	}
}
func (m *Model) right() tea.Cmd {
	active_stack := m.getActiveItemStack()
	if len(active_stack) == 0 {
		return nil
	}
	active_item := active_stack[len(active_stack)-1]
	switch {
	case len(active_item.SubItems) > 0:
		m.ActiveStack = append(m.ActiveStack, 0)
		return nil
	case active_item.Cmd != nil:
		return active_item.Cmd
	default:
		return func() tea.Msg { return ItemSelected{Id: active_item.Id} }
	}
}

func (m *Model) getActiveItemStack() []Item {
	var stack []Item
	cursor := m.Items

	for _, i := range m.ActiveStack {
		if i >= len(cursor) {
			break
		}
		item := cursor[i]
		cursor = item.SubItems
		stack = append(stack, item)
	}

	return stack
}

func (m *Model) getParentLen(item_stack []Item) int {
	if len(item_stack) > 1 {
		return len(item_stack[len(item_stack)-2].SubItems)
	}
	return len(m.Items)
}
