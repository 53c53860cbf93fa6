// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package popup overlays modal models on top of a child model.
package popup // import "github.com/secwatch/console/ui/tui/models/components/popup"

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/secwatch/console/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child: child,
	}
}

func (m *Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	case tea.KeyMsg:
		// keys belong to the top-most model only
		return (*m.activeModel()).Update(msg)
	}

	// everything else keeps the child alive under the popup
	if len(m.popups) > 0 {
		return tea.Batch(
			(*m.child).Update(msg),
			(*m.activeModel()).Update(msg),
		)
	}
	return (*m.child).Update(msg)
}

func (m *Injector) applyView(v1, v2 string) string {
	v1_width, v1_height := lipgloss.Size(v1)
	v2 = lipgloss.NewStyle().MaxWidth(v1_width).MaxHeight(v1_height).Render(v2)
	v2_width, v2_height := lipgloss.Size(v2)

	offset_left := (v1_width - v2_width) / 2
	offset_top := (v1_height - v2_height) / 2

	v1_lines := strings.Split(v1, "\n")
	v2_lines := strings.Split(v2, "\n")

	for i := range v2_lines {
		if i+offset_top >= len(v1_lines) {
			break
		}
		v1_left := ansi.Truncate(v1_lines[i+offset_top], offset_left, "")
		v1_right := ansi.TruncateLeft(v1_lines[i+offset_top], offset_left+v2_width, "")
		v1_lines[i+offset_top] = v1_left + v2_lines[i] + v1_right
	}

	return strings.Join(v1_lines, "\n")
}

func (m *Injector) View() string {
	childView := (*m.child).View()

	if len(m.popups) > 0 {
		popupView := lipgloss.
			NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			Margin(0, 1).
			Render((*m.activeModel()).View())

		childView = lipgloss.
			NewStyle().
			Foreground(lipgloss.AdaptiveColor{
				Light: "#DDDADA",
				Dark:  "#3C3C3C",
			}).
			Render(ansi.Strip(childView))

		return m.applyView(childView, popupView)
	}
	return childView
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}
func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

// IsOpen reports whether a popup is shown.
func (m *Injector) IsOpen() bool { return len(m.popups) > 0 }

// CloseAll closes every popup without running callbacks.
func (m *Injector) CloseAll() {
	for len(m.popups) > 0 {
		top := m.popups[len(m.popups)-1]
		(*top.model).Blur()
		util.Unmount(*top.model)
		m.popups = m.popups[:len(m.popups)-1]
	}
}

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

func (m *Injector) open(p popup) tea.Cmd {
	m.Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		(*p.model).Init(),
		(*p.model).Update(m.popupSize()),
		util.FocusCmd(m),
	)
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}
	top := m.popups[len(m.popups)-1]
	m.Blur()
	util.Unmount(*top.model)
	m.popups = m.popups[:len(m.popups)-1]

	var onCloseCmd tea.Cmd
	if top.onClose != nil {
		onCloseCmd = top.onClose(top.model)
	}
	return tea.Batch(
		util.FocusCmd(m),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}
