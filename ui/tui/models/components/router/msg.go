// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/ui/tui/util"
)

// Router -> Model

// InitMsg hands a freshly mounted model the Controll of its router.
type InitMsg struct {
	Controll Controll
}

// Model -> Router

type PushMsg struct {
	rid   int
	Model *util.Model
}
type PopMsg struct {
	rid   int
	Count int
}
type ChangeMsg struct {
	rid   int
	Model *util.Model
}

func (m InitMsg) routerID() int   { return m.Controll.rid }
func (m PushMsg) routerID() int   { return m.rid }
func (m PopMsg) routerID() int    { return m.rid }
func (m ChangeMsg) routerID() int { return m.rid }

type routerMsg interface {
	routerID() int
}

func IsRouterMsg(msg tea.Msg) bool {
	_, ok := msg.(routerMsg)
	return ok
}

// Controll issues navigation commands for one router.
type Controll struct {
	rid int
}

func (c Controll) Push(model *util.Model) tea.Cmd {
	return func() tea.Msg { return PushMsg{rid: c.rid, Model: model} }
}
func (c Controll) Pop(count int) tea.Cmd {
	return func() tea.Msg { return PopMsg{rid: c.rid, Count: count} }
}
func (c Controll) Change(model *util.Model) tea.Cmd {
	return func() tea.Msg { return ChangeMsg{rid: c.rid, Model: model} }
}
