// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package router shows the top model of a stack of models. Models that are
// popped or replaced are blurred and unmounted.
package router // import "github.com/secwatch/console/ui/tui/models/components/router"

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/ui/tui/util"
)

var lastRouterID atomic.Int64

type Router struct {
	id          int
	size        util.Size
	focused     bool
	model_stack []*util.Model
}

func New(initial_model *util.Model) (*Router, Controll) {
	id := int(lastRouterID.Add(1))
	return &Router{
			id:          id,
			model_stack: []*util.Model{initial_model},
		}, Controll{
			rid: id,
		}
}

func (r *Router) Init() tea.Cmd {
	return tea.Batch(
		r.active().Init(),
		r.active().Update(InitMsg{Controll: r.controll()}),
	)
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.size.Update(msg) {
		return r.active().Update(msg)
	}

	if rmsg, ok := msg.(routerMsg); ok {
		if rmsg.routerID() != r.id {
			// never leak this router's InitMsg to nested routers
			if _, isInit := msg.(InitMsg); isInit {
				return nil
			}
			return r.active().Update(msg)
		}
		switch msg := msg.(type) {
		case PushMsg:
			return r.handlePush(msg)
		case PopMsg:
			return r.handlePop(msg)
		case ChangeMsg:
			return r.handleChange(msg)
		}
		return nil
	}

	return r.active().Update(msg)
}

func (r *Router) View() string {
	return r.active().View()
}

func (r *Router) Focus() (tea.Cmd, help.KeyMap) {
	r.focused = true
	return r.active().Focus()
}

func (r *Router) Blur() {
	r.focused = false
	r.active().Blur()
}

// *Router implements util.Model
var _ util.Model = (*Router)(nil)

// Active returns the model currently shown.
func (r *Router) Active() util.Model { return r.active() }

// Depth returns the number of stacked models.
func (r *Router) Depth() int { return len(r.model_stack) }

// Unmount unmounts every stacked model.
func (r *Router) Unmount() {
	for _, m := range r.model_stack {
		util.Unmount(*m)
	}
}

func (r *Router) handlePush(msg PushMsg) tea.Cmd {
	r.active().Blur()
	r.model_stack = append(r.model_stack, msg.Model)
	return r.mountActive()
}

func (r *Router) handlePop(msg PopMsg) tea.Cmd {
	for range msg.Count {
		if len(r.model_stack) <= 1 {
			break
		}
		old := r.active()
		old.Blur()
		util.Unmount(old)
		r.model_stack = r.model_stack[:len(r.model_stack)-1]
	}
	return tea.Batch(
		r.active().Update(r.size.ToMsg()),
		r.focusActive(),
	)
}

func (r *Router) handleChange(msg ChangeMsg) tea.Cmd {
	old := r.active()
	old.Blur()
	util.Unmount(old)
	r.model_stack[len(r.model_stack)-1] = msg.Model
	return r.mountActive()
}

func (r *Router) active() util.Model {
	return *r.model_stack[len(r.model_stack)-1]
}

func (r *Router) controll() Controll {
	return Controll{rid: r.id}
}

func (r *Router) focusActive() tea.Cmd {
	if !r.focused {
		return nil
	}
	return util.FocusCmd(r.active())
}

func (r *Router) mountActive() tea.Cmd {
	return tea.Sequence(
		r.active().Init(),
		r.active().Update(InitMsg{Controll: r.controll()}),
		r.active().Update(r.size.ToMsg()),
		r.focusActive(),
	)
}
