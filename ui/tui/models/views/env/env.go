// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package env carries the services every view needs and the messages that
// connect background work to the event loop.
package env // import "github.com/secwatch/console/ui/tui/models/views/env"

import (
	"context"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/internal/app"
	"github.com/secwatch/console/internal/poller"
	"github.com/secwatch/console/ui/tui/util"
)

// Env is shared by all views of one program.
type Env struct {
	Ctx    context.Context
	App    *app.App
	Bridge *util.Bridge
}

// ChangedMsg tells the view named Source to re-read its state.
type ChangedMsg struct {
	Source string
}

// Notify returns a poller observer that posts ChangedMsg{source}.
func Notify[T any](e *Env, source string) func(poller.State[T]) {
	return func(poller.State[T]) {
		e.Bridge.Post(ChangedMsg{Source: source})
	}
}

// Run executes fn off the event loop and wraps its error into a message.
func Run(e *Env, fn func(ctx context.Context) error, wrap func(error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return wrap(fn(e.Ctx))
	}
}

// Cycle returns the option after current, where "" means unfiltered and
// sits before the first option.
func Cycle(options []string, current string) string {
	i := slices.Index(options, current)
	if i == len(options)-1 {
		return ""
	}
	return options[i+1]
}
