// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(tea.Msg)
}

// Bridge carries notifications from background goroutines (pollers, the
// session manager) into the bubbletea event loop. Post never blocks, so it
// is safe to call from code that runs inside Update. Messages may arrive
// out of order: they signal that something changed and receivers read the
// current state themselves.
type Bridge struct {
	mu     sync.RWMutex
	target Sender
}

func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach sets the program messages are delivered to.
func (b *Bridge) Attach(s Sender) {
	b.mu.Lock()
	b.target = s
	b.mu.Unlock()
}

// Post delivers msg asynchronously. It is dropped when nothing is attached.
func (b *Bridge) Post(msg tea.Msg) {
	b.mu.RLock()
	t := b.target
	b.mu.RUnlock()
	if t == nil {
		return
	}
	go t.Send(msg)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(tea.Msg)

func (f SenderFunc) Send(msg tea.Msg) { f(msg) }
