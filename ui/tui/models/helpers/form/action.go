// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package form

// Action is what an input asks the form to do after handling a message.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionSubmit
	ActionCancel
)
