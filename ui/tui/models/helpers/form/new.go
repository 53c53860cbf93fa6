// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) *Form[T] {
	form := &Form[T]{}
	for _, opt := range opts {
		opt(form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

// WithOnCancel makes esc call fn. Without it esc is ignored.
func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// WithInput adds input on its own row. An empty id keeps the input out of
// the decoded result, which is what buttons want.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.items = append(form.items, formItem{id: id, input: input})
		form.rows = append(form.rows, formRow{items: []int{len(form.items) - 1}})
	}
}

// WithRow adds inputs side by side on one row.
func WithRow[T any](inputs ...Field) NewOpt[T] {
	return func(form *Form[T]) {
		var row formRow
		for _, in := range inputs {
			form.items = append(form.items, formItem{id: in.ID, input: in.Input})
			row.items = append(row.items, len(form.items)-1)
		}
		form.rows = append(form.rows, row)
	}
}

// Field pairs an input with its result key for WithRow.
type Field struct {
	ID    string
	Input FormInput
}
