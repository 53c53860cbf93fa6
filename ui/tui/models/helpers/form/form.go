// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package form composes inputs into a focusable form whose values decode
// into a struct through mapstructure tags.
package form // import "github.com/secwatch/console/ui/tui/models/helpers/form"

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/secwatch/console/ui/tui/util"
	"github.com/secwatch/console/util/slicest"
)

type FormInput interface {
	Focus() (tea.Cmd, help.KeyMap)
	Blur()
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	size        util.Size
}

func (f *Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f *Form[T]) Update(msg tea.Msg) tea.Cmd {
	if f.size.Update(msg) || !f.focused || len(f.items) == 0 {
		return nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, DefaultKeyMap.Next):
			return f.changeActiveIndex(1)
		case key.Matches(kmsg, DefaultKeyMap.Prev):
			return f.changeActiveIndex(-1)
		case key.Matches(kmsg, DefaultKeyMap.Cancel):
			if f.OnCancel != nil {
				return f.OnCancel()
			}
			return nil
		}
	}

	return f.updateActiveInput(msg)
}

func (f *Form[T]) View() string {
	width := max(f.size.Width, 20)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, func(row formRow) string {
			return lipgloss.JoinHorizontal(
				lipgloss.Center,
				slicest.Map(row.items, func(item_index int) string {
					return f.items[item_index].input.View(width / len(row.items))
				})...,
			)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	if len(f.items) == 0 {
		return nil, DefaultKeyMap
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, DefaultKeyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Model
var _ util.Model = (*Form[any])(nil)

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	data, err := f.Get()
	var resetCmd tea.Cmd
	if f.ResetAfterSubmit && err == nil {
		resetCmd = f.Reset()
	}
	if f.OnSubmit == nil {
		return resetCmd
	}
	return tea.Batch(resetCmd, f.OnSubmit(data, err))
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var actionCmd tea.Cmd

	updateCmd, action := f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	}

	return tea.Batch(updateCmd, actionCmd)
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	next := (f.activeIndex + delta) % len(f.items)
	if next < 0 {
		next += len(f.items)
	}
	if next != f.activeIndex {
		f.items[f.activeIndex].input.Blur()
		f.activeIndex = next
	}
	if !f.focused {
		return nil
	}
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(util.MergeKeyMaps(keyMap, DefaultKeyMap)))
}

// Get decodes the current input values into T. Strings are converted to
// numbers and booleans where T asks for them.
func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if item.id != "" {
			values[item.id] = item.input.Get()
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &data,
	})
	if err != nil {
		return data, err
	}
	err = dec.Decode(values)
	return data, err
}

// Set loads data into the inputs by mapstructure key.
func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}
	return nil
}
