// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package forminput holds the inputs a form.Form can be built from.
package forminput // import "github.com/secwatch/console/ui/tui/models/helpers/form/input"

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/ui/tui/models/helpers/form"
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9534F")).Bold(true)
)

type Text struct {
	Label       string
	Placeholder string
	KeyMap      TextKeyMap

	input   textinput.Model
	focused bool
	submit  bool
}

type TextKeyMap struct {
	Next key.Binding
}

func (k TextKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Next} }

func (k TextKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Next}} }

type TextOpt func(*Text)

// Masked hides the typed characters.
func Masked() TextOpt {
	return func(t *Text) {
		t.input.EchoMode = textinput.EchoPassword
		t.input.EchoCharacter = '•'
	}
}

// WithValue pre-fills the input.
func WithValue(v string) TextOpt {
	return func(t *Text) {
		t.input.SetValue(v)
	}
}

// SubmitOnEnter makes enter submit the form instead of moving on.
func SubmitOnEnter() TextOpt {
	return func(t *Text) {
		t.KeyMap.Next = key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		)
		t.submit = true
	}
}

func NewText(label, placeholder string, opts ...TextOpt) *Text {
	t := &Text{
		Label:       label,
		Placeholder: placeholder,
		KeyMap: TextKeyMap{
			Next: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "next"),
			),
		},
		input: textinput.New(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Text) Blur() {
	t.input.Blur()
	t.focused = false
}

func (t *Text) Focus() (tea.Cmd, help.KeyMap) {
	t.focused = true
	return t.input.Focus(), t.KeyMap
}

func (t *Text) Get() any {
	return t.input.Value()
}

func (t *Text) Init() tea.Cmd {
	return nil
}

func (t *Text) Reset() {
	t.input.SetValue("")
}

func (t *Text) Set(value any) {
	switch v := value.(type) {
	case string:
		t.input.SetValue(v)
	case nil:
		t.input.SetValue("")
	default:
		t.input.SetValue(fmt.Sprint(v))
	}
}

func (t *Text) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, t.KeyMap.Next) {
		if t.submit {
			return nil, form.ActionSubmit
		}
		return nil, form.ActionNext
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd, form.ActionNone
}

func (t *Text) View(width int) string {
	label := labelStyle.Width(width).Render(t.Label)
	if t.focused {
		label = focusedStyle.Render(t.Label)
	}

	t.input.Width = max(width-3, 1)
	t.input.Placeholder = t.Placeholder

	return lipgloss.JoinVertical(lipgloss.Left, label, t.input.View())
}

var _ form.FormInput = (*Text)(nil)
