// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package login is the sign-in form. Success is reported by the session
// manager, which navigates away on its own.
package login // import "github.com/secwatch/console/ui/tui/models/views/login"

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/ui/tui/models/helpers/form"
	forminput "github.com/secwatch/console/ui/tui/models/helpers/form/input"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/util"
)

const formWidth = 44

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D9534F"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9534F"))
)

type credentials struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type submitMsg struct{ creds credentials }

type resultMsg struct{ err error }

type Model struct {
	env     *env.Env
	form    *form.Form[credentials]
	size    util.Size
	busy    bool
	message string
}

func New(e *env.Env) *Model {
	m := &Model{env: e}
	m.form = form.New(
		form.WithInput[credentials]("email", forminput.NewText(i18n.T("login.email"), "admin@example.com")),
		form.WithInput[credentials]("password", forminput.NewText(i18n.T("login.password"), "", forminput.Masked(), forminput.SubmitOnEnter())),
		form.WithInput[credentials]("", forminput.NewButton(i18n.T("login.submit"))),
		form.WithOnSubmit(func(c credentials, err error) tea.Cmd {
			return func() tea.Msg { return submitMsg{creds: c} }
		}),
	)
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return m.form.Update(tea.WindowSizeMsg{Width: formWidth, Height: m.size.Height})
	}

	switch msg := msg.(type) {
	case submitMsg:
		return m.submit(msg.creds)
	case resultMsg:
		m.busy = false
		if msg.err != nil {
			m.message = m.env.App.Session.Session().Error
			if m.message == "" {
				m.message = msg.err.Error()
			}
		}
		return nil
	}

	if m.busy {
		return nil
	}
	return m.form.Update(msg)
}

func (m *Model) submit(c credentials) tea.Cmd {
	if m.busy {
		return nil
	}
	c.Email = strings.TrimSpace(c.Email)
	if c.Email == "" || c.Password == "" {
		m.message = i18n.T("login.missing")
		return nil
	}
	m.busy, m.message = true, ""
	return env.Run(m.env, func(ctx context.Context) error {
		return m.env.App.Session.Login(ctx, c.Email, c.Password)
	}, func(err error) tea.Msg { return resultMsg{err: err} })
}

func (m *Model) View() string {
	lines := []string{
		titleStyle.Render(i18n.T("login.title")),
		hintStyle.Render(i18n.T("login.server", m.env.App.API.BaseURL())),
		"",
		m.form.View(),
		"",
	}
	switch {
	case m.busy:
		lines = append(lines, hintStyle.Render(i18n.T("login.busy")))
	case m.message != "":
		lines = append(lines, errorStyle.Width(formWidth).Render(m.message))
	}
	return lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return m.form.Focus()
}

func (m *Model) Blur() {
	m.form.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Message returns the error currently shown.
func (m *Model) Message() string { return m.message }
