// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package users

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/views"
	"github.com/secwatch/console/ui/tui/models/components/popup"
	"github.com/secwatch/console/ui/tui/models/helpers/form"
	forminput "github.com/secwatch/console/ui/tui/models/helpers/form/input"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/styles"
	"github.com/secwatch/console/ui/tui/util"
)

type createInput struct {
	Email      string `mapstructure:"email"`
	Username   string `mapstructure:"username"`
	FullName   string `mapstructure:"full_name"`
	Password   string `mapstructure:"password"`
	Department string `mapstructure:"department"`
	Role       string `mapstructure:"role"`
	IsAdmin    bool   `mapstructure:"is_admin"`
	IsActive   bool   `mapstructure:"is_active"`
}

func (in createInput) payload() model.UserCreate {
	return model.UserCreate{
		Email:      strings.TrimSpace(in.Email),
		Username:   strings.TrimSpace(in.Username),
		Password:   in.Password,
		FullName:   strings.TrimSpace(in.FullName),
		Department: strings.TrimSpace(in.Department),
		Role:       strings.TrimSpace(in.Role),
		IsAdmin:    in.IsAdmin,
		IsActive:   in.IsActive,
	}
}

type createSubmitMsg struct{ in createInput }

type createdMsg struct {
	user model.UserProfile
	err  error
}

// createDialog is the popup used to add a user.
type createDialog struct {
	env     *env.Env
	list    *views.Users
	form    *form.Form[createInput]
	busy    bool
	message string
	created *model.UserProfile
}

func newCreateDialog(e *env.Env, list *views.Users) *createDialog {
	d := &createDialog{env: e, list: list}
	d.form = form.New(
		form.WithRow[createInput](
			form.Field{ID: "email", Input: forminput.NewText(i18n.T("users.email"), "analyst@example.com")},
			form.Field{ID: "username", Input: forminput.NewText(i18n.T("users.username"), "")},
		),
		form.WithRow[createInput](
			form.Field{ID: "full_name", Input: forminput.NewText(i18n.T("users.full_name"), "")},
			form.Field{ID: "password", Input: forminput.NewText(i18n.T("users.password"), "", forminput.Masked())},
		),
		form.WithRow[createInput](
			form.Field{ID: "department", Input: forminput.NewText(i18n.T("users.department"), "")},
			form.Field{ID: "role", Input: forminput.NewText(i18n.T("users.role"), "")},
		),
		form.WithRow[createInput](
			form.Field{ID: "is_admin", Input: forminput.NewToggle(i18n.T("users.admin"), false)},
			form.Field{ID: "is_active", Input: forminput.NewToggle(i18n.T("users.active"), true)},
		),
		form.WithInput[createInput]("", forminput.NewButton(i18n.T("users.create"))),
		form.WithOnSubmit(func(in createInput, err error) tea.Cmd {
			return func() tea.Msg { return createSubmitMsg{in: in} }
		}),
		form.WithOnCancel[createInput](popup.Close),
	)
	return d
}

func (d *createDialog) Init() tea.Cmd {
	return tea.Batch(d.form.Init(), d.form.Update(tea.WindowSizeMsg{Width: 64, Height: 12}))
}

func (d *createDialog) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// fixed width regardless of the popup size
		return nil
	case createSubmitMsg:
		return d.submit(msg.in)
	case createdMsg:
		d.busy = false
		if msg.err != nil {
			d.message = msg.err.Error()
			return nil
		}
		d.created = &msg.user
		return popup.Close()
	}
	if d.busy {
		return nil
	}
	return d.form.Update(msg)
}

func (d *createDialog) submit(in createInput) tea.Cmd {
	p := in.payload()
	if p.Email == "" || p.Password == "" {
		d.message = i18n.T("users.missing")
		return nil
	}
	d.busy, d.message = true, ""
	return func() tea.Msg {
		u, err := d.list.Create(d.env.Ctx, p)
		return createdMsg{user: u, err: err}
	}
}

func (d *createDialog) View() string {
	lines := []string{styles.Title.Render(i18n.T("users.new_title")), "", d.form.View()}
	if d.busy {
		lines = append(lines, "", styles.Dim.Render(i18n.T("users.saving")))
	} else if d.message != "" {
		lines = append(lines, "", styles.Bad.Width(64).Render(d.message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (d *createDialog) Focus() (tea.Cmd, help.KeyMap) { return d.form.Focus() }
func (d *createDialog) Blur()                         { d.form.Blur() }

// *createDialog implements util.Model
var _ util.Model = (*createDialog)(nil)

// list actions

type updatedMsg struct {
	text string
	err  error
}

func setFlag(e *env.Env, list *views.Users, u model.UserProfile, admin bool) tea.Cmd {
	var in model.UserUpdate
	var text string
	if admin {
		v := !u.IsAdmin
		in.IsAdmin = &v
		text = i18n.T("users.admin_changed", u.Email, v)
	} else {
		v := !u.IsActive
		in.IsActive = &v
		text = i18n.T("users.active_changed", u.Email, v)
	}
	return func() tea.Msg {
		_, err := list.Update(e.Ctx, u.ID, in)
		return updatedMsg{text: text, err: err}
	}
}

func remove(e *env.Env, list *views.Users, u model.UserProfile) tea.Cmd {
	return env.Run(e, func(ctx context.Context) error {
		return list.Delete(ctx, u.ID)
	}, func(err error) tea.Msg {
		return updatedMsg{text: i18n.T("users.deleted", u.Email), err: err}
	})
}
