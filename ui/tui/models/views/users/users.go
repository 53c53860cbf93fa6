// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package users is the admin-only user management screen.
package users // import "github.com/secwatch/console/ui/tui/models/views/users"

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/poller"
	"github.com/secwatch/console/internal/views"
	"github.com/secwatch/console/ui/tui/models/components/confirm"
	"github.com/secwatch/console/ui/tui/models/components/datatable"
	"github.com/secwatch/console/ui/tui/models/components/livebar"
	"github.com/secwatch/console/ui/tui/models/components/popup"
	windowtitle "github.com/secwatch/console/ui/tui/models/helpers/title"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/footer"
	"github.com/secwatch/console/ui/tui/models/views/styles"
	"github.com/secwatch/console/ui/tui/util"
	"github.com/secwatch/console/util/slicest"
)

const source = "users"

type Model struct {
	env     *env.Env
	list    *views.Users
	state   poller.State[[]model.UserProfile]
	table   *datatable.Model
	size    util.Size
	focused bool
}

func New(e *env.Env) *Model {
	return &Model{
		env:  e,
		list: e.App.Users(views.OnChange(env.Notify[[]model.UserProfile](e, source))),
		table: datatable.New(
			datatable.Column{Title: "ID", Weight: 1},
			datatable.Column{Title: i18n.T("users.email"), Weight: 5},
			datatable.Column{Title: i18n.T("users.full_name"), Weight: 4},
			datatable.Column{Title: i18n.T("users.department"), Weight: 3},
			datatable.Column{Title: i18n.T("users.role"), Weight: 3},
			datatable.Column{Title: i18n.T("users.admin"), Weight: 2},
			datatable.Column{Title: i18n.T("users.active"), Weight: 2},
		),
	}
}

func (m *Model) Init() tea.Cmd {
	m.list.Start(m.env.Ctx)
	m.refreshState()
	return windowtitle.Set(i18n.T("menu.users"))
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.table.SetSize(m.size.Width, m.size.Height-2)
		return nil
	}

	switch msg := msg.(type) {
	case env.ChangedMsg:
		if msg.Source == source {
			m.refreshState()
		}
	case updatedMsg:
		if msg.err != nil {
			return footer.Error(msg.err)
		}
		return footer.Status(msg.text)
	case tea.KeyMsg:
		if m.focused {
			return m.handleKey(msg)
		}
	}
	return nil
}

// afterCreate reports the user the closed dialog created, if any.
func afterCreate(p *util.Model) tea.Cmd {
	d, ok := (*p).(*createDialog)
	if !ok || d.created == nil {
		return nil
	}
	return footer.Status(i18n.T("users.created", d.created.Email))
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DefaultKeyMap.New):
		return popup.OpenWithCallback(util.ModelPointer(newCreateDialog(m.env, m.list)), afterCreate)
	case key.Matches(msg, DefaultKeyMap.Refresh):
		m.list.Refresh()
		return nil
	}

	u, ok := m.selected()
	switch {
	case !ok:
	case key.Matches(msg, DefaultKeyMap.Delete):
		if me := m.env.App.Session.Session().User; me != nil && me.ID == u.ID {
			return footer.Status(i18n.T("users.delete_self"))
		}
		return confirm.Open(i18n.T("users.confirm_delete", u.Email), remove(m.env, m.list, u))
	case key.Matches(msg, DefaultKeyMap.Admin):
		return setFlag(m.env, m.list, u, true)
	case key.Matches(msg, DefaultKeyMap.Active):
		return setFlag(m.env, m.list, u, false)
	}
	return m.table.Update(msg)
}

func (m *Model) selected() (model.UserProfile, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.state.Data) {
		return model.UserProfile{}, false
	}
	return m.state.Data[i], true
}

func yesNo(b bool) string {
	if b {
		return styles.Good.Render("✓")
	}
	return styles.Dim.Render("-")
}

func (m *Model) refreshState() {
	m.state = m.list.State()
	m.table.SetRows(slicest.Map(m.state.Data, func(u model.UserProfile) []string {
		return []string{
			fmt.Sprint(u.ID),
			u.Email,
			u.FullName,
			u.Department,
			u.Role,
			yesNo(u.IsAdmin),
			yesNo(u.IsActive),
		}
	}))
}

func (m *Model) View() string {
	bar := livebar.Render(livebar.FromState(m.state, m.list.Interval(), ""))
	if !m.state.HasData {
		return lipgloss.JoinVertical(lipgloss.Left, bar, "", styles.Dim.Render(i18n.T("view.no_data")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, m.table.View())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	m.table.Focus()
	return nil, util.MergeKeyMaps(DefaultKeyMap, m.table.KeyMap())
}

func (m *Model) Blur() {
	m.focused = false
	m.table.Blur()
}

func (m *Model) Unmount() { m.list.Stop() }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
