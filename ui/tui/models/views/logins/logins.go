// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package logins shows the live login activity feed.
package logins // import "github.com/secwatch/console/ui/tui/models/views/logins"

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
	"github.com/secwatch/console/ui/tui/models/components/datatable"
	"github.com/secwatch/console/ui/tui/models/components/livebar"
	windowtitle "github.com/secwatch/console/ui/tui/models/helpers/title"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/styles"
	"github.com/secwatch/console/ui/tui/util"
	"github.com/secwatch/console/util/slicest"
)

const source = "logins"

type KeyMap struct {
	Anomalous key.Binding
	Clear     key.Binding
	Refresh   key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Anomalous, k.Clear, k.Refresh}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var DefaultKeyMap = KeyMap{
	Anomalous: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "anomalous only")),
	Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
}

type Model struct {
	env     *env.Env
	list    *views.List[[]model.LoginActivity]
	state   poller.State[[]model.LoginActivity]
	table   *datatable.Model
	size    util.Size
	focused bool
}

func New(e *env.Env) *Model {
	return &Model{
		env:  e,
		list: e.App.Logins(views.OnChange(env.Notify[[]model.LoginActivity](e, source))),
		table: datatable.New(
			datatable.Column{Title: i18n.T("col.time"), Weight: 4},
			datatable.Column{Title: i18n.T("col.user"), Weight: 5},
			datatable.Column{Title: i18n.T("col.ip"), Weight: 3},
			datatable.Column{Title: i18n.T("col.location"), Weight: 4},
			datatable.Column{Title: i18n.T("col.result"), Weight: 2},
			datatable.Column{Title: i18n.T("col.anomalous"), Weight: 2},
		),
	}
}

func (m *Model) Init() tea.Cmd {
	m.list.Start(m.env.Ctx)
	m.refreshState()
	return windowtitle.Set(i18n.T("menu.logins"))
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.table.SetSize(m.size.Width, m.size.Height-3)
		return nil
	}

	switch msg := msg.(type) {
	case env.ChangedMsg:
		if msg.Source == source {
			m.refreshState()
		}
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		switch {
		case key.Matches(msg, DefaultKeyMap.Anomalous):
			// toggles between all logins and anomalous ones
			if m.list.Criteria().Get(views.KeyAnomalous) == "" {
				m.list.SetFilter(views.KeyAnomalous, "true")
			} else {
				m.list.SetFilter(views.KeyAnomalous, "")
			}
		case key.Matches(msg, DefaultKeyMap.Clear):
			m.list.ClearFilters()
		case key.Matches(msg, DefaultKeyMap.Refresh):
			m.list.Refresh()
		default:
			return m.table.Update(msg)
		}
	}
	return nil
}

func (m *Model) refreshState() {
	m.state = m.list.State()
	m.table.SetRows(slicest.Map(m.state.Data, func(l model.LoginActivity) []string {
		result := i18n.T("logins.success")
		if !l.Success {
			result = i18n.T("logins.failed")
		}
		anomalous := ""
		if l.IsAnomalous {
			anomalous = i18n.T("logins.anomalous")
		}
		return []string{
			l.Timestamp.Format(styles.TimeFormat),
			l.UserEmail,
			l.IPAddress,
			l.Location(),
			result,
			anomalous,
		}
	}))
}

func (m *Model) View() string {
	bar := livebar.Render(livebar.FromState(m.state, m.list.Interval(), m.list.Criteria().String()))
	if !m.state.HasData {
		return lipgloss.JoinVertical(lipgloss.Left, bar, "", styles.Dim.Render(i18n.T("view.no_data")))
	}
	stats := views.LoginCounts(m.state.Data)
	summary := fmt.Sprintf("%s  %s  %s",
		i18n.T("logins.total", stats.Total),
		styles.Bad.Render(i18n.T("logins.failed_count", stats.Failed)),
		styles.Warning.Render(i18n.T("logins.anomalous_count", stats.Anomalous)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, bar, summary, m.table.View())
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
