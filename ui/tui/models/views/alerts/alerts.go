// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package alerts lists security alerts with severity and status filters and
// lets the operator resolve them.
package alerts // import "github.com/secwatch/console/ui/tui/models/views/alerts"

import (
	"fmt"
	"strings"

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
	"github.com/secwatch/console/ui/tui/models/components/router"
	windowtitle "github.com/secwatch/console/ui/tui/models/helpers/title"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/styles"
	"github.com/secwatch/console/ui/tui/util"
	"github.com/secwatch/console/util/slicest"
)

const source = "alerts"

// resolvedOptions are the values the status filter cycles through.
var resolvedOptions = []string{"false", "true"}

type Model struct {
	env     *env.Env
	list    *views.Alerts
	state   poller.State[[]model.Alert]
	table   *datatable.Model
	router  router.Controll
	size    util.Size
	focused bool
}

func New(e *env.Env) *Model {
	return &Model{
		env:  e,
		list: e.App.Alerts(views.OnChange(env.Notify[[]model.Alert](e, source))),
		table: datatable.New(
			datatable.Column{Title: "ID", Weight: 1},
			datatable.Column{Title: i18n.T("col.severity"), Weight: 2},
			datatable.Column{Title: i18n.T("col.type"), Weight: 3},
			datatable.Column{Title: i18n.T("col.message"), Weight: 8},
			datatable.Column{Title: i18n.T("col.source"), Weight: 3},
			datatable.Column{Title: i18n.T("col.time"), Weight: 4},
			datatable.Column{Title: i18n.T("col.status"), Weight: 2},
		),
	}
}

func (m *Model) Init() tea.Cmd {
	m.list.Start(m.env.Ctx)
	m.refreshState()
	return windowtitle.Set(i18n.T("menu.alerts"))
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		// livebar, summary and a blank line
		m.table.SetSize(m.size.Width, m.size.Height-5)
		return nil
	}

	switch msg := msg.(type) {
	case router.InitMsg:
		m.router = msg.Controll
	case env.ChangedMsg:
		if msg.Source == source {
			m.refreshState()
		}
	case resolvedMsg:
		return handleResolved(msg)
	case tea.KeyMsg:
		if m.focused {
			return m.handleKey(msg)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DefaultKeyMap.Severity):
		m.list.SetFilter(views.KeySeverity, env.Cycle(model.Severities, m.list.Criteria().Get(views.KeySeverity)))
	case key.Matches(msg, DefaultKeyMap.Resolved):
		m.list.SetFilter(views.KeyResolved, env.Cycle(resolvedOptions, m.list.Criteria().Get(views.KeyResolved)))
	case key.Matches(msg, DefaultKeyMap.Clear):
		m.list.ClearFilters()
	case key.Matches(msg, DefaultKeyMap.Refresh):
		m.list.Refresh()
	case key.Matches(msg, DefaultKeyMap.Resolve):
		if a, ok := m.selected(); ok {
			return confirmResolve(m.env, m.list, a)
		}
	case key.Matches(msg, DefaultKeyMap.Copy):
		if a, ok := m.selected(); ok {
			return copyAlert(a)
		}
	case key.Matches(msg, DefaultKeyMap.Details):
		if a, ok := m.selected(); ok {
			return m.router.Push(util.ModelPointer(newDetail(m.env, m.list, a, m.router)))
		}
	default:
		return m.table.Update(msg)
	}
	return nil
}

func (m *Model) refreshState() {
	m.state = m.list.State()
	m.table.SetRows(slicest.Map(m.state.Data, func(a model.Alert) []string {
		status := i18n.T("alerts.open")
		if a.Resolved {
			status = i18n.T("alerts.resolved_label")
		}
		return []string{
			fmt.Sprint(a.ID),
			a.Severity,
			a.Type,
			a.Message,
			a.SourceIP,
			a.Timestamp.Format(styles.TimeFormat),
			status,
		}
	}))
}

func (m *Model) selected() (model.Alert, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.state.Data) {
		return model.Alert{}, false
	}
	return m.state.Data[i], true
}

func (m *Model) summary() string {
	stats := views.AlertCounts(m.state.Data)
	parts := []string{i18n.T("alerts.summary", stats.Total, stats.Unresolved)}
	for _, sev := range model.Severities {
		if n := stats.BySeverity[sev]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", styles.Severity(sev), n))
		}
	}
	return strings.Join(parts, styles.Dim.Render(" · "))
}

func (m *Model) View() string {
	bar := livebar.Render(livebar.FromState(m.state, m.list.Interval(), m.list.Criteria().String()))
	if !m.state.HasData {
		return lipgloss.JoinVertical(lipgloss.Left, bar, "", styles.Dim.Render(i18n.T("view.no_data")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, m.summary(), "", m.table.View())
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

// Unmount stops polling.
func (m *Model) Unmount() { m.list.Stop() }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
var _ util.Unmounter = (*Model)(nil)
