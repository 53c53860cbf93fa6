// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package dashboard shows the aggregate counters, the seven day login
// activity and the most recent threats.
package dashboard // import "github.com/secwatch/console/ui/tui/models/views/dashboard"

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
	"github.com/secwatch/console/ui/tui/models/components/livebar"
	windowtitle "github.com/secwatch/console/ui/tui/models/helpers/title"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/styles"
	"github.com/secwatch/console/ui/tui/util"
	"github.com/secwatch/console/util/slicest"
)

const source = "dashboard"

const maxThreats = 5

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1).
	Width(18)

type KeyMap struct {
	Refresh key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Refresh} }
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Refresh}} }

var DefaultKeyMap = KeyMap{
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
}

type Model struct {
	env     *env.Env
	poller  *poller.Poller[model.Dashboard]
	state   poller.State[model.Dashboard]
	size    util.Size
	focused bool
}

func New(e *env.Env) *Model {
	return &Model{
		env:    e,
		poller: e.App.Dashboard(poller.WithOnChange(env.Notify[model.Dashboard](e, source))),
	}
}

func (m *Model) Init() tea.Cmd {
	m.poller.Start(m.env.Ctx)
	m.state = m.poller.State()
	return windowtitle.Set(i18n.T("menu.dashboard"))
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	switch msg := msg.(type) {
	case env.ChangedMsg:
		if msg.Source == source {
			m.state = m.poller.State()
		}
	case tea.KeyMsg:
		if m.focused && key.Matches(msg, DefaultKeyMap.Refresh) {
			m.poller.Refresh()
		}
	}
	return nil
}

func (m *Model) View() string {
	bar := livebar.Render(livebar.FromState(m.state, m.poller.Interval(), ""))
	if !m.state.HasData {
		return lipgloss.JoinVertical(lipgloss.Left, bar, "", styles.Dim.Render(i18n.T("view.no_data")))
	}
	d := m.state.Data
	return lipgloss.JoinVertical(lipgloss.Left,
		bar,
		"",
		m.cards(d),
		"",
		styles.Title.Render(i18n.T("dashboard.activity")),
		activityBars(d.ActivityData, max(m.size.Width-24, 10)),
		"",
		styles.Title.Render(i18n.T("dashboard.threats")),
		recentThreats(d.RecentThreats, m.size.Width),
	)
}

func (m *Model) cards(d model.Dashboard) string {
	card := func(label string, value int, style lipgloss.Style) string {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.Dim.Render(label),
			style.Bold(true).Render(fmt.Sprint(value)),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(i18n.T("dashboard.total_alerts"), d.TotalAlerts, styles.Warning),
		card(i18n.T("dashboard.critical_alerts"), d.CriticalAlerts, styles.Bad),
		card(i18n.T("dashboard.login_attempts"), d.LoginAttempts, styles.Good),
		card(i18n.T("dashboard.failed_logins"), d.FailedLogins, styles.Bad),
	)
}

// activityBars renders one line per day: successful logins as green blocks
// followed by failed logins as red blocks, scaled to width.
func activityBars(points []model.ActivityPoint, width int) string {
	if len(points) == 0 {
		return styles.Dim.Render(i18n.T("view.no_data"))
	}
	peak := views.MaxActivity(points)
	return lipgloss.JoinVertical(lipgloss.Left, slicest.Map(points, func(p model.ActivityPoint) string {
		ok := p.Successful * width / peak
		bad := p.Failed * width / peak
		return fmt.Sprintf("%-10s %s%s %s",
			p.Date,
			styles.Good.Render(strings.Repeat("█", ok)),
			styles.Bad.Render(strings.Repeat("█", bad)),
			styles.Dim.Render(fmt.Sprintf("%d/%d", p.Successful, p.Failed)),
		)
	})...)
}

func recentThreats(alerts []model.Alert, width int) string {
	if len(alerts) == 0 {
		return styles.Good.Render(i18n.T("dashboard.no_threats"))
	}
	if len(alerts) > maxThreats {
		alerts = alerts[:maxThreats]
	}
	return lipgloss.JoinVertical(lipgloss.Left, slicest.Map(alerts, func(a model.Alert) string {
		line := fmt.Sprintf("%s  %-8s  %s", a.Timestamp.Format(styles.TimeFormat), styles.Severity(a.Severity), a.Message)
		return lipgloss.NewStyle().MaxWidth(max(width, 20)).Render(line)
	})...)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap
}

func (m *Model) Blur() { m.focused = false }

// Unmount stops polling.
func (m *Model) Unmount() { m.poller.Stop() }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
var _ util.Unmounter = (*Model)(nil)
