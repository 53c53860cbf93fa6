// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package alerts

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/views"
	"github.com/secwatch/console/ui/tui/models/components/router"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/styles"
	"github.com/secwatch/console/ui/tui/util"
)

// detail shows one alert. It is pushed on top of the list and popped with esc.
type detail struct {
	env    *env.Env
	list   *views.Alerts
	alert  model.Alert
	router router.Controll
	size   util.Size
}

func newDetail(e *env.Env, list *views.Alerts, a model.Alert, r router.Controll) *detail {
	return &detail{env: e, list: list, alert: a, router: r}
}

func (d *detail) Init() tea.Cmd { return nil }

func (d *detail) Update(msg tea.Msg) tea.Cmd {
	if d.size.Update(msg) {
		return nil
	}
	switch msg := msg.(type) {
	case resolvedMsg:
		if msg.err == nil && msg.id == d.alert.ID {
			d.alert.Resolved = true
		}
		return handleResolved(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultDetailKeyMap.Back):
			return d.router.Pop(1)
		case key.Matches(msg, DefaultDetailKeyMap.Resolve):
			return confirmResolve(d.env, d.list, d.alert)
		case key.Matches(msg, DefaultDetailKeyMap.Copy):
			return copyAlert(d.alert)
		}
	}
	return nil
}

func (d *detail) View() string {
	a := d.alert
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			styles.Dim.Width(12).Render(label),
			value,
		)
	}
	status := styles.Warning.Render(i18n.T("alerts.open"))
	if a.Resolved {
		status = styles.Good.Render(i18n.T("alerts.resolved_label"))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(fmt.Sprintf("Alert #%d", a.ID)),
		"",
		row(i18n.T("col.severity"), styles.Severity(a.Severity)),
		row(i18n.T("col.type"), a.Type),
		row(i18n.T("col.time"), a.Timestamp.Format(styles.TimeFormat)),
		row(i18n.T("col.source"), a.SourceIP),
		row(i18n.T("col.location"), a.Location),
		row(i18n.T("col.status"), status),
		"",
		lipgloss.NewStyle().Width(max(d.size.Width-2, 20)).Render(a.Message),
	)
}

func (d *detail) Focus() (tea.Cmd, help.KeyMap) { return nil, DefaultDetailKeyMap }
func (d *detail) Blur()                         {}

// *detail implements util.Model
var _ util.Model = (*detail)(nil)
