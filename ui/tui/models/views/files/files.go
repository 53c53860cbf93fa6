// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package files shows file access activity.
package files // import "github.com/secwatch/console/ui/tui/models/views/files"

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
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

const source = "files"

type KeyMap struct {
	Action    key.Binding
	Anomalous key.Binding
	Clear     key.Binding
	Refresh   key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Action, k.Anomalous, k.Clear, k.Refresh}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var DefaultKeyMap = KeyMap{
	Action:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "action")),
	Anomalous: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "anomalous only")),
	Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
}

type Model struct {
	env     *env.Env
	list    *views.List[[]model.FileActivity]
	state   poller.State[[]model.FileActivity]
	table   *datatable.Model
	size    util.Size
	focused bool
}

func New(e *env.Env) *Model {
	return &Model{
		env:  e,
		list: e.App.Files(views.OnChange(env.Notify[[]model.FileActivity](e, source))),
		table: datatable.New(
			datatable.Column{Title: i18n.T("col.time"), Weight: 4},
			datatable.Column{Title: i18n.T("col.user"), Weight: 4},
			datatable.Column{Title: i18n.T("col.action"), Weight: 2},
			datatable.Column{Title: i18n.T("col.file"), Weight: 6},
			datatable.Column{Title: i18n.T("col.size"), Weight: 2},
			datatable.Column{Title: i18n.T("col.anomalous"), Weight: 2},
		),
	}
}

func (m *Model) Init() tea.Cmd {
	m.list.Start(m.env.Ctx)
	m.refreshState()
	return windowtitle.Set(i18n.T("menu.files"))
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
		case key.Matches(msg, DefaultKeyMap.Action):
			m.list.SetFilter(views.KeyAction, env.Cycle(model.FileActions, m.list.Criteria().Get(views.KeyAction)))
		case key.Matches(msg, DefaultKeyMap.Anomalous):
			next := "true"
			if m.list.Criteria().Get(views.KeyAnomalous) != "" {
				next = ""
			}
			m.list.SetFilter(views.KeyAnomalous, next)
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
	m.table.SetRows(slicest.Map(m.state.Data, func(f model.FileActivity) []string {
		name := f.FileName
		if f.FilePath != "" {
			name = f.FilePath
		}
		anomalous := ""
		if f.IsAnomalous {
			anomalous = "!"
		}
		return []string{
			f.Timestamp.Format(styles.TimeFormat),
			f.UserEmail,
			f.Action,
			name,
			HumanSize(f.FileSize),
			anomalous,
		}
	}))
}

// HumanSize formats a byte count with binary units.
func HumanSize(n int64) string {
	return humanize.IBytes(uint64(max(n, 0)))
}

func (m *Model) summary() string {
	stats := views.FileCounts(m.state.Data)
	parts := []string{
		i18n.T("files.total", stats.Total),
		styles.Warning.Render(i18n.T("files.anomalous_count", stats.Anomalous)),
	}
	for _, a := range model.FileActions {
		if n := stats.ByAction[a]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", a, n))
		}
	}
	return strings.Join(parts, "  ")
}

func (m *Model) View() string {
	bar := livebar.Render(livebar.FromState(m.state, m.list.Interval(), m.list.Criteria().String()))
	if !m.state.HasData {
		return lipgloss.JoinVertical(lipgloss.Left, bar, "", styles.Dim.Render(i18n.T("view.no_data")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, m.summary(), m.table.View())
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
