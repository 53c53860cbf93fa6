// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package simulator drives the backend's synthetic traffic generator.
package simulator // import "github.com/secwatch/console/ui/tui/models/views/simulator"

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/views"
	"github.com/secwatch/console/ui/tui/models/helpers/form"
	forminput "github.com/secwatch/console/ui/tui/models/helpers/form/input"
	windowtitle "github.com/secwatch/console/ui/tui/models/helpers/title"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/styles"
	"github.com/secwatch/console/ui/tui/util"
	"github.com/secwatch/console/util/slicest"
)

const formWidth = 60

type KeyMap struct {
	Login  key.Binding
	Threat key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Login, k.Threat} }
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var DefaultKeyMap = KeyMap{
	Login:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "single login")),
	Threat: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "single threat")),
}

type settingsInput struct {
	TotalAttempts    int     `mapstructure:"total_attempts"`
	ThreatPercentage float64 `mapstructure:"threat_percentage"`
	Usernames        string  `mapstructure:"usernames"`
	Locations        string  `mapstructure:"locations"`
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	return slicest.Filter(
		slicest.Map(strings.Split(s, ","), strings.TrimSpace),
		func(v string) bool { return v != "" },
	)
}

type submitMsg struct {
	in  settingsInput
	err error
}

type resultMsg struct {
	res model.SimulationResult
	err error
}

type Model struct {
	env       *env.Env
	simulator *views.Simulator
	form      *form.Form[settingsInput]
	size      util.Size
	busy      bool
	result    *resultMsg
	now       func() time.Time
}

func New(e *env.Env) *Model {
	m := &Model{env: e, simulator: e.App.Simulator(), now: time.Now}
	def := views.DefaultSettings(m.now())
	m.form = form.New(
		form.WithRow[settingsInput](
			form.Field{ID: "total_attempts", Input: forminput.NewText(i18n.T("sim.total"), "", forminput.WithValue(strconv.Itoa(def.TotalAttempts)))},
			form.Field{ID: "threat_percentage", Input: forminput.NewText(i18n.T("sim.threat_pct"), "", forminput.WithValue(strconv.FormatFloat(def.ThreatPercentage, 'f', -1, 64)))},
		),
		form.WithInput[settingsInput]("usernames", forminput.NewText(i18n.T("sim.usernames"), "", forminput.WithValue(strings.Join(def.Usernames, ", ")))),
		form.WithInput[settingsInput]("locations", forminput.NewText(i18n.T("sim.locations"), "", forminput.WithValue(strings.Join(def.Locations, ", ")))),
		form.WithInput[settingsInput]("", forminput.NewButton(i18n.T("sim.generate"))),
		form.WithOnSubmit(func(in settingsInput, err error) tea.Cmd {
			return func() tea.Msg { return submitMsg{in: in, err: err} }
		}),
	)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), windowtitle.Set(i18n.T("menu.simulator")))
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return m.form.Update(tea.WindowSizeMsg{Width: formWidth, Height: m.size.Height})
	}

	switch msg := msg.(type) {
	case submitMsg:
		if msg.err != nil {
			m.result = &resultMsg{err: msg.err}
			return nil
		}
		return m.generate(msg.in)
	case resultMsg:
		m.busy = false
		m.result = &msg
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Login):
			return m.single(false)
		case key.Matches(msg, DefaultKeyMap.Threat):
			return m.single(true)
		}
	}
	if m.busy {
		return nil
	}
	return m.form.Update(msg)
}

// settings converts the form input into a request spanning the last day.
func (m *Model) settings(in settingsInput) model.SimulationSettings {
	s := views.DefaultSettings(m.now())
	s.TotalAttempts = in.TotalAttempts
	s.ThreatPercentage = in.ThreatPercentage
	if names := splitList(in.Usernames); len(names) > 0 {
		s.Usernames = names
	}
	if locs := splitList(in.Locations); len(locs) > 0 {
		s.Locations = locs
	}
	return s
}

func (m *Model) generate(in settingsInput) tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy, m.result = true, nil
	settings := m.settings(in)
	return func() tea.Msg {
		res, err := m.simulator.Generate(m.env.Ctx, settings)
		return resultMsg{res: res, err: err}
	}
}

func (m *Model) single(threat bool) tea.Cmd {
	if m.busy {
		return nil
	}
	in, err := m.form.Get()
	if err != nil {
		m.result = &resultMsg{err: err}
		return nil
	}
	username := "admin"
	if names := splitList(in.Usernames); len(names) > 0 {
		username = names[0]
	}
	m.busy, m.result = true, nil
	return func() tea.Msg {
		res, err := m.simulator.Login(m.env.Ctx, model.LoginSimulation{IsThreat: threat, Username: username})
		return resultMsg{res: res, err: err}
	}
}

func (m *Model) View() string {
	lines := []string{
		styles.Title.Render(i18n.T("sim.title")),
		styles.Dim.Render(i18n.T("sim.hint")),
		"",
		m.form.View(),
		"",
	}
	switch {
	case m.busy:
		lines = append(lines, styles.Dim.Render(i18n.T("sim.running")))
	case m.result != nil && m.result.err != nil:
		lines = append(lines, styles.Bad.Width(formWidth).Render(m.result.err.Error()))
	case m.result != nil:
		text := m.result.res.Message
		if m.result.res.ThreatCount > 0 {
			text += " " + i18n.T("sim.threats", m.result.res.ThreatCount)
		}
		lines = append(lines, styles.Good.Width(formWidth).Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	cmd, km := m.form.Focus()
	return cmd, util.MergeKeyMaps(km, DefaultKeyMap)
}

func (m *Model) Blur() { m.form.Blur() }

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
