// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package root lays out the console and routes between views. The shown
// view always follows from the session and the requested route, so session
// changes and navigation requests may arrive in any order.
package root // import "github.com/secwatch/console/ui/tui/models/views/root"

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/buildvars"
	"github.com/secwatch/console/internal/guard"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/logging"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/session"
	"github.com/secwatch/console/ui/tui/models/components/header"
	"github.com/secwatch/console/ui/tui/models/components/menu"
	"github.com/secwatch/console/ui/tui/models/components/popup"
	"github.com/secwatch/console/ui/tui/models/components/router"
	"github.com/secwatch/console/ui/tui/models/components/stack"
	windowtitle "github.com/secwatch/console/ui/tui/models/helpers/title"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/footer"
	"github.com/secwatch/console/ui/tui/models/views/loading"
	"github.com/secwatch/console/ui/tui/util"
)

const title string = "SecWatch"

const (
	focusMenu    = stack.Focus(0)
	focusContent = stack.Focus(1)
)

type sessionChangedMsg struct{}

type navigateMsg struct{ route session.Route }

type loggedOutMsg struct{}

type Model struct {
	env          *env.Env
	stack        *stack.Model
	content      *stack.Model
	injector     *popup.Injector
	header       *header.Model
	menu         *menu.Model
	footer       *footer.Model
	router       *router.Router
	routerCtl    router.Controll
	titleHandler *windowtitle.TitleHandler

	requested string
	shown     string
	authed    bool
	admin     bool
	unsub     func()
	cancel    context.CancelFunc
	closed    bool
}

// New builds the root model. cancel is called when the program quits.
func New(e *env.Env, cancel context.CancelFunc) *Model {
	_header := header.New(e.App.API.BaseURL())
	_menu := menu.New()
	_footer := footer.New(&BaseKeyMap)
	_router, ctl := router.New(util.ModelPointer(loading.New()))

	content := stack.New(
		stack.WithOrientation(stack.Horizontal),
		stack.WithFocus(focusContent),
		stack.WithItem(util.ModelPointer(_menu), menu.SizeConfig),
		stack.WithItem(util.ModelPointer(_router), stack.VariableSize(1)),
	)
	injector := popup.NewInjector(util.ModelPointer(content))

	version := "unknown version"
	if len(buildvars.Version) > 0 {
		version = buildvars.Version
	}

	m := &Model{
		env: e,
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.Focus(1)),
			stack.WithItem(util.ModelPointer(_header), header.SizeConfig),
			stack.WithItem(util.ModelPointer(injector), stack.VariableSize(1)),
			stack.WithItem(util.ModelPointer(_footer), footer.SizeConfig),
		),
		content:      content,
		injector:     injector,
		header:       _header,
		menu:         _menu,
		footer:       _footer,
		router:       _router,
		routerCtl:    ctl,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, version), " | "),
		requested:    routeDashboard,
		shown:        routeLoading,
		cancel:       cancel,
	}

	e.App.Session.SetNavigator(session.NavigatorFunc(func(r session.Route) {
		e.Bridge.Post(navigateMsg{route: r})
	}))
	return m
}

func (m *Model) Init() tea.Cmd {
	m.unsub = m.env.App.Session.Subscribe(func(model.Session) {
		m.env.Bridge.Post(sessionChangedMsg{})
	})

	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)
	checkCmd := env.Run(m.env, func(ctx context.Context) error {
		m.env.App.Session.CheckAuth(ctx)
		return nil
	}, func(error) tea.Msg { return sessionChangedMsg{} })

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd, checkCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// handle keys messages
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, BaseKeyMap.Exit):
			m.Shutdown()
			return m, tea.Quit
		case key.Matches(msg, BaseKeyMap.Menu):
			return m, m.toggleMenu()
		case key.Matches(msg, BaseKeyMap.Help) && !m.typing():
			m.footer.ToggleExpanded()
			return m, nil
		}
		return m, m.stack.Update(msg)
	}

	switch msg := msg.(type) {
	case sessionChangedMsg:
		return m, m.sync()
	case navigateMsg:
		m.requested = routeLogin
		if msg.route == session.RouteDashboard {
			m.requested = routeDashboard
		}
		return m, m.sync()
	case menu.ItemSelected:
		return m, m.selectItem(msg.Id)
	case loggedOutMsg:
		return m, footer.Status(i18n.T("status.logged_out"))
	}

	// handle window title messages
	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

func (m *Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

// Shutdown stops the background work of the shown view and the session
// subscription.
func (m *Model) Shutdown() {
	if m.closed {
		return
	}
	m.closed = true
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
	m.router.Unmount()
	if m.cancel != nil {
		m.cancel()
	}
}

// sync brings header, menu and shown view in line with the session.
func (m *Model) sync() tea.Cmd {
	s := m.env.App.Session.Session()
	m.header.SetSession(s)

	var cmds []tea.Cmd
	if authed, admin := s.IsAuthenticated(), s.IsAdmin(); authed != m.authed || admin != m.admin {
		m.authed, m.admin = authed, admin
		m.menu.SetItems(m.shown, menuItems(s)...)
		if !authed {
			cmds = append(cmds, m.focus(focusContent))
		}
	}

	next, decision := target(s, m.requested)
	if decision == guard.RedirectDefault {
		m.requested = next
	}
	if next != m.shown {
		logging.Debugf("tui: %s -> %s (requested %s, session %s)", m.shown, next, m.requested, s.Status)
		m.shown = next
		m.menu.Select(next)
		view := routes[next].build(m.env)
		cmds = append(cmds, m.routerCtl.Change(&view))
	}
	return tea.Batch(cmds...)
}

func (m *Model) selectItem(id string) tea.Cmd {
	if id == menuLogout {
		return env.Run(m.env, func(ctx context.Context) error {
			m.env.App.Session.Logout(ctx)
			return nil
		}, func(error) tea.Msg { return loggedOutMsg{} })
	}
	if _, ok := routes[id]; !ok {
		return nil
	}
	m.requested = id
	return tea.Batch(m.sync(), m.focus(focusContent))
}

func (m *Model) toggleMenu() tea.Cmd {
	if len(m.menu.Items) == 0 || m.injector.IsOpen() {
		return nil
	}
	if m.content.Focused() == focusMenu {
		return m.focus(focusContent)
	}
	return m.focus(focusMenu)
}

func (m *Model) focus(f stack.Focus) tea.Cmd {
	if m.content.Focused() == f {
		return nil
	}
	cmd, keyMap := m.content.SetFocus(f)
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

// typing reports whether keys go to a text input.
func (m *Model) typing() bool {
	return m.injector.IsOpen() || (m.content.Focused() == focusContent && routes[m.shown].typing)
}

// Shown returns the id of the view currently routed to.
func (m *Model) Shown() string { return m.shown }
