// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/internal/app"
	"github.com/secwatch/console/internal/logging"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/root"
	"github.com/secwatch/console/ui/tui/util"
)

// Run starts the console on the alternate screen and blocks until the
// operator quits. Log output is redirected to logFile (or the default log
// file) because the terminal belongs to the UI.
func Run(ctx context.Context, a *app.App, logFile string) error {
	if logFile == "" {
		logFile = logging.DefaultFile()
	}
	closer, err := logging.ToFile(logFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e := &env.Env{Ctx: ctx, App: a, Bridge: util.NewBridge()}
	model := root.New(e, cancel)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	e.Bridge.Attach(p)

	logging.Infof("tui: started against %s", a.API.BaseURL())
	_, err = p.Run()
	model.Shutdown()
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
