// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package alerts

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/views"
	"github.com/secwatch/console/ui/tui/models/components/confirm"
	"github.com/secwatch/console/ui/tui/models/views/env"
	"github.com/secwatch/console/ui/tui/models/views/footer"
	"github.com/secwatch/console/ui/tui/models/views/styles"
)

// copyToClipboard is swapped in tests; CI machines have no clipboard.
var copyToClipboard = clipboard.WriteAll

type resolvedMsg struct {
	id  int
	err error
}

// Summary renders an alert as plain text for the clipboard.
func Summary(a model.Alert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Alert #%d [%s] %s\n", a.ID, a.Severity, a.Type)
	fmt.Fprintf(&b, "Time: %s\n", a.Timestamp.Format(styles.TimeFormat))
	if a.SourceIP != "" {
		fmt.Fprintf(&b, "Source: %s\n", a.SourceIP)
	}
	if a.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", a.Location)
	}
	fmt.Fprintf(&b, "Resolved: %t\n", a.Resolved)
	b.WriteString(a.Message)
	return b.String()
}

func copyAlert(a model.Alert) tea.Cmd {
	if err := copyToClipboard(Summary(a)); err != nil {
		return footer.Error(fmt.Errorf("%s: %w", i18n.T("alerts.copy_failed"), err))
	}
	return footer.Status(i18n.T("alerts.copied", a.ID))
}

// confirmResolve asks before resolving a; resolved alerts are left alone.
func confirmResolve(e *env.Env, list *views.Alerts, a model.Alert) tea.Cmd {
	if a.Resolved {
		return footer.Status(i18n.T("alerts.already_resolved", a.ID))
	}
	return confirm.Open(i18n.T("alerts.confirm_resolve", a.ID), resolve(e, list, a.ID))
}

func resolve(e *env.Env, list *views.Alerts, id int) tea.Cmd {
	return env.Run(e, func(ctx context.Context) error {
		return list.Resolve(ctx, id)
	}, func(err error) tea.Msg { return resolvedMsg{id: id, err: err} })
}

func handleResolved(msg resolvedMsg) tea.Cmd {
	if msg.err != nil {
		return footer.Error(msg.err)
	}
	return footer.Status(i18n.T("alerts.resolved", msg.id))
}
