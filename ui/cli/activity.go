// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/secwatch/console/internal/filter"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/views"
	"github.com/secwatch/console/util/slicest"
	"github.com/spf13/cobra"
)

const timeFormat = "2006-01-02 15:04:05"

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the monitoring summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			if _, err := requireSession(cmd.Context(), false); err != nil {
				return err
			}
			d, err := application.API.Dashboard(cmd.Context())
			if err != nil {
				return fmt.Errorf("load dashboard: %w", err)
			}
			return p.result(d, func() { renderDashboard(p, d) })
		},
	}
}

func renderDashboard(p *printer, d model.Dashboard) {
	p.table(
		[]string{i18n.T("dashboard.total_alerts"), i18n.T("dashboard.critical_alerts"), i18n.T("dashboard.login_attempts"), i18n.T("dashboard.failed_logins")},
		[][]string{{strconv.Itoa(d.TotalAlerts), strconv.Itoa(d.CriticalAlerts), strconv.Itoa(d.LoginAttempts), strconv.Itoa(d.FailedLogins)}},
	)
	if len(d.ActivityData) > 0 {
		p.line("%s", i18n.T("dashboard.activity"))
		p.table([]string{i18n.T("col.date"), i18n.T("logins.success"), i18n.T("logins.failed")},
			slicest.Map(d.ActivityData, func(a model.ActivityPoint) []string {
				return []string{a.Date, strconv.Itoa(a.Successful), strconv.Itoa(a.Failed)}
			}))
	}
	p.line("%s", i18n.T("dashboard.threats"))
	if len(d.RecentThreats) == 0 {
		p.line("  %s", i18n.T("dashboard.no_threats"))
		return
	}
	p.table(alertHeaders(), slicest.Map(d.RecentThreats, alertRow))
}

func alertHeaders() []string {
	return []string{"ID", i18n.T("col.severity"), i18n.T("col.type"), i18n.T("col.message"), i18n.T("col.source"), i18n.T("col.time"), i18n.T("col.status")}
}

func alertRow(a model.Alert) []string {
	status := i18n.T("alerts.open")
	if a.Resolved {
		status = i18n.T("alerts.resolved_label")
	}
	return []string{strconv.Itoa(a.ID), a.Severity, a.Type, a.Message, a.SourceIP, a.Timestamp.Format(timeFormat), status}
}

func newAlertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List and resolve security alerts",
	}

	var severity, resolved, search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List alerts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			if _, err := requireSession(cmd.Context(), false); err != nil {
				return err
			}
			c := filter.New(views.KeySeverity, severity, views.KeyResolved, resolved)
			alerts, err := application.API.Alerts(cmd.Context(), c.Query())
			if err != nil {
				return fmt.Errorf("list alerts: %w", err)
			}
			alerts = filter.Local(alerts, search, func(a model.Alert) []string {
				return []string{a.Type, a.Message, a.SourceIP, a.Location}
			})
			return p.result(alerts, func() {
				p.table(alertHeaders(), slicest.Map(alerts, alertRow))
				stats := views.AlertCounts(alerts)
				p.line("%s", i18n.T("alerts.summary", stats.Total, stats.Unresolved))
			})
		},
	}
	list.Flags().StringVar(&severity, "severity", "", "Only alerts of this severity ("+strings.Join(model.Severities, ", ")+")")
	list.Flags().StringVar(&resolved, "resolved", "", "Only resolved (true) or open (false) alerts")
	list.Flags().StringVar(&search, "search", "", "Case-insensitive text search over type, message and source")

	resolve := &cobra.Command{
		Use:   "resolve <id>...",
		Short: "Mark alerts resolved",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd.Context(), false); err != nil {
				return err
			}
			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid alert id %q", arg)
				}
				if err := application.API.ResolveAlert(cmd.Context(), id); err != nil {
					return fmt.Errorf("resolve alert %d: %w", id, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("alerts.resolved", id))
			}
			return nil
		},
	}

	cmd.AddCommand(list, resolve)
	return cmd
}

func loginRow(l model.LoginActivity) []string {
	result := i18n.T("logins.success")
	if !l.Success {
		result = i18n.T("logins.failed")
	}
	return []string{l.Timestamp.Format(timeFormat), l.UserEmail, l.IPAddress, l.Location(), result, yesNo(l.IsAnomalous)}
}

func newLoginsCmd() *cobra.Command {
	var anomalous bool
	var search string
	cmd := &cobra.Command{
		Use:   "logins",
		Short: "List login activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			if _, err := requireSession(cmd.Context(), false); err != nil {
				return err
			}
			var c filter.Criteria
			if anomalous {
				c = c.With(views.KeyAnomalous, "true")
			}
			logins, err := application.API.LoginActivities(cmd.Context(), c.Query())
			if err != nil {
				return fmt.Errorf("list logins: %w", err)
			}
			logins = filter.Local(logins, search, func(l model.LoginActivity) []string {
				return []string{l.UserEmail, l.IPAddress, l.Location()}
			})
			return p.result(logins, func() {
				p.table(loginHeaders(), slicest.Map(logins, loginRow))
				stats := views.LoginCounts(logins)
				p.line("%s  %s  %s", i18n.T("logins.total", stats.Total), i18n.T("logins.failed_count", stats.Failed), i18n.T("logins.anomalous_count", stats.Anomalous))
			})
		},
	}
	cmd.Flags().BoolVar(&anomalous, "anomalous", false, "Only anomalous logins")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive text search over user, IP and location")
	return cmd
}

func loginHeaders() []string {
	return []string{i18n.T("col.time"), i18n.T("col.user"), i18n.T("col.ip"), i18n.T("col.location"), i18n.T("col.result"), i18n.T("col.anomalous")}
}

func fileRow(f model.FileActivity) []string {
	name := f.FileName
	if f.FilePath != "" {
		name = f.FilePath
	}
	return []string{f.Timestamp.Format(timeFormat), f.UserEmail, f.Action, name, humanize.IBytes(uint64(max(f.FileSize, 0))), yesNo(f.IsAnomalous)}
}

func fileHeaders() []string {
	return []string{i18n.T("col.time"), i18n.T("col.user"), i18n.T("col.action"), i18n.T("col.file"), i18n.T("col.size"), i18n.T("col.anomalous")}
}

func newFilesCmd() *cobra.Command {
	var anomalous bool
	var action, search string
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List file access activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			if _, err := requireSession(cmd.Context(), false); err != nil {
				return err
			}
			c := filter.New(views.KeyAction, action)
			if anomalous {
				c = c.With(views.KeyAnomalous, "true")
			}
			files, err := application.API.FileActivities(cmd.Context(), c.Query())
			if err != nil {
				return fmt.Errorf("list file activity: %w", err)
			}
			files = filter.Local(files, search, func(f model.FileActivity) []string {
				return []string{f.UserEmail, f.FileName, f.FilePath}
			})
			return p.result(files, func() {
				p.table(fileHeaders(), slicest.Map(files, fileRow))
				stats := views.FileCounts(files)
				p.line("%s  %s", i18n.T("files.total", stats.Total), i18n.T("files.anomalous_count", stats.Anomalous))
			})
		},
	}
	cmd.Flags().BoolVar(&anomalous, "anomalous", false, "Only anomalous file access")
	cmd.Flags().StringVar(&action, "action", "", "Only this action ("+strings.Join(model.FileActions, ", ")+")")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive text search over user and file")
	return cmd
}
