// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/secwatch/console/internal/api"
	"github.com/secwatch/console/internal/filter"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/internal/poller"
	"github.com/secwatch/console/internal/views"
	"github.com/secwatch/console/util/slicest"
	"github.com/spf13/cobra"
)

var watchTargets = []string{"alerts", "logins", "files", "dashboard"}

type watchOptions struct {
	out      io.Writer
	interval time.Duration
	count    int
	filters  map[string]string
}

func (o watchOptions) criteria() filter.Criteria {
	keys := make([]string, 0, len(o.filters))
	for k := range o.filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var c filter.Criteria
	for _, k := range keys {
		c = c.With(k, o.filters[k])
	}
	return c
}

func newWatchCmd() *cobra.Command {
	var o watchOptions
	cmd := &cobra.Command{
		Use:       "watch <alerts|logins|files|dashboard>",
		Short:     "Poll a view and print every refresh",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: watchTargets,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			if _, err := requireSession(cmd.Context(), false); err != nil {
				return err
			}
			if o.interval > 0 {
				application.Config.Poll.Alerts = o.interval
				application.Config.Poll.Logins = o.interval
				application.Config.Poll.Files = o.interval
				application.Config.Poll.Dashboard = o.interval
			}

			o.out = cmd.ErrOrStderr()
			// cancelled on return so pending deliveries unblock
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			switch args[0] {
			case "alerts":
				return watchList(ctx, o, func(fn func(poller.State[[]model.Alert])) *views.List[[]model.Alert] {
					return application.Alerts(views.OnChange(fn), views.WithCriteria[[]model.Alert](o.criteria())).List
				}, func(s poller.State[[]model.Alert]) error {
					return p.result(s.Data, func() { p.table(alertHeaders(), slicest.Map(s.Data, alertRow)) })
				})
			case "logins":
				return watchList(ctx, o, func(fn func(poller.State[[]model.LoginActivity])) *views.List[[]model.LoginActivity] {
					return application.Logins(views.OnChange(fn), views.WithCriteria[[]model.LoginActivity](o.criteria()))
				}, func(s poller.State[[]model.LoginActivity]) error {
					return p.result(s.Data, func() { p.table(loginHeaders(), slicest.Map(s.Data, loginRow)) })
				})
			case "files":
				return watchList(ctx, o, func(fn func(poller.State[[]model.FileActivity])) *views.List[[]model.FileActivity] {
					return application.Files(views.OnChange(fn), views.WithCriteria[[]model.FileActivity](o.criteria()))
				}, func(s poller.State[[]model.FileActivity]) error {
					return p.result(s.Data, func() { p.table(fileHeaders(), slicest.Map(s.Data, fileRow)) })
				})
			default:
				states := make(chan poller.State[model.Dashboard], 1)
				d := application.Dashboard(poller.WithOnChange(forward(ctx, states)))
				return drain(ctx, o, d.Start, d.Stop, d.Interval(), states, func(s poller.State[model.Dashboard]) error {
					return p.result(s.Data, func() { renderDashboard(p, s.Data) })
				})
			}
		},
	}
	cmd.Flags().DurationVar(&o.interval, "interval", 0, "Refresh interval (default from the poll section of the config)")
	cmd.Flags().IntVar(&o.count, "count", 0, "Stop after this many refreshes (0 runs until interrupted)")
	cmd.Flags().StringToStringVar(&o.filters, "filter", nil, "Backend filter, e.g. severity=high or is_anomalous=true")
	return cmd
}

// watchList starts the list built by build and renders each fetched state.
func watchList[T any](ctx context.Context, o watchOptions, build func(func(poller.State[T])) *views.List[T], render func(poller.State[T]) error) error {
	states := make(chan poller.State[T], 1)
	l := build(forward(ctx, states))
	return drain(ctx, o, l.Start, l.Stop, l.Interval(), states, render)
}

// forward returns an onChange callback feeding states until ctx is done.
func forward[T any](ctx context.Context, states chan<- poller.State[T]) func(poller.State[T]) {
	return func(s poller.State[T]) {
		if s.IsLoading {
			return
		}
		select {
		case states <- s:
		case <-ctx.Done():
		}
	}
}

func drain[T any](ctx context.Context, o watchOptions, start func(context.Context), stop func(), interval time.Duration, states <-chan poller.State[T], render func(poller.State[T]) error) error {
	if interval <= 0 {
		return fmt.Errorf("watch needs a positive --interval")
	}
	start(ctx)
	defer stop()

	seen := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-states:
			if s.Err != nil {
				if api.IsExpired(s.Err) {
					return s.Err
				}
				fmt.Fprintf(o.out, "%s  %v\n", time.Now().Format(time.TimeOnly), s.Err)
				continue
			}
			if !s.HasData {
				continue
			}
			fmt.Fprintln(o.out, i18n.T("live.updated", s.LastFetchedAt.Format(time.TimeOnly)))
			if err := render(s); err != nil {
				return err
			}
			seen++
			if o.count > 0 && seen >= o.count {
				return nil
			}
		}
	}
}
