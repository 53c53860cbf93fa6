// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package livebar renders the one-line "live monitoring" status shown above
// every polled view: refresh schedule, last successful fetch, loading and
// the last error.
package livebar // import "github.com/secwatch/console/ui/tui/models/components/livebar"

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/poller"
)

var (
	liveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5CB85C")).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9534F"))
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0AD4E"))
)

// Info is the presentation-independent part of a poller.State.
type Info struct {
	Interval      time.Duration
	LastFetchedAt time.Time
	IsLoading     bool
	Err           error
	Filter        string
}

// FromState extracts Info from s.
func FromState[T any](s poller.State[T], interval time.Duration, filter string) Info {
	return Info{
		Interval:      interval,
		LastFetchedAt: s.LastFetchedAt,
		IsLoading:     s.IsLoading,
		Err:           s.Err,
		Filter:        filter,
	}
}

// Render returns the status line.
func Render(i Info) string {
	var parts []string
	if i.Interval > 0 {
		parts = append(parts, liveStyle.Render("● "+i18n.T("live.every", i.Interval.String())))
	} else {
		parts = append(parts, pausedStyle.Render("○ "+i18n.T("live.manual")))
	}
	if i.LastFetchedAt.IsZero() {
		parts = append(parts, dimStyle.Render(i18n.T("live.never")))
	} else {
		parts = append(parts, dimStyle.Render(i18n.T("live.updated", i.LastFetchedAt.Format("15:04:05"))))
	}
	if i.IsLoading {
		parts = append(parts, dimStyle.Render("⟳ "+i18n.T("live.loading")))
	}
	if i.Filter != "" {
		parts = append(parts, filterStyle.Render(i18n.T("live.filter", i.Filter)))
	}
	line := strings.Join(parts, dimStyle.Render(" · "))
	if i.Err != nil {
		line = lipgloss.JoinVertical(lipgloss.Left, line, errorStyle.Render("⚠ "+i.Err.Error()))
	}
	return line
}
