// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package styles holds the colours shared by the data views.
package styles // import "github.com/secwatch/console/ui/tui/models/views/styles"

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/internal/model"
)

var (
	Title   = lipgloss.NewStyle().Bold(true)
	Dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	Good    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5CB85C"))
	Bad     = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9534F"))
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0AD4E"))
)

// Severity colours a severity label.
func Severity(s string) string {
	switch s {
	case model.SeverityCritical:
		return Bad.Bold(true).Render(s)
	case model.SeverityHigh:
		return Bad.Render(s)
	case model.SeverityMedium:
		return Warning.Render(s)
	default:
		return Dim.Render(s)
	}
}

// TimeFormat is used for timestamps in tables.
const TimeFormat = "2006-01-02 15:04:05"
