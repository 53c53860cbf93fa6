// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// printer renders command results as a table or as JSON.
type printer struct {
	w    io.Writer
	json bool
}

func newPrinter(cmd *cobra.Command) (*printer, error) {
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "", "table":
		return &printer{w: cmd.OutOrStdout()}, nil
	case "json":
		return &printer{w: cmd.OutOrStdout(), json: true}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want table or json)", format)
	}
}

// result prints v as JSON, or calls human to render it for a terminal.
func (p *printer) result(v any, human func()) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	human()
	return nil
}

func (p *printer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(p.w, t.String())
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
