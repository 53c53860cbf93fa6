// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for SecWatch using Cobra.
// It wires configuration and the shared services from internal/app and
// exposes the monitoring API as scriptable commands. Running without a
// subcommand launches the interactive TUI.
package cli // import "github.com/secwatch/console/ui/cli"
