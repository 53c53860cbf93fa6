// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the interactive terminal console. Views own their
// pollers; the shared data layer lives in internal/app.
package tui // import "github.com/secwatch/console/ui/tui"
