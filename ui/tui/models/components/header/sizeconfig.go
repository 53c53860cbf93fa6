// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/ui/tui/models/components/stack"
	"github.com/secwatch/console/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate hides the banner on terminals too short to spare it.
func (s *sizeConfig) Calculate(_ util.Model, _ int, total_size int) int {
	if total_size >= 10+1+lipgloss.Height(logo) {
		return lipgloss.Height(logo) + 1
	}
	return 0
}
