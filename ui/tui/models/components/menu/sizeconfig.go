// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/ui/tui/models/components/stack"
	"github.com/secwatch/console/ui/tui/util"
)

const min_size int = 18
const max_size int = 32

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

func (s *sizeConfig) Calculate(model util.Model, remaining_size int, _ int) int {
	if menu, ok := model.(*Model); ok {
		if len(menu.Items) == 0 {
			return 0
		}
		return util.Clamp(
			min_size,
			lipgloss.Width(menu.view())+2,
			min(max_size, remaining_size),
		)
	}
	return min_size
}
