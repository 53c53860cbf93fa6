// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/secwatch/console/ui/tui/models/components/stack"
	"github.com/secwatch/console/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

func (s *sizeConfig) Calculate(model util.Model, _ int, _ int) int {
	if footer, ok := model.(*Model); ok {
		return lipgloss.Height(footer.view()) + 1
	}
	return 2
}
