// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"math"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/ui/tui/util"
	"github.com/secwatch/console/util/slicest"
)

// SizeConfig decides an item's extent along the stack's axis. Items are
// sized in ascending Priority and each sees what earlier items left over.
type SizeConfig interface {
	Priority() int
	Calculate(model util.Model, remaining int, total int) int
}

type fixed int

// StaticSize always takes n cells, or what is left if that is less.
func StaticSize(n int) SizeConfig { return fixed(n) }

func (f fixed) Priority() int                      { return 0 }
func (f fixed) Calculate(util.Model, int, int) int { return int(f) }

type weighted int

// VariableSize shares the space left after every other item among all
// variable items, in proportion to their weights.
func VariableSize(weight int) SizeConfig { return weighted(weight) }

func (w weighted) Priority() int { return math.MaxInt }

// Calculate is used when the item is the only variable one.
func (w weighted) Calculate(_ util.Model, remaining int, _ int) int { return remaining }

func (s *Model) axis() int {
	if s.Orientation == Horizontal {
		return s.size.Width
	}
	return s.size.Height
}

// layout assigns every item its size for the current stack size.
func (s *Model) layout() {
	total := s.axis()
	remaining := max(total-s.Gap*(len(s.items)-1), 0)

	order := make([]int, len(s.items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return s.items[a].SizeConfig.Priority() - s.items[b].SizeConfig.Priority()
	})

	weightLeft := slicest.Reduce(s.items, func(it Item, sum int) int {
		if w, ok := it.SizeConfig.(weighted); ok {
			return sum + int(w)
		}
		return sum
	})

	for _, i := range order {
		it := &s.items[i]
		var n int
		if w, ok := it.SizeConfig.(weighted); ok && weightLeft > 0 {
			// integer share; the last variable item takes the rounding rest
			n = remaining * int(w) / weightLeft
			weightLeft -= int(w)
		} else {
			n = it.SizeConfig.Calculate(*it.Model, remaining, total)
		}
		n = util.Clamp(0, n, remaining)
		remaining -= n
		it.prev, it.size = it.size, n
	}
}

// resize sends each item whose size changed, or every item when force is
// set, a WindowSizeMsg for its slot.
func (s *Model) resize(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	for _, it := range s.items {
		if !force && it.size == it.prev {
			continue
		}
		msg := tea.WindowSizeMsg{Width: s.size.Width, Height: s.size.Height}
		if s.Orientation == Horizontal {
			msg.Width = it.size
		} else {
			msg.Height = it.size
		}
		cmds = append(cmds, (*it.Model).Update(msg))
	}
	return cmds
}
