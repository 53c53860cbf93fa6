// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package slicest

import (
	"strconv"
	"testing"
)

func TestMapReduceFilter(t *testing.T) {
	in := []int{1, 2, 3, 4}

	strs := Map(in, strconv.Itoa)
	if len(strs) != 4 || strs[3] != "4" {
		t.Fatalf("unexpected map result %v", strs)
	}
	if sum := Reduce(in, func(v, acc int) int { return acc + v }); sum != 10 {
		t.Fatalf("expected 10, got %d", sum)
	}
	if got := ReduceD(in, 100, func(v, acc int) int { return acc - v }); got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
	even := Filter(in, func(v int) bool { return v%2 == 0 })
	if len(even) != 2 || even[0] != 2 {
		t.Fatalf("unexpected filter result %v", even)
	}
	idx := MapI(in, func(i, v int) int { return i * v })
	if idx[3] != 12 {
		t.Fatalf("unexpected indexed map %v", idx)
	}
}
