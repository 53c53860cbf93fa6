// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package env

import "testing"

func TestCycle(t *testing.T) {
	opts := []string{"low", "high"}
	seq := []string{"low", "high", "", "low"}
	cur := ""
	for _, want := range seq {
		cur = Cycle(opts, cur)
		if cur != want {
			t.Fatalf("expected %q, got %q", want, cur)
		}
	}
	if Cycle(opts, "unknown") != "low" {
		t.Fatal("unknown value must restart the cycle")
	}
}
