// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import "testing"

func TestHandler(t *testing.T) {
	h := NewHandler("SecWatch", " | ")
	if h.Title() != "SecWatch" {
		t.Fatalf("unexpected base title %q", h.Title())
	}
	if _, ok := h.Handle("other"); ok {
		t.Fatal("foreign message consumed")
	}
	cmd, ok := h.Handle(Set("Alerts")())
	if !ok || cmd == nil || h.Title() != "SecWatch | Alerts" {
		t.Fatalf("title not applied: %q", h.Title())
	}
	if cmd, _ := h.Handle(Set("Alerts")()); cmd != nil {
		t.Fatal("unchanged title must not emit a command")
	}
}
