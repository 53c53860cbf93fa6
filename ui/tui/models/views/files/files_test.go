// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package files

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/internal/config"
	"github.com/secwatch/console/internal/model"
	"github.com/secwatch/console/ui/tui/models/views/env/envtest"
)

func TestActionFilterCycles(t *testing.T) {
	h := envtest.New(t, config.PollConfig{})
	h.Login(t, false)
	now := time.Now()
	h.Fake.SeedFiles(
		model.FileActivity{ID: 1, UserEmail: "bob@example.com", Action: model.FileView, FileName: "report.pdf", FileSize: 2048, Timestamp: now},
		model.FileActivity{ID: 2, UserEmail: "eve@example.com", Action: model.FileDownload, FileName: "payroll.xlsx", Timestamp: now, IsAnomalous: true},
	)

	m := New(h.Env)
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	m.Init()
	m.Focus()
	defer m.Unmount()
	h.Await(t, m, func() bool { return len(m.state.Data) == 2 })
	if v := m.View(); !strings.Contains(v, "report.pdf") || !strings.Contains(v, "2.0 KiB") {
		t.Fatalf("unexpected view:\n%s", v)
	}

	cycle := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}
	m.Update(cycle)
	h.Await(t, m, func() bool { return len(m.state.Data) == 1 && m.state.Data[0].Action == model.FileView })

	m.Update(cycle)
	h.Await(t, m, func() bool { return len(m.state.Data) == 1 && m.state.Data[0].Action == model.FileDownload })

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	h.Await(t, m, func() bool { return len(m.state.Data) == 2 })
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := HumanSize(tt.in); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
