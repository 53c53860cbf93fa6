// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package form_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/secwatch/console/ui/tui/models/helpers/form"
	forminput "github.com/secwatch/console/ui/tui/models/helpers/form/input"
)

type settings struct {
	Name    string `mapstructure:"name"`
	Count   int    `mapstructure:"count"`
	Enabled bool   `mapstructure:"enabled"`
}

func typeText(f *form.Form[settings], s string) {
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestFormDecodesTypedValues(t *testing.T) {
	var got settings
	var gotErr error
	submitted := false

	f := form.New(
		form.WithInput[settings]("name", forminput.NewText("Name", "")),
		form.WithInput[settings]("count", forminput.NewText("Count", "")),
		form.WithInput[settings]("enabled", forminput.NewToggle("Enabled", false)),
		form.WithInput[settings]("", forminput.NewButton("Save")),
		form.WithOnSubmit(func(s settings, err error) tea.Cmd {
			got, gotErr, submitted = s, err, true
			return nil
		}),
	)
	f.Init()
	f.Focus()

	typeText(f, "probe")
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeText(f, "42")
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !submitted {
		t.Fatal("button did not submit")
	}
	if gotErr != nil {
		t.Fatalf("unexpected decode error: %v", gotErr)
	}
	if got != (settings{Name: "probe", Count: 42, Enabled: true}) {
		t.Fatalf("unexpected result %+v", got)
	}
}

func TestFormReportsDecodeErrors(t *testing.T) {
	f := form.New(
		form.WithInput[settings]("count", forminput.NewText("Count", "", forminput.WithValue("many"))),
	)
	if _, err := f.Get(); err == nil {
		t.Fatal("expected an error for a non-numeric count")
	}
}

func TestFormCancelAndReset(t *testing.T) {
	cancelled := false
	f := form.New(
		form.WithInput[settings]("name", forminput.NewText("Name", "")),
		form.WithResetAfterSubmit[settings](),
		form.WithOnCancel[settings](func() tea.Cmd { cancelled = true; return nil }),
	)
	f.Focus()
	if err := f.Set(settings{Name: "preset"}); err != nil {
		t.Fatal(err)
	}
	if s, _ := f.Get(); s.Name != "preset" {
		t.Fatalf("Set did not load the value: %+v", s)
	}
	f.Submit()
	if s, _ := f.Get(); s.Name != "" {
		t.Fatal("form was not reset after submit")
	}
	f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !cancelled {
		t.Fatal("esc did not cancel")
	}
}
