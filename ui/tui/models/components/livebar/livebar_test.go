// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package livebar

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/secwatch/console/internal/i18n"
	"github.com/secwatch/console/internal/poller"
)

func TestRender(t *testing.T) {
	i18n.Init("en")
	at := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	s := poller.State[int]{LastFetchedAt: at, IsLoading: true, Err: errors.New("boom")}

	out := Render(FromState(s, 5*time.Second, "severity=critical"))
	for _, want := range []string{"5s", "15:04:05", "severity=critical", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}

	manual := Render(Info{})
	if strings.Contains(manual, "every") {
		t.Errorf("manual view must not claim a schedule: %q", manual)
	}
}
