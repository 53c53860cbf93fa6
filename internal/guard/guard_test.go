// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package guard

import (
	"testing"

	"github.com/secwatch/console/internal/model"
)

func TestEvaluate(t *testing.T) {
	analyst := &model.UserProfile{ID: 2}
	admin := &model.UserProfile{ID: 1, IsAdmin: true}

	cases := []struct {
		name string
		s    model.Session
		req  Requirement
		want Decision
	}{
		{"public while loading", model.Session{Status: model.Authenticating}, Public, Admit},
		{"protected while loading", model.Session{Status: model.Authenticating}, Protected, Loading},
		{"protected logged out", model.Session{Status: model.Unauthenticated}, Protected, RedirectLogin},
		{"protected with error", model.Session{Status: model.Unauthenticated, Error: "x"}, AdminOnly, RedirectLogin},
		{"protected analyst", model.Session{Status: model.Authenticated, User: analyst}, Protected, Admit},
		{"admin route analyst", model.Session{Status: model.Authenticated, User: analyst}, AdminOnly, RedirectDefault},
		{"admin route admin", model.Session{Status: model.Authenticated, User: admin}, AdminOnly, Admit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Evaluate(c.s, c.req); got != c.want {
				t.Errorf("Evaluate = %s, want %s", got, c.want)
			}
		})
	}
}
