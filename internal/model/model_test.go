// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"encoding/json"
	"testing"
)

func TestUserDisplayName(t *testing.T) {
	u := UserProfile{Email: "a@example.com"}
	if got := u.DisplayName(); got != "a@example.com" {
		t.Errorf("unexpected DisplayName(): %q", got)
	}
	u.Username = "alice"
	if got := u.DisplayName(); got != "alice" {
		t.Errorf("unexpected DisplayName() with username: %q", got)
	}
	u.FullName = "Alice A."
	if got := u.DisplayName(); got != "Alice A." {
		t.Errorf("unexpected DisplayName() with full name: %q", got)
	}
}

func TestSessionPredicates(t *testing.T) {
	if (Session{Status: Authenticated}).IsAuthenticated() {
		t.Error("authenticated without a user must not count as authenticated")
	}
	s := Session{Status: Authenticated, User: &UserProfile{IsAdmin: true}}
	if !s.IsAuthenticated() || !s.IsAdmin() {
		t.Errorf("expected authenticated admin, got %+v", s)
	}
	s.Status = Authenticating
	if s.IsAdmin() {
		t.Error("admin flag must not apply while authenticating")
	}
}

func TestAlertAcceptsBothShapes(t *testing.T) {
	var a Alert
	if err := json.Unmarshal([]byte(`{"id":1,"alert_type":"brute_force","description":"many failures","severity":"high","is_resolved":true,"timestamp":"2024-01-02T03:04:05Z"}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Type != "brute_force" || a.Message != "many failures" || !a.Resolved {
		t.Errorf("legacy shape not folded: %+v", a)
	}

	var b Alert
	if err := json.Unmarshal([]byte(`{"id":2,"type":"geo","message":"new country","severity":"low","resolved":false,"timestamp":"2024-01-02T03:04:05Z"}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.Type != "geo" || b.Message != "new country" || b.Resolved {
		t.Errorf("dashboard shape decoded wrong: %+v", b)
	}
}

func TestLoginLocation(t *testing.T) {
	cases := []struct {
		l    LoginActivity
		want string
	}{
		{LoginActivity{City: "Berlin", Country: "DE"}, "Berlin, DE"},
		{LoginActivity{City: "Berlin"}, "Berlin"},
		{LoginActivity{Country: "DE"}, "DE"},
		{LoginActivity{}, ""},
	}
	for _, c := range cases {
		if got := c.l.Location(); got != c.want {
			t.Errorf("Location(%+v) = %q, want %q", c.l, got, c.want)
		}
	}
}
