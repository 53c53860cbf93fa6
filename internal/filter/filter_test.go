// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package filter

import "testing"

func TestCriteriaOrderAndUnset(t *testing.T) {
	c := New("severity", "critical", "resolved", "false")
	if got := c.Query().Encode(); got != "resolved=false&severity=critical" {
		t.Errorf("Query() = %q", got)
	}
	if got := c.String(); got != "severity=critical resolved=false" {
		t.Errorf("String() = %q", got)
	}

	c2 := c.With("severity", "")
	if c2.Get("severity") != "" || len(c2.Keys()) != 1 {
		t.Errorf("empty value should unset severity: %v", c2.Keys())
	}
	if c.Get("severity") != "critical" {
		t.Error("With must not mutate the receiver")
	}

	c3 := c.With("severity", "high")
	if keys := c3.Keys(); keys[len(keys)-1] != "severity" || c3.Get("severity") != "high" {
		t.Errorf("re-set key should move to the end: %v", keys)
	}
}

func TestCriteriaEqual(t *testing.T) {
	a := New("a", "1", "b", "2")
	b := New("b", "2", "a", "1")
	if !a.Equal(b) {
		t.Error("same pairs in different order should be equal")
	}
	if a.Equal(a.With("a", "3")) {
		t.Error("different values must not be equal")
	}
	var zero Criteria
	if !zero.IsEmpty() || !zero.Equal(New()) {
		t.Error("zero criteria should be empty")
	}
}

func TestLocal(t *testing.T) {
	items := []string{"Berlin", "Munich", "berlin-west"}
	got := Local(items, "BERLIN", func(s string) []string { return []string{s} })
	if len(got) != 2 {
		t.Errorf("Local() = %v", got)
	}
	if all := Local(items, "  ", func(s string) []string { return []string{s} }); len(all) != 3 {
		t.Errorf("blank query should keep everything: %v", all)
	}
}
