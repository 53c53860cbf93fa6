// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package filter holds list filter criteria and local text matching.
package filter // import "github.com/secwatch/console/internal/filter"

import (
	"net/url"
	"slices"
)

// Criteria is an ordered set of query parameters. An empty value means the
// key is unset and is not sent.
type Criteria struct {
	keys   []string
	values map[string]string
}

// New returns criteria built from alternating key/value pairs.
func New(pairs ...string) Criteria {
	var c Criteria
	for i := 0; i+1 < len(pairs); i += 2 {
		c = c.With(pairs[i], pairs[i+1])
	}
	return c
}

// With returns a copy of c with key set to value. Setting "" unsets key.
func (c Criteria) With(key, value string) Criteria {
	out := Criteria{values: make(map[string]string, len(c.values)+1)}
	for _, k := range c.keys {
		if k == key {
			continue
		}
		out.keys = append(out.keys, k)
		out.values[k] = c.values[k]
	}
	if value != "" {
		out.keys = append(out.keys, key)
		out.values[key] = value
	}
	return out
}

// Get returns the value for key, or "" when unset.
func (c Criteria) Get(key string) string { return c.values[key] }

// Keys returns the set keys in insertion order.
func (c Criteria) Keys() []string { return slices.Clone(c.keys) }

// IsEmpty reports whether no key is set.
func (c Criteria) IsEmpty() bool { return len(c.keys) == 0 }

// Equal reports whether both criteria set the same keys to the same values.
func (c Criteria) Equal(o Criteria) bool {
	if len(c.keys) != len(o.keys) {
		return false
	}
	for _, k := range c.keys {
		if o.values[k] != c.values[k] {
			return false
		}
	}
	return true
}

// Query renders the set keys as URL query parameters.
func (c Criteria) Query() url.Values {
	q := url.Values{}
	for _, k := range c.keys {
		q.Set(k, c.values[k])
	}
	return q
}

// String renders the criteria as k=v pairs in insertion order.
func (c Criteria) String() string {
	s := ""
	for i, k := range c.keys {
		if i > 0 {
			s += " "
		}
		s += k + "=" + c.values[k]
	}
	return s
}
