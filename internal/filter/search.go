// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package filter

import "strings"

// ContainsIgnoreCase reports whether substr is within s, case-insensitively.
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Local narrows items to those whose text fields contain query. It runs on
// the client over data already fetched; an empty query returns items.
func Local[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if ContainsIgnoreCase(strings.Join(fields(it), " "), query) {
			out = append(out, it)
		}
	}
	return out
}
