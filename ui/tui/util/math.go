// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import "cmp"

// Clamp limits v to [lo, hi]. When hi < lo the result is hi.
func Clamp[T cmp.Ordered](lo, v, hi T) T {
	return min(max(lo, v), hi)
}
