// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package slicest holds small generic slice helpers used by the terminal UI
// and the command line renderers.
package slicest // import "github.com/secwatch/console/util/slicest"

// Reduce

// Reduce folds s into a U starting from the zero value.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// ReduceD folds s into a U starting from init.
// - D: Uses init parameter as starting accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// Map

func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(i, v)
	}
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}

// Filter

// Filter returns the elements of s for which keep reports true.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	var result S
	for _, t := range s {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}
