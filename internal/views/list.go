// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package views binds the API to pollers for each screen of the console.
// A List owns its filter criteria; changing them retires the running poller
// and starts a fresh one over the new query, seeded with the last data so the
// screen never blanks while the first new fetch is in flight.
package views // import "github.com/secwatch/console/internal/views"

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/secwatch/console/internal/filter"
	"github.com/secwatch/console/internal/poller"
)

// Fetch loads one page of data for the given query.
type Fetch[T any] func(ctx context.Context, q url.Values) (T, error)

// List is a polled, filterable view.
type List[T any] struct {
	name     string
	fetch    Fetch[T]
	interval time.Duration
	onChange func(poller.State[T])
	clock    poller.Clock

	mu       sync.Mutex
	criteria filter.Criteria
	current  *poller.Poller[T]
	gen      uint64
	ctx      context.Context
	stopped  bool
}

// ListOption configures a List.
type ListOption[T any] func(*List[T])

// OnChange registers fn to receive every applied state of the active poller.
func OnChange[T any](fn func(poller.State[T])) ListOption[T] {
	return func(l *List[T]) { l.onChange = fn }
}

// WithCriteria sets the initial criteria.
func WithCriteria[T any](c filter.Criteria) ListOption[T] {
	return func(l *List[T]) { l.criteria = c }
}

// WithClock replaces the wall clock of the pollers, for tests.
func WithClock[T any](c poller.Clock) ListOption[T] {
	return func(l *List[T]) { l.clock = c }
}

// NewList returns a stopped view.
func NewList[T any](name string, fetch Fetch[T], interval time.Duration, opts ...ListOption[T]) *List[T] {
	l := &List[T]{name: name, fetch: fetch, interval: interval}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Name returns the view name used in logs.
func (l *List[T]) Name() string { return l.name }

// Interval returns the poll interval.
func (l *List[T]) Interval() time.Duration { return l.interval }

// Criteria returns the current filter.
func (l *List[T]) Criteria() filter.Criteria {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.criteria
}

// State returns the state of the active poller.
func (l *List[T]) State() poller.State[T] {
	l.mu.Lock()
	p := l.current
	l.mu.Unlock()
	if p == nil {
		return poller.State[T]{}
	}
	return p.State()
}

// Start activates the view, fetching immediately.
func (l *List[T]) Start(ctx context.Context) {
	l.mu.Lock()
	if l.ctx != nil || l.stopped {
		l.mu.Unlock()
		return
	}
	l.ctx = ctx
	p := l.buildLocked(poller.State[T]{})
	l.mu.Unlock()
	p.Start(ctx)
}

// Stop deactivates the view. Late results are discarded.
func (l *List[T]) Stop() {
	l.mu.Lock()
	l.stopped = true
	p := l.current
	l.gen++
	l.mu.Unlock()
	if p != nil {
		p.Stop()
	}
}

// Refresh fetches now with the current criteria.
func (l *List[T]) Refresh() {
	l.mu.Lock()
	p := l.current
	l.mu.Unlock()
	if p != nil {
		p.Refresh()
	}
}

// SetFilter sets key to value; an empty value unsets it.
func (l *List[T]) SetFilter(key, value string) {
	l.mu.Lock()
	next := l.criteria.With(key, value)
	l.mu.Unlock()
	l.SetCriteria(next)
}

// ClearFilters unsets every key.
func (l *List[T]) ClearFilters() { l.SetCriteria(filter.Criteria{}) }

// SetCriteria replaces the criteria synchronously and, when the view is
// active, restarts polling with them.
func (l *List[T]) SetCriteria(c filter.Criteria) {
	l.mu.Lock()
	l.criteria = c
	if l.ctx == nil || l.stopped {
		l.mu.Unlock()
		return
	}
	old := l.current
	var seed poller.State[T]
	if old != nil {
		seed = old.State()
	}
	p := l.buildLocked(seed)
	ctx := l.ctx
	l.mu.Unlock()

	if old != nil {
		old.Stop()
	}
	p.Start(ctx)
}

// buildLocked creates the poller for the current criteria. The query is
// captured once so every invocation of this poller sends the same filter.
func (l *List[T]) buildLocked(seed poller.State[T]) *poller.Poller[T] {
	l.gen++
	gen := l.gen
	q := l.criteria.Query()
	fetch := l.fetch

	opts := []poller.Option[T]{
		poller.WithName[T](l.name),
		poller.WithOnChange(func(s poller.State[T]) {
			l.mu.Lock()
			live := gen == l.gen
			fn := l.onChange
			l.mu.Unlock()
			if live && fn != nil {
				fn(s)
			}
		}),
	}
	if seed.HasData {
		opts = append(opts, poller.WithInitial(seed.Data, seed.LastFetchedAt))
	}
	if l.clock != nil {
		opts = append(opts, poller.WithClock[T](l.clock))
	}
	p := poller.New(func(ctx context.Context) (T, error) {
		return fetch(ctx, q)
	}, l.interval, opts...)
	l.current = p
	return p
}
