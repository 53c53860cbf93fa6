// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package poller runs a producer immediately on start and then on a fixed
// interval, exposing the latest result as an observable State.
//
// Every invocation is stamped with a sequence number. A result is applied
// only when its sequence is newer than the last applied one and the poller
// has not been stopped, so a slow early request can never overwrite a newer
// answer and nothing changes after Stop.
package poller // import "github.com/secwatch/console/internal/poller"

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/secwatch/console/internal/logging"
)

// Producer fetches one value.
type Producer[T any] func(ctx context.Context) (T, error)

// State is a snapshot of a poller.
type State[T any] struct {
	Data          T
	HasData       bool
	IsLoading     bool
	LastFetchedAt time.Time
	// Err is the error of the most recent applied invocation. Data keeps
	// the last good value when Err is set.
	Err error
}

// Poller owns one producer and its schedule.
type Poller[T any] struct {
	producer Producer[T]
	interval time.Duration
	name     string
	onChange func(State[T])
	clock    Clock

	mu       sync.Mutex
	state    State[T]
	seq      uint64
	applied  uint64
	inflight int
	version  uint64
	ctx      context.Context
	cancel   context.CancelFunc
	started  bool
	stopped  bool

	notifyMu sync.Mutex
	notified uint64
}

// Option configures a Poller.
type Option[T any] func(*Poller[T])

// WithOnChange registers fn to receive every state change, in order.
func WithOnChange[T any](fn func(State[T])) Option[T] {
	return func(p *Poller[T]) { p.onChange = fn }
}

// WithInitial seeds the state with data, typically from a retired poller.
func WithInitial[T any](data T, fetchedAt time.Time) Option[T] {
	return func(p *Poller[T]) {
		p.state.Data = data
		p.state.HasData = true
		p.state.LastFetchedAt = fetchedAt
	}
}

// WithName sets the prefix used in log lines.
func WithName[T any](name string) Option[T] {
	return func(p *Poller[T]) { p.name = name }
}

// WithClock replaces the wall clock, for tests.
func WithClock[T any](c Clock) Option[T] {
	return func(p *Poller[T]) { p.clock = c }
}

// New returns a stopped poller. An interval of zero or less disables the
// schedule: the producer then only runs on Start and Refresh.
func New[T any](producer Producer[T], interval time.Duration, opts ...Option[T]) *Poller[T] {
	p := &Poller[T]{
		producer: producer,
		interval: interval,
		name:     "poller",
		clock:    realClock{},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Interval returns the configured schedule.
func (p *Poller[T]) Interval() time.Duration { return p.interval }

// State returns the current snapshot.
func (p *Poller[T]) State() State[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Start runs the producer once and then on every tick until ctx is done or
// Stop is called. Starting twice is a no-op, and a stopped poller cannot be
// restarted.
func (p *Poller[T]) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started || p.stopped {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.ctx, p.cancel = context.WithCancel(ctx)
	runCtx := p.ctx
	p.mu.Unlock()

	p.invoke()
	if p.interval > 0 {
		go p.loop(runCtx)
	}
}

func (p *Poller[T]) loop(ctx context.Context) {
	t := p.clock.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			p.invoke()
		}
	}
}

// Refresh runs the producer now, outside the schedule.
func (p *Poller[T]) Refresh() { p.invoke() }

// Stop cancels the schedule and in-flight producers. Results that arrive
// afterwards are discarded.
func (p *Poller[T]) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	cancel := p.cancel
	p.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Stopped reports whether Stop has been called or the start context is done.
func (p *Poller[T]) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.retiredLocked()
}

// retiredLocked reports whether the poller is stopped. Cancelling the start
// context retires it the same way Stop does.
func (p *Poller[T]) retiredLocked() bool {
	if !p.stopped && p.ctx != nil && p.ctx.Err() != nil {
		p.stopped = true
	}
	return p.stopped
}

func (p *Poller[T]) invoke() {
	p.mu.Lock()
	if !p.started || p.retiredLocked() {
		p.mu.Unlock()
		return
	}
	p.seq++
	seq := p.seq
	p.inflight++
	p.state.IsLoading = true
	p.version++
	snap, ver, ctx := p.state, p.version, p.ctx
	p.mu.Unlock()
	p.notify(snap, ver)

	go func() {
		data, err := p.producer(ctx)
		p.apply(seq, data, err)
	}()
}

func (p *Poller[T]) apply(seq uint64, data T, err error) {
	p.mu.Lock()
	p.inflight--
	if p.retiredLocked() {
		p.mu.Unlock()
		return
	}
	if seq > p.applied {
		p.applied = seq
		if err != nil {
			p.state.Err = err
		} else {
			p.state.Data = data
			p.state.HasData = true
			p.state.Err = nil
			p.state.LastFetchedAt = p.clock.Now()
		}
	} else {
		err = nil
	}
	p.state.IsLoading = p.inflight > 0
	p.version++
	snap, ver := p.state, p.version
	p.mu.Unlock()

	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Warnf("%s: fetch failed: %v", p.name, err)
	}
	p.notify(snap, ver)
}

// notify delivers snapshots to the observer in version order, dropping any
// snapshot that lost the race to a newer one.
func (p *Poller[T]) notify(s State[T], version uint64) {
	if p.onChange == nil {
		return
	}
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()
	if version <= p.notified {
		return
	}
	p.notified = version
	p.onChange(s)
}
