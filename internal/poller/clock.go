// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package poller

import "time"

// Clock abstracts time for the poller.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker is the part of time.Ticker the poller uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) Ticker { return realTicker{time.NewTicker(d)} }

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// ManualClock is a Clock whose ticks are fired by the caller.
type ManualClock struct {
	now   time.Time
	ticks chan time.Time
}

// NewManualClock returns a clock frozen at now.
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now, ticks: make(chan time.Time)}
}

func (m *ManualClock) Now() time.Time { return m.now }

func (m *ManualClock) NewTicker(time.Duration) Ticker { return manualTicker{m.ticks} }

// Tick delivers one tick and blocks until the poller loop receives it.
func (m *ManualClock) Tick() { m.ticks <- m.now }

type manualTicker struct{ c chan time.Time }

func (t manualTicker) C() <-chan time.Time { return t.c }
func (t manualTicker) Stop()               {}
