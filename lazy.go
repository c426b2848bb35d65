// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazylist

import (
	"sync"
	"sync/atomic"
)

// Cell states. A cell moves empty → busy → done on success, or
// empty → busy → poisoned when the producer panics. done and poisoned
// are terminal.
const (
	stateEmpty = iota
	stateBusy
	stateDone
	statePoisoned
)

// Cell is a memoizing container: it holds either a pending one-shot
// producer or the value that producer computed. Cell[T] is the parallel
// configuration — safe for concurrent forcing from multiple goroutines.
//
// The producer runs at most once across the cell's lifetime. Forcing a
// done cell is a lock-free read. Forcing a cell whose production is
// already underway — whether by the producer itself (a reentrant call on
// the same logical call path) or by a goroutine that observes the
// in-progress mark — returns "not yet available" rather than blocking;
// goroutines that reach the producer lock while another computes wait
// and observe the winner's result.
//
// A producer panic poisons the cell permanently: the at-most-once
// contract forbids a second run, so any later Force panics. See
// [LocalCell] for the cooperative single-goroutine configuration.
type Cell[T any] struct {
	state   atomic.Uint32
	mu      sync.Mutex
	produce func() T
	value   T
}

// NewCell creates a pending cell owning the given one-shot producer.
// The producer is consumed by the first successful Force and must be
// safe to hand to whichever goroutine wins; it is never shared.
func NewCell[T any](produce func() T) *Cell[T] {
	if produce == nil {
		panic("lazylist: NewCell with nil producer")
	}
	return &Cell[T]{produce: produce}
}

// CellOf creates an already-resolved cell holding v. Forcing it never
// runs a producer.
func CellOf[T any](v T) *Cell[T] {
	c := &Cell[T]{value: v}
	c.state.Store(stateDone)
	return c
}

// Force returns the cell's value, running the producer first if it has
// not run yet. It reports false while the same cell's production is
// underway: a reentrant caller — the producer asking for its own cell's
// value — gets (zero, false) instead of deadlocking or recursing.
//
// Force panics if the cell is poisoned or if a zero-value Cell is forced
// without a producer. A panic inside the producer propagates to the
// forcing caller and poisons the cell.
func (c *Cell[T]) Force() (T, bool) {
	switch c.state.Load() {
	case stateDone:
		return c.value, true
	case stateBusy:
		var zero T
		return zero, false
	}
	return c.forceSlow()
}

func (c *Cell[T]) forceSlow() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state.Load() {
	case stateDone:
		return c.value, true
	case statePoisoned:
		panic("lazylist: cell forced after its producer panicked")
	}
	produce := c.produce
	if produce == nil {
		panic("lazylist: cell has no producer")
	}
	c.produce = nil
	// The busy mark must be visible for the whole producer run and must
	// be replaced on every exit path, panic included. The deferred guard
	// runs before the mutex is released.
	c.state.Store(stateBusy)
	done := false
	defer func() {
		if done {
			c.state.Store(stateDone)
		} else {
			c.state.Store(statePoisoned)
		}
	}()
	c.value = produce()
	done = true
	return c.value, true
}

// LocalCell is the cooperative configuration of [Cell]: the same
// memoizing contract — at-most-once production, reentrancy answered
// with "not yet available", permanent poisoning on producer panic —
// without atomics. It must only be used from one goroutine at a time.
type LocalCell[T any] struct {
	state   uint32
	produce func() T
	value   T
}

// NewLocalCell creates a pending cooperative cell owning the producer.
func NewLocalCell[T any](produce func() T) *LocalCell[T] {
	if produce == nil {
		panic("lazylist: NewLocalCell with nil producer")
	}
	return &LocalCell[T]{produce: produce}
}

// LocalCellOf creates an already-resolved cooperative cell holding v.
func LocalCellOf[T any](v T) *LocalCell[T] {
	return &LocalCell[T]{state: stateDone, value: v}
}

// Force returns the cell's value, running the producer on first call.
// Reports false for a reentrant call made while the producer is running.
// Panics on a poisoned or producer-less cell.
func (c *LocalCell[T]) Force() (T, bool) {
	switch c.state {
	case stateDone:
		return c.value, true
	case stateBusy:
		var zero T
		return zero, false
	case statePoisoned:
		panic("lazylist: cell forced after its producer panicked")
	}
	produce := c.produce
	if produce == nil {
		panic("lazylist: cell has no producer")
	}
	c.produce = nil
	c.state = stateBusy
	done := false
	defer func() {
		if done {
			c.state = stateDone
		} else {
			c.state = statePoisoned
		}
	}()
	c.value = produce()
	done = true
	return c.value, true
}
