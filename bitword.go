// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import "sync/atomic"

// modeWord is a lock-free bit field, one bit per Mode, set by the tick
// ISR path and cleared by the dispatcher: a single atomic word, cache-line
// padded to avoid false sharing between the goroutine driving ticks and
// the goroutine running the superloop.
type modeWord struct { //nolint:govet
	_ [64]byte
	v atomic.Uint64
	_ [56]byte
}

// SetMode atomically sets the bit for m.
func (w *modeWord) SetMode(m Mode) {
	for {
		old := w.v.Load()
		next := old | (1 << uint(m))
		if w.v.CompareAndSwap(old, next) {
			return
		}
	}
}

// ClearMode atomically clears the bit for m.
func (w *modeWord) ClearMode(m Mode) {
	for {
		old := w.v.Load()
		next := old &^ (1 << uint(m))
		if w.v.CompareAndSwap(old, next) {
			return
		}
	}
}

// TestMode reports whether the bit for m is currently set.
func (w *modeWord) TestMode(m Mode) bool {
	return w.v.Load()&(1<<uint(m)) != 0
}

// Snapshot returns the raw bit pattern, for logging and tests.
func (w *modeWord) Snapshot() uint64 {
	return w.v.Load()
}
