// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import "sync/atomic"

// DispatchState is the superloop's own state, realized as an explicit
// CAS-transitioned atomic enum, distinct from modeWord (which mode fired)
// and StatusWord (mission/hardware flags).
type DispatchState uint32

const (
	// DispatchSelecting is the state while SystemsCheck is choosing the
	// next mode to run.
	DispatchSelecting DispatchState = iota
	// DispatchConfiguring is the state while the chosen mode's Configure
	// runs, before Run is entered.
	DispatchConfiguring
	// DispatchRunning is the state while the chosen mode's Run is active
	// and may be preempted via a ReentrySignal.
	DispatchRunning
)

func (s DispatchState) String() string {
	switch s {
	case DispatchSelecting:
		return "Selecting"
	case DispatchConfiguring:
		return "Configuring"
	case DispatchRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// dispatchCell holds the superloop's current state and the mode currently
// occupying it, both readable from the tick ISR path without blocking the
// dispatcher goroutine.
type dispatchCell struct { //nolint:govet
	_       [64]byte
	state   atomic.Uint32
	current atomic.Uint32 // Mode, valid only while state != Selecting
	_       [48]byte
}

func (c *dispatchCell) Load() DispatchState {
	return DispatchState(c.state.Load())
}

func (c *dispatchCell) TryTransition(from, to DispatchState) bool {
	return c.state.CompareAndSwap(uint32(from), uint32(to))
}

func (c *dispatchCell) SetCurrent(m Mode) {
	c.current.Store(uint32(m))
}

func (c *dispatchCell) Current() Mode {
	return Mode(c.current.Load())
}
