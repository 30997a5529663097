// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package snapshot defines the persisted-state collaborator Startup calls
// on a warm boot. Real flash persistence isn't implemented here; the
// interface exists so Startup and the dispatcher are fully testable
// without it.
package snapshot

// State is the subset of mission state that survives a reboot.
type State struct {
	RebootCount  uint32
	StatusBits   []uint64
	WarmRestored bool
}

// Store loads and saves a State. The in-memory Store below is the only
// implementation this repo ships; a real implementation would back it
// with flash or FRAM.
type Store interface {
	Restore() (State, bool, error)
	Save(State) error
}

// Memory is an in-memory Store, good enough to make warm-boot restore
// testable without real persistence.
type Memory struct {
	state State
	saved bool
}

// NewMemory returns an empty Memory store, as if this were the first
// boot.
func NewMemory() *Memory {
	return &Memory{}
}

// Restore returns the last Save'd state. The second return value is false
// on a store that has never been saved to, signalling a cold boot.
func (m *Memory) Restore() (State, bool, error) {
	if !m.saved {
		return State{}, false, nil
	}
	return m.state, true, nil
}

// Save records state as the latest snapshot.
func (m *Memory) Save(state State) error {
	m.state = state
	m.saved = true
	return nil
}
