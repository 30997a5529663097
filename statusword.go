// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// StatusFlag names a bit in StatusWord's growable status field. Unlike
// modeBits, which is a fixed 6-bit field sized to the Mode enum, status
// flags are added over the life of the mission without a struct layout
// change — hence the bitset.BitSet backing rather than a fixed-width
// integer.
type StatusFlag uint

const (
	// FlagStart marks that the satellite has completed its post-deploy
	// release delay and is clear to enter normal arbitration.
	FlagStart StatusFlag = iota
	// FlagWarmBoot marks that Startup restored state from a Snapshot
	// rather than cold-booting.
	FlagWarmBoot
	// FlagLowPower marks that CHARGING considers the bus voltage below
	// its operating threshold.
	FlagLowPower
)

// StatusWord is the satellite's mission/hardware status, split into a
// fixed-width, lock-free modeBits field sensed by the ISR path and a
// growable, mutex-guarded statusBits field for mission flags. bitset.BitSet
// is not itself concurrency-safe, so every access takes statusMu.
type StatusWord struct {
	modes modeWord

	statusMu sync.Mutex
	status   *bitset.BitSet
}

// NewStatusWord returns a StatusWord with all bits clear.
func NewStatusWord() *StatusWord {
	return &StatusWord{
		status: bitset.New(64),
	}
}

// SetMode, ClearMode and TestMode proxy to the fixed-width mode field; see
// modeWord for the reasoning behind keeping it separate from statusBits.

func (s *StatusWord) SetMode(m Mode)        { s.modes.SetMode(m) }
func (s *StatusWord) ClearMode(m Mode)      { s.modes.ClearMode(m) }
func (s *StatusWord) TestMode(m Mode) bool  { return s.modes.TestMode(m) }
func (s *StatusWord) ModeBits() uint64      { return s.modes.Snapshot() }

// Set sets a status flag.
func (s *StatusWord) Set(f StatusFlag) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Set(uint(f))
}

// Clear clears a status flag.
func (s *StatusWord) Clear(f StatusFlag) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Clear(uint(f))
}

// Test reports whether a status flag is set.
func (s *StatusWord) Test(f StatusFlag) bool {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	return s.status.Test(uint(f))
}

// String renders statusBits for structured logging. It does not include
// modeBits; use ModeBits for those.
func (s *StatusWord) String() string {
	s.statusMu.Lock()
	status := s.status.Clone()
	s.statusMu.Unlock()
	return status.String()
}
