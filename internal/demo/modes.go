// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package demo

import (
	"sync/atomic"

	"github.com/JakeRoggenbuck/IntelliSat-Prototype"
)

// Flags exposed for tests to force a particular mode's Sense to fire,
// standing in for real sensor inputs.
var (
	forceDetumble atomic.Bool
	forceComms    atomic.Bool
	forceHDD      atomic.Bool
	forceMRW      atomic.Bool
	lowPower      atomic.Bool
)

// ForceDetumble sets whether DETUMBLE's Sense reports true.
func ForceDetumble(v bool) { forceDetumble.Store(v) }

// ForceComms sets whether COMMS's Sense reports true.
func ForceComms(v bool) { forceComms.Store(v) }

// ForceHDD sets whether HDD's Sense reports true.
func ForceHDD(v bool) { forceHDD.Store(v) }

// ForceMRW sets whether MRW's Sense reports true.
func ForceMRW(v bool) { forceMRW.Store(v) }

// SetLowPower sets whether CHARGING's Sense reports true. It does not touch
// FlagLowPower on any StatusWord.
func SetLowPower(v bool) { lowPower.Store(v) }

func chargingEntry() intellisat.TaskEntry {
	return intellisat.TaskEntry{
		ID: intellisat.ModeCharging,
		Sense: func(w *intellisat.StatusWord) bool {
			return lowPower.Load()
		},
		Configure: func(w *intellisat.StatusWord) error { return nil },
		Run: func(w *intellisat.StatusWord, signal *intellisat.ReentrySignal) error {
			return runUntilPreempted(signal, 4)
		},
		Clean: func(w *intellisat.StatusWord) {},
	}
}

func detumbleEntry() intellisat.TaskEntry {
	return intellisat.TaskEntry{
		ID: intellisat.ModeDetumble,
		Sense: func(w *intellisat.StatusWord) bool {
			return forceDetumble.Load()
		},
		Configure: func(w *intellisat.StatusWord) error { return nil },
		Run: func(w *intellisat.StatusWord, signal *intellisat.ReentrySignal) error {
			return runUntilPreempted(signal, 4)
		},
		Clean: func(w *intellisat.StatusWord) {},
	}
}

func commsEntry() intellisat.TaskEntry {
	return intellisat.TaskEntry{
		ID: intellisat.ModeComms,
		Sense: func(w *intellisat.StatusWord) bool {
			return forceComms.Load()
		},
		Configure: func(w *intellisat.StatusWord) error { return nil },
		Run: func(w *intellisat.StatusWord, signal *intellisat.ReentrySignal) error {
			return runUntilPreempted(signal, 4)
		},
		Clean: func(w *intellisat.StatusWord) {},
	}
}

func hddEntry() intellisat.TaskEntry {
	return intellisat.TaskEntry{
		ID: intellisat.ModeHDD,
		Sense: func(w *intellisat.StatusWord) bool {
			return forceHDD.Load()
		},
		Configure: func(w *intellisat.StatusWord) error { return nil },
		Run: func(w *intellisat.StatusWord, signal *intellisat.ReentrySignal) error {
			return runUntilPreempted(signal, 4)
		},
		Clean: func(w *intellisat.StatusWord) {},
	}
}

func mrwEntry() intellisat.TaskEntry {
	return intellisat.TaskEntry{
		ID: intellisat.ModeMRW,
		Sense: func(w *intellisat.StatusWord) bool {
			return forceMRW.Load()
		},
		Configure: func(w *intellisat.StatusWord) error { return nil },
		Run: func(w *intellisat.StatusWord, signal *intellisat.ReentrySignal) error {
			return runUntilPreempted(signal, 4)
		},
		Clean: func(w *intellisat.StatusWord) {},
	}
}

// eccEntry is the keep-alive default mode; its Sense never fires on its
// own, it is only ever reached as SystemsCheck's fallback.
func eccEntry() intellisat.TaskEntry {
	return intellisat.TaskEntry{
		ID: intellisat.ModeECC,
		Sense: func(w *intellisat.StatusWord) bool {
			return false
		},
		Configure: func(w *intellisat.StatusWord) error { return nil },
		Run: func(w *intellisat.StatusWord, signal *intellisat.ReentrySignal) error {
			return runUntilPreempted(signal, 1)
		},
		Clean: func(w *intellisat.StatusWord) {},
	}
}
