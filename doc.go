// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package intellisat implements the core of a small-satellite flight
// executive: a cooperative, tick-driven mode scheduler with a
// priority-based arbiter, a task dispatch loop that carries operational
// modes to completion, and a status word capturing mission and hardware
// state bits.
//
// The hardest engineering lives in the interaction between a periodic tick
// source that may request preemption of the running mode, a cooperative
// cancellation signal that unwinds the current mode's Run without a stack
// switch, and a strict priority ladder that decides which mode runs next.
package intellisat
