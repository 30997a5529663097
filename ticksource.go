// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import "time"

// TickSource is a periodic source of wake-ups the scheduler reads from to
// run one arbitration/dispatch cycle — the userspace analog of a hardware
// timer interrupt. Exactly one implementation is linked per platform,
// selected by build tag.
type TickSource interface {
	// C returns the channel ticks are delivered on.
	C() <-chan time.Time
	// Stop releases the underlying timer. Safe to call once.
	Stop()
}
