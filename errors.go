// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import "errors"

// Error classification: programming errors (a bad TaskTable or an
// out-of-range lookup) are fatal and surface as a panic that nothing
// recovers, ending the process; transient mode failures are tracked per-mode by the breaker set in
// breaker.go and never escape the superloop; preemption is not an error
// at all, it's ReentrySignal.Aborted() returning true. This file only
// holds the one sentinel the dispatcher needs to distinguish "Configure
// declined to run" from "Configure failed".
var (
	// ErrModeDeclined is returned by a Configure that decides, after
	// closer inspection than Sense affords, that it should not run after
	// all. The dispatcher treats it as "reselect", not a breaker failure.
	ErrModeDeclined = errors.New("intellisat: mode declined during configure")
)
