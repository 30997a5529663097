// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import (
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the structured logger used throughout the executive: mode
// transitions, preemptions, boots and breaker trips are all logged as
// structured events rather than free-form text.
type Logger = logiface.Logger[*stumpy.Event]

// NewLogger returns a Logger writing newline-delimited JSON to w.
func NewLogger(w io.Writer) *Logger {
	return stumpy.L.New(stumpy.WithStumpy(stumpy.WithWriter(w)))
}

// NewNoopLogger returns a Logger that discards everything, for tests that
// want the real call sites exercised without producing output.
func NewNoopLogger() *Logger {
	return stumpy.L.New(stumpy.WithStumpy(stumpy.WithWriter(io.Discard)))
}
