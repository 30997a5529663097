// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import "sync"

// ReentrySignal is the cooperative cancellation token a running mode's
// Run polls to notice that the dispatcher wants to reenter the superloop
// on its behalf. There is no stack switch and no goroutine kill: Run must
// check Aborted() at bounded intervals and return promptly when it
// observes true.
type ReentrySignal struct {
	mu       sync.Mutex
	aborted  bool
	reason   PreemptReason
	handlers []func(PreemptReason)
}

// PreemptReason explains why a ReentrySignal was tripped.
type PreemptReason struct {
	// Next is the mode the arbiter selected in place of the one currently
	// running.
	Next Mode
}

// ReentryController is the write side of a ReentrySignal, held by the
// dispatcher. One controller is created per superloop iteration, before
// Run is invoked, and discarded once that iteration's Run returns.
type ReentryController struct {
	signal *ReentrySignal
}

// NewReentryController returns a controller and its paired signal, fresh
// and untripped.
func NewReentryController() *ReentryController {
	return &ReentryController{signal: &ReentrySignal{}}
}

// Signal returns the read side to hand to a mode's Run.
func (c *ReentryController) Signal() *ReentrySignal {
	return c.signal
}

// Preempt trips the signal with reason, waking any registered handlers.
// Calling it more than once is a no-op: the first reason wins.
func (c *ReentryController) Preempt(reason PreemptReason) {
	c.signal.trip(reason)
}

func (s *ReentrySignal) trip(reason PreemptReason) {
	s.mu.Lock()
	if s.aborted {
		s.mu.Unlock()
		return
	}
	s.aborted = true
	s.reason = reason
	handlers := s.handlers
	s.handlers = nil
	s.mu.Unlock()
	for _, h := range handlers {
		h(reason)
	}
}

// Aborted reports whether the dispatcher has requested reentry.
func (s *ReentrySignal) Aborted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aborted
}

// Reason returns the reason the signal was tripped, valid only once
// Aborted() is true.
func (s *ReentrySignal) Reason() PreemptReason {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reason
}

// OnPreempt registers a handler invoked when the signal trips. If the
// signal has already tripped, the handler runs immediately, synchronously,
// on the calling goroutine.
func (s *ReentrySignal) OnPreempt(handler func(PreemptReason)) {
	s.mu.Lock()
	if s.aborted {
		reason := s.reason
		s.mu.Unlock()
		handler(reason)
		return
	}
	s.handlers = append(s.handlers, handler)
	s.mu.Unlock()
}
