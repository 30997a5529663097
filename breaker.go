// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import (
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// errRunPanicked wraps a recovered panic from a mode's Run, letting it
// flow through gobreaker's failure counting like any other error.
type errRunPanicked struct {
	mode  Mode
	cause any
}

func (e *errRunPanicked) Error() string {
	return fmt.Sprintf("intellisat: mode %s run panicked: %v", e.mode, e.cause)
}

// breakerSet holds one circuit breaker per mode, guarding Run so a mode
// whose Run panics isn't re-selected and re-crashed every tick. A breaker
// that trips open makes SystemsCheck treat that mode's Sense() as false
// for the cooldown window, falling through to the next-highest-priority
// mode.
type breakerSet struct {
	breakers [modeCount]*gobreaker.CircuitBreaker[any]
}

func newBreakerSet(log *Logger) *breakerSet {
	bs := &breakerSet{}
	for _, m := range modePriority {
		mode := m
		bs.breakers[m] = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:        mode.String(),
			MaxRequests: 1,
			Interval:    0,
			Timeout:     10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrModeDeclined)
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				if log != nil {
					log.Warning().Str("mode", name).Str("from", from.String()).Str("to", to.String()).Log("breaker state change")
				}
			},
		})
	}
	return bs
}

// Tripped reports whether mode's breaker is currently open, meaning
// SystemsCheck should not consider that mode runnable this tick.
func (bs *breakerSet) Tripped(m Mode) bool {
	return bs.breakers[m].State() == gobreaker.StateOpen
}

// Guard runs fn through mode's breaker, converting a panic inside fn into
// a recorded failure instead of letting it escape into the superloop.
func (bs *breakerSet) Guard(m Mode, fn func() error) error {
	_, err := bs.breakers[m].Execute(func() (any, error) {
		return nil, runRecovered(m, fn)
	})
	var panicErr *errRunPanicked
	if errors.As(err, &panicErr) {
		return panicErr
	}
	return err
}

func runRecovered(m Mode, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errRunPanicked{mode: m, cause: r}
		}
	}()
	return fn()
}
