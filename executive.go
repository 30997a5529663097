// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/JakeRoggenbuck/IntelliSat-Prototype/internal/snapshot"
)

// Config bundles the executive's runtime configuration: a tick period and
// the startup release delay. The CLI harness in cmd/flightctl does not use
// it; it passes its own tick period and StartupConfig directly.
type Config struct {
	TickPeriod time.Duration
	Startup    StartupConfig
}

// Executive aggregates every piece of global state a single owner needs:
// StatusWord, TaskTable, the breaker set, the logger and the tick source.
// It is constructed once, in New.
type Executive struct {
	status   *StatusWord
	table    *TaskTable
	breakers *breakerSet
	log      *Logger
	reboots  RebootCount
	cell     dispatchCell
	tick     TickSource
	wg       sync.WaitGroup

	ctrlMu sync.Mutex
	ctrl   *ReentryController
}

// New constructs an Executive. table must cover every Mode (see
// NewTaskTable). log may be nil, in which case logging is skipped.
func New(table *TaskTable, tick TickSource, log *Logger) *Executive {
	if log == nil {
		log = NewNoopLogger()
	}
	return &Executive{
		status:   NewStatusWord(),
		table:    table,
		breakers: newBreakerSet(log),
		log:      log,
		tick:     tick,
	}
}

// Status returns the executive's StatusWord, for callers that need to
// seed flags (tests) or read them after a run.
func (e *Executive) Status() *StatusWord { return e.status }

// Boot runs the cold/warm boot sequence against store.
func (e *Executive) Boot(store snapshot.Store, cfg StartupConfig) error {
	return Startup(e.status, store, cfg, &e.reboots, e.log)
}

// ISRHandle is the narrow view of the executive the tick path is given:
// it can run arbitration and request preemption, nothing else.
type ISRHandle struct {
	e *Executive
}

// onTick is the scheduler: the tick ISR body. It runs SystemsCheck, and
// either starts the dispatcher on an idle executive or requests
// preemption of whatever mode is currently running, if the arbiter's
// pick has changed.
func (h ISRHandle) onTick() {
	e := h.e
	picked := SystemsCheck(e.table, e.status, e.breakers)

	if e.cell.Load() == DispatchSelecting {
		e.startMode(picked)
		return
	}

	if e.cell.Current() == picked {
		return
	}
	e.ctrlMu.Lock()
	ctrl := e.ctrl
	e.ctrlMu.Unlock()
	if ctrl != nil {
		ctrl.Preempt(PreemptReason{Next: picked})
	}
}

// startMode transitions the dispatcher from Selecting into Configuring and
// launches the mode's Configure/Run in its own goroutine, so the tick
// reading loop remains free to observe further ticks and preempt it — the
// Go realization of an ISR firing while mainline code is in progress.
func (e *Executive) startMode(m Mode) {
	if !e.cell.TryTransition(DispatchSelecting, DispatchConfiguring) {
		return
	}
	e.cell.SetCurrent(m)
	entry := e.table.Lookup(m)
	ctrl := NewReentryController()
	e.ctrlMu.Lock()
	e.ctrl = ctrl
	e.ctrlMu.Unlock()

	e.wg.Add(1)
	go e.runMode(m, entry, ctrl)
}

func (e *Executive) runMode(m Mode, entry TaskEntry, ctrl *ReentryController) {
	defer e.wg.Done()

	cfgErr := e.breakers.Guard(m, func() error { return entry.Configure(e.status) })
	if cfgErr != nil {
		if errors.Is(cfgErr, ErrModeDeclined) {
			e.log.Info().Str("mode", m.String()).Log("mode declined during configure")
		} else {
			e.log.Err().Err(cfgErr).Str("mode", m.String()).Log("configure failed")
		}
		e.finish(m, entry, true, false)
		return
	}

	e.cell.TryTransition(DispatchConfiguring, DispatchRunning)
	e.log.Debug().Str("mode", m.String()).Log("run starting")

	runErr := e.breakers.Guard(m, func() error { return entry.Run(e.status, ctrl.Signal()) })
	preempted := ctrl.Signal().Aborted()

	switch {
	case preempted:
		e.log.Info().Str("mode", m.String()).Str("next", ctrl.Signal().Reason().Next.String()).Log("mode preempted")
	case runErr != nil:
		e.log.Err().Err(runErr).Str("mode", m.String()).Log("run failed")
	default:
		e.log.Debug().Str("mode", m.String()).Log("run completed")
	}

	e.finish(m, entry, preempted || runErr != nil, preempted)
}

// finish runs Clean when cleanup is requested — which includes the
// preemption path, so a reentered mode always gets a chance to release
// whatever it was holding — and returns the dispatcher to Selecting.
// modeBits is cleared unless the run was preempted: a mode that ran to
// completion (normally or with a transient failure), or whose Configure
// declined or failed, has its bit cleared. A preempted mode never got to
// finish its work, so its bit stays set; SystemsCheck does not consult that
// bit when picking, so the mode runs again only if its Sense fires again.
func (e *Executive) finish(m Mode, entry TaskEntry, cleanup, preempted bool) {
	if cleanup {
		entry.Clean(e.status)
	}
	if !preempted {
		e.status.ClearMode(m)
	}
	e.ctrlMu.Lock()
	e.ctrl = nil
	e.ctrlMu.Unlock()
	e.cell.TryTransition(DispatchRunning, DispatchSelecting)
	e.cell.TryTransition(DispatchConfiguring, DispatchSelecting)
}

// Run drives the executive for exactly ticks tick-source events. It
// returns once that many ticks have been observed and any in-flight mode
// has wound down, or earlier if ctx is cancelled.
func (e *Executive) Run(ctx context.Context, ticks int) error {
	handle := ISRHandle{e: e}
	count := 0
	for count < ticks {
		select {
		case <-e.tick.C():
			count++
			handle.onTick()
		case <-ctx.Done():
			e.tick.Stop()
			e.wg.Wait()
			return ctx.Err()
		}
	}
	e.tick.Stop()
	e.wg.Wait()
	return nil
}
