// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Package demo provides minimal, deterministic TaskEntry bodies good
// enough to drive the CLI test harness and the package tests, standing in
// for real sensor/driver-backed mode bodies.
package demo

import (
	"time"

	"github.com/JakeRoggenbuck/IntelliSat-Prototype"
)

// Interval lets tests shorten the poll interval Run uses while checking the
// reentry signal; production code uses Interval unmodified.
var Interval = 5 * time.Millisecond

// TaskTable returns a TaskTable with one TaskEntry per Mode, each backed
// by an in-memory flag (see modes.go) so Sense can be driven
// deterministically from tests via the Force* and SetLowPower setters.
func TaskTable() *intellisat.TaskTable {
	return intellisat.NewTaskTable(
		chargingEntry(),
		detumbleEntry(),
		commsEntry(),
		hddEntry(),
		mrwEntry(),
		eccEntry(),
	)
}

// runUntilPreempted is the shared shape of every demo Run body: it polls
// the reentry signal at Interval, doing a trivial unit of fake work each
// time around, until either budget work units have elapsed or the signal
// trips.
func runUntilPreempted(signal *intellisat.ReentrySignal, budget int) error {
	for i := 0; i < budget; i++ {
		if signal.Aborted() {
			return nil
		}
		time.Sleep(Interval)
	}
	return nil
}
