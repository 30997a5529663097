// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

// SystemsCheck senses every mode in priority order, setting modeBits for
// each mode whose Sense() fires, and returns the highest-priority mode to
// run next. If no mode fires, it sets and returns defaultMode (ECC) as the
// keep-alive. A mode whose breaker has tripped is treated as if Sense()
// returned false: the arbiter falls through to the next-highest-priority
// requested mode, or the default, without touching that mode's modeBits.
// The pick is made only among the modes that sense on this call: bits left
// set in modeBits by earlier calls are not consulted when choosing.
//
// SystemsCheck is idempotent with respect to statusBits: it only reads
// StatusWord, never mutates statusBits itself.
func SystemsCheck(table *TaskTable, status *StatusWord, breakers *breakerSet) Mode {
	var picked Mode
	found := false
	for _, m := range modePriority {
		entry := table.Lookup(m)
		if !entry.Sense(status) {
			continue
		}
		if breakers != nil && breakers.Tripped(m) {
			continue
		}
		status.SetMode(m)
		if !found {
			picked = m
			found = true
		}
	}
	if !found {
		status.SetMode(defaultMode)
		return defaultMode
	}
	return picked
}
