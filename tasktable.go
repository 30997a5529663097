// Copyright 2026 Jake Roggenbuck
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package intellisat

import "fmt"

// TaskEntry is the capability record for one Mode: the four callbacks the
// dispatcher and arbiter invoke against it. Sense and Clean must return
// promptly; Configure and Run may block for bounded periods. Only Run is
// handed a ReentrySignal (see abort.go) and must poll it to support
// preemption; a preemption requested during Configure is seen by the Run
// that follows.
type TaskEntry struct {
	ID        Mode
	Sense     func(w *StatusWord) bool
	Configure func(w *StatusWord) error
	Run       func(w *StatusWord, signal *ReentrySignal) error
	Clean     func(w *StatusWord)
}

// TaskTable is the static, build-once array of TaskEntry indexed by Mode.
// It never mutates after construction; SystemsCheck and the dispatcher
// both read it concurrently without synchronization.
type TaskTable struct {
	entries [modeCount]TaskEntry
}

// NewTaskTable builds a TaskTable from one entry per Mode. Every Mode in
// modePriority must be present exactly once; a missing or duplicated Mode
// is a programming error caught at construction, not at arbitration time.
func NewTaskTable(entries ...TaskEntry) *TaskTable {
	var seen [modeCount]bool
	t := &TaskTable{}
	for _, e := range entries {
		if !e.ID.valid() {
			panic(fmt.Sprintf("intellisat: task table entry has invalid mode %d", e.ID))
		}
		if seen[e.ID] {
			panic(fmt.Sprintf("intellisat: task table has duplicate entry for mode %s", e.ID))
		}
		seen[e.ID] = true
		t.entries[e.ID] = e
	}
	for _, m := range modePriority {
		if !seen[m] {
			panic(fmt.Sprintf("intellisat: task table missing entry for mode %s", m))
		}
	}
	return t
}

// Lookup returns the TaskEntry for id. A request for an out-of-range Mode
// is a programming error: it can only arise from memory corruption of the
// mode word or a coding mistake upstream, never from sensed input, so it
// panics rather than returning an error the caller would have to invent a
// recovery path for.
func (t *TaskTable) Lookup(id Mode) TaskEntry {
	if !id.valid() {
		panic(fmt.Sprintf("intellisat: task table lookup out of range: %d", id))
	}
	return t.entries[id]
}
