package intellisat

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JakeRoggenbuck/IntelliSat-Prototype/internal/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTickSource lets tests drive the executive tick-by-tick instead of
// waiting on a real timer.
type fakeTickSource struct {
	ch chan time.Time
}

func newFakeTickSource() *fakeTickSource {
	return &fakeTickSource{ch: make(chan time.Time, 1)}
}

func (f *fakeTickSource) C() <-chan time.Time { return f.ch }
func (f *fakeTickSource) Stop()               {}
func (f *fakeTickSource) fire()               { f.ch <- time.Now() }

func quickTable(t *testing.T, run func(*StatusWord, *ReentrySignal) error) *TaskTable {
	t.Helper()
	entries := make([]TaskEntry, 0, modeCount)
	for _, m := range modePriority {
		mode := m
		entries = append(entries, TaskEntry{
			ID:        mode,
			Sense:     func(*StatusWord) bool { return false },
			Configure: func(*StatusWord) error { return nil },
			Run:       run,
			Clean:     func(*StatusWord) {},
		})
	}
	return NewTaskTable(entries...)
}

func TestExecutiveRunDefaultsToECC(t *testing.T) {
	table := quickTable(t, func(w *StatusWord, signal *ReentrySignal) error {
		return nil
	})
	tick := newFakeTickSource()
	exec := New(table, tick, NewNoopLogger())

	done := make(chan error, 1)
	go func() { done <- exec.Run(context.Background(), 1) }()
	tick.fire()

	require.NoError(t, <-done)
	assert.Equal(t, ModeECC, exec.cell.Current())
	assert.Equal(t, uint64(0), exec.Status().ModeBits())
}

func TestExecutiveRunPreemptsOnPriorityChange(t *testing.T) {
	enteredCharging := make(chan struct{})
	chargingPreempted := make(chan struct{}, 1)
	var chargingShouldFire atomic.Bool
	chargingShouldFire.Store(true)

	entries := make([]TaskEntry, 0, modeCount)
	for _, m := range modePriority {
		mode := m
		switch mode {
		case ModeCharging:
			entries = append(entries, TaskEntry{
				ID:        mode,
				Sense:     func(*StatusWord) bool { return chargingShouldFire.Load() },
				Configure: func(*StatusWord) error { return nil },
				Run: func(w *StatusWord, signal *ReentrySignal) error {
					chargingShouldFire.Store(false)
					close(enteredCharging)
					for !signal.Aborted() {
						time.Sleep(time.Millisecond)
					}
					chargingPreempted <- struct{}{}
					return nil
				},
				Clean: func(*StatusWord) {},
			})
		case ModeComms:
			entries = append(entries, TaskEntry{
				ID:        mode,
				Sense:     func(*StatusWord) bool { return true },
				Configure: func(*StatusWord) error { return nil },
				Run:       func(*StatusWord, *ReentrySignal) error { return nil },
				Clean:     func(*StatusWord) {},
			})
		default:
			entries = append(entries, TaskEntry{
				ID:        mode,
				Sense:     func(*StatusWord) bool { return false },
				Configure: func(*StatusWord) error { return nil },
				Run:       func(*StatusWord, *ReentrySignal) error { return nil },
				Clean:     func(*StatusWord) {},
			})
		}
	}
	table := NewTaskTable(entries...)
	tick := newFakeTickSource()
	exec := New(table, tick, NewNoopLogger())

	done := make(chan error, 1)
	go func() { done <- exec.Run(context.Background(), 2) }()

	tick.fire()
	<-enteredCharging
	tick.fire()

	select {
	case <-chargingPreempted:
	case <-time.After(time.Second):
		t.Fatal("expected CHARGING to be preempted by COMMS")
	}
	require.NoError(t, <-done)
	assert.True(t, exec.Status().TestMode(ModeCharging), "preempted mode's bit must stay set")
}

func TestExecutiveBootColdSetsStart(t *testing.T) {
	table := quickTable(t, func(*StatusWord, *ReentrySignal) error { return nil })
	tick := newFakeTickSource()
	exec := New(table, tick, NewNoopLogger())

	store := snapshot.NewMemory()
	err := exec.Boot(store, StartupConfig{TestShortenedWait: time.Millisecond})
	require.NoError(t, err)
	assert.True(t, exec.Status().Test(FlagStart))
}
