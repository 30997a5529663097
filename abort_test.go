package intellisat

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReentrySignalInitiallyNotAborted(t *testing.T) {
	ctrl := NewReentryController()
	assert.False(t, ctrl.Signal().Aborted())
}

func TestReentryControllerPreemptTripsSignal(t *testing.T) {
	ctrl := NewReentryController()
	ctrl.Preempt(PreemptReason{Next: ModeComms})

	sig := ctrl.Signal()
	assert.True(t, sig.Aborted())
	assert.Equal(t, ModeComms, sig.Reason().Next)
}

func TestReentryControllerPreemptFirstReasonWins(t *testing.T) {
	ctrl := NewReentryController()
	ctrl.Preempt(PreemptReason{Next: ModeComms})
	ctrl.Preempt(PreemptReason{Next: ModeMRW})

	assert.Equal(t, ModeComms, ctrl.Signal().Reason().Next)
}

func TestReentrySignalOnPreemptBeforeTrip(t *testing.T) {
	ctrl := NewReentryController()
	var called atomic.Bool
	var got Mode
	ctrl.Signal().OnPreempt(func(r PreemptReason) {
		called.Store(true)
		got = r.Next
	})

	assert.False(t, called.Load())
	ctrl.Preempt(PreemptReason{Next: ModeHDD})
	assert.True(t, called.Load())
	assert.Equal(t, ModeHDD, got)
}

func TestReentrySignalOnPreemptAfterTripRunsImmediately(t *testing.T) {
	ctrl := NewReentryController()
	ctrl.Preempt(PreemptReason{Next: ModeDetumble})

	var got Mode
	ctrl.Signal().OnPreempt(func(r PreemptReason) {
		got = r.Next
	})
	assert.Equal(t, ModeDetumble, got)
}
