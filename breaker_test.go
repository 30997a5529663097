package intellisat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakerSetGuardPassesThroughSuccess(t *testing.T) {
	bs := newBreakerSet(nil)
	err := bs.Guard(ModeComms, func() error { return nil })
	assert.NoError(t, err)
	assert.False(t, bs.Tripped(ModeComms))
}

func TestBreakerSetGuardConvertsPanicToError(t *testing.T) {
	bs := newBreakerSet(nil)
	err := bs.Guard(ModeComms, func() error { panic("driver fault") })
	assert.Error(t, err)
	var panicErr *errRunPanicked
	assert.True(t, errors.As(err, &panicErr))
}

func TestBreakerSetTripsAfterConsecutiveFailures(t *testing.T) {
	bs := newBreakerSet(nil)
	for i := 0; i < 3; i++ {
		_ = bs.Guard(ModeHDD, func() error { return errors.New("fail") })
	}
	assert.True(t, bs.Tripped(ModeHDD))
	assert.False(t, bs.Tripped(ModeMRW))
}
