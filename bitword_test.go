package intellisat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeWordSetClearTest(t *testing.T) {
	var w modeWord
	assert.False(t, w.TestMode(ModeComms))

	w.SetMode(ModeComms)
	assert.True(t, w.TestMode(ModeComms))
	assert.False(t, w.TestMode(ModeMRW))

	w.SetMode(ModeMRW)
	assert.True(t, w.TestMode(ModeComms))
	assert.True(t, w.TestMode(ModeMRW))

	w.ClearMode(ModeComms)
	assert.False(t, w.TestMode(ModeComms))
	assert.True(t, w.TestMode(ModeMRW))
}

func TestModeWordSnapshot(t *testing.T) {
	var w modeWord
	w.SetMode(ModeCharging)
	w.SetMode(ModeECC)
	snap := w.Snapshot()
	assert.Equal(t, uint64(1<<uint(ModeCharging)|1<<uint(ModeECC)), snap)
}
