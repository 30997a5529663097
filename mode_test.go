package intellisat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModePriorityOrder(t *testing.T) {
	assert.Equal(t, modeCount, len(modePriority))
	want := []Mode{ModeCharging, ModeDetumble, ModeComms, ModeHDD, ModeMRW, ModeECC}
	for i, m := range want {
		assert.Equal(t, m, modePriority[i])
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "CHARGING", ModeCharging.String())
	assert.Equal(t, "ECC", ModeECC.String())
	assert.Equal(t, "UNKNOWN", Mode(255).String())
}

func TestModeValid(t *testing.T) {
	assert.True(t, ModeECC.valid())
	assert.False(t, Mode(modeCount).valid())
}

func TestDefaultModeIsECC(t *testing.T) {
	assert.Equal(t, ModeECC, defaultMode)
}
