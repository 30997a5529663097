package intellisat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusWordFlags(t *testing.T) {
	s := NewStatusWord()
	assert.False(t, s.Test(FlagStart))

	s.Set(FlagStart)
	assert.True(t, s.Test(FlagStart))
	assert.False(t, s.Test(FlagLowPower))

	s.Clear(FlagStart)
	assert.False(t, s.Test(FlagStart))
}

func TestStatusWordModeBitsIndependentOfStatusBits(t *testing.T) {
	s := NewStatusWord()
	s.Set(FlagStart)
	s.SetMode(ModeComms)

	assert.True(t, s.Test(FlagStart))
	assert.True(t, s.TestMode(ModeComms))

	s.ClearMode(ModeComms)
	assert.False(t, s.TestMode(ModeComms))
	assert.True(t, s.Test(FlagStart))
}
