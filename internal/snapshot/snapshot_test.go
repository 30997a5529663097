package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRestoreBeforeSaveIsColdBoot(t *testing.T) {
	m := NewMemory()
	state, warm, err := m.Restore()
	require.NoError(t, err)
	assert.False(t, warm)
	assert.Equal(t, State{}, state)
}

func TestMemorySaveThenRestore(t *testing.T) {
	m := NewMemory()
	want := State{RebootCount: 3, StatusBits: []uint64{7}, WarmRestored: true}
	require.NoError(t, m.Save(want))

	got, warm, err := m.Restore()
	require.NoError(t, err)
	assert.True(t, warm)
	assert.Equal(t, want, got)
}
