package tui

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/chipselect/internal/core/config"
)

// runTicks feeds tick messages through Update until the chain stops and
// returns how many ticks it took.
func runTicks(t *testing.T, m *Model, cmd tea.Cmd, limit int) int {
	t.Helper()

	ticks := 0
	for cmd != nil {
		_, cmd = m.Update(toastTickMsg{})
		ticks++
		if ticks > limit {
			t.Fatalf("tick chain ran for more than %d ticks", limit)
		}
	}
	return ticks
}

func TestToastUpdateLoop_ExpiresAtTTL(t *testing.T) {
	f := newPage(t)

	cmd := f.send(ConfigReloadedMsg{Err: errors.New("bad yaml")})
	require.NotNil(t, cmd, "first toast starts the tick chain")
	require.True(t, f.m.toasts.Ticking())

	ticks := runTicks(t, f.m, cmd, 100)

	assert.Equal(t, int(defaultToastTTL/toastTickInterval), ticks)
	assert.False(t, f.m.toasts.HasToasts())
	assert.False(t, f.m.toasts.Ticking())
}

func TestToastUpdateLoop_SecondToastJoinsRunningChain(t *testing.T) {
	f := newPage(t)
	cfg := config.DefaultConfig()

	cmd := f.send(ConfigReloadedMsg{Config: &cfg})
	require.NotNil(t, cmd)

	for range 10 {
		_, cmd = f.m.Update(toastTickMsg{})
	}

	second := f.send(ConfigReloadedMsg{Err: errors.New("bad yaml")})
	assert.Nil(t, second, "a running chain is not started twice")
	require.Len(t, f.m.toasts.Toasts(), 2)

	ticks := 10 + runTicks(t, f.m, cmd, 200)

	// The second toast was pushed 10 ticks in and lives a full TTL.
	assert.Equal(t, 10+int(defaultToastTTL/toastTickInterval), ticks)
	assert.False(t, f.m.toasts.HasToasts())
}

func TestToastUpdateLoop_RestartsAfterChainStops(t *testing.T) {
	f := newPage(t)

	cmd := f.send(ConfigReloadedMsg{Err: errors.New("first")})
	runTicks(t, f.m, cmd, 100)
	require.False(t, f.m.toasts.HasToasts())

	cmd = f.send(ConfigReloadedMsg{Err: errors.New("second")})
	assert.NotNil(t, cmd, "a stopped chain restarts")
	assert.True(t, f.m.toasts.Ticking())
}
