package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaConfigDefaults(t *testing.T) {
	cfg := ArenaConfig{}.withDefaults()
	require.Equal(t, defaultPageShifts, cfg.PageShifts)
	require.Equal(t, defaultMaxOrder, cfg.MaxOrder)
	require.NoError(t, cfg.validate())
}

func TestArenaConfigRejectsSmallPages(t *testing.T) {
	cfg := ArenaConfig{PageShifts: 1, MaxOrder: 2}
	require.ErrorIs(t, cfg.validate(), ErrBadRequest)
}

func TestArenaConfigRejectsExcessiveOrder(t *testing.T) {
	cfg := ArenaConfig{PageShifts: 13, MaxOrder: 99}
	require.ErrorIs(t, cfg.validate(), ErrBadRequest)
}

func TestNewArenaRejectsInvalidConfig(t *testing.T) {
	_, err := NewArena(NewHeapCapability(), ArenaConfig{PageShifts: 1})
	require.Error(t, err)
}

func TestRecyclerMaxCapacityEnvOverride(t *testing.T) {
	t.Setenv("PLA_RECYCLER_MAX_CAPACITY", "7")
	opts := resolveRecyclerOptions(nil)
	require.Equal(t, 7, opts.maxCapacity)
}

func TestRecyclerMaxCapacityEnvInvalidFallsBackToDefault(t *testing.T) {
	t.Setenv("PLA_RECYCLER_MAX_CAPACITY", "not-a-number")
	opts := resolveRecyclerOptions(nil)
	require.Equal(t, DefaultRecyclerMaxCapacity, opts.maxCapacity)
}

func TestWithMaxCapacityOverridesEnv(t *testing.T) {
	t.Setenv("PLA_RECYCLER_MAX_CAPACITY", "7")
	opts := resolveRecyclerOptions([]RecyclerOption{WithMaxCapacity(3)})
	require.Equal(t, 3, opts.maxCapacity)
}
