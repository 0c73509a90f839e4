package pool

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkListBandWiring(t *testing.T) {
	qInit, q000, q025, q050, q075, q100 := newArenaChunkLists(nil, 16384)

	require.Equal(t, q000, qInit.nextList)
	require.Equal(t, qInit, qInit.prevList)

	require.Equal(t, q025, q000.nextList)
	require.Nil(t, q000.prevList)

	require.Equal(t, q050, q025.nextList)
	require.Equal(t, q000, q025.prevList)

	require.Equal(t, q075, q050.nextList)
	require.Equal(t, q025, q050.prevList)

	require.Equal(t, q100, q075.nextList)
	require.Equal(t, q050, q075.prevList)

	require.Nil(t, q100.nextList)
	require.Equal(t, q075, q100.prevList)

	require.Equal(t, math.MinInt32, qInit.minUsage)
	require.Equal(t, math.MaxInt32, q100.maxUsage)
}

func TestChunkListAllocateAndPromote(t *testing.T) {
	_, q000, _, _, _, _ := newArenaChunkLists(nil, 16384)
	c := newTestChunk(4096, 12, 2)
	q000.add0(c)

	h, got, ok := q000.allocate(nil, 16384)
	require.True(t, ok)
	require.Same(t, c, got)
	require.True(t, h.valid())
	require.Equal(t, 100, c.Usage())

	// A fully used chunk no longer belongs in q000's [1,50) band; it
	// should have migrated forward to q025's successor chain.
	require.Nil(t, q000.head)
}

func TestChunkListFreeCascadesToDestroy(t *testing.T) {
	qInit, q000, _, _, _, _ := newArenaChunkLists(nil, 16384)
	_ = qInit
	c := newTestChunk(4096, 12, 2)
	q000.add0(c)

	h, err := c.Allocate(nil, 16384)
	require.NoError(t, err)

	survives := q000.free(c, nil, h)
	require.False(t, survives, "a chunk that drains to 0%% usage in q000 has no prevList and must be destroyed")
}

func TestChunkListAddRoutesByUsage(t *testing.T) {
	qInit, q000, q025, _, _, _ := newArenaChunkLists(nil, 16384)
	empty := newTestChunk(4096, 12, 2)
	qInit.add(empty)
	require.Same(t, qInit, empty.list)

	full := newTestChunk(4096, 12, 2)
	_, err := full.Allocate(nil, 16384)
	require.NoError(t, err)
	qInit.add(full)
	// 100% usage cascades straight past qInit and q000 into q025's chain
	// (qInit maxUsage=25, q000 maxUsage=50, q025 maxUsage=75... it keeps
	// cascading until a band whose maxUsage it fits under, or runs out).
	require.NotSame(t, qInit, full.list)
	require.NotSame(t, q000, full.list)
}
