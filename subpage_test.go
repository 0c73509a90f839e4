package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRing(elemSize int) *subpageRing {
	r := &subpageRing{}
	r.init(elemSize)
	return r
}

func TestSubpageAllocateExhaustsSlots(t *testing.T) {
	ring := newTestRing(256)
	s := newSubpage(ring, nil, 1, 0, 1024, 256) // 1024/256 = 4 slots

	require.Equal(t, 4, s.maxNumElems)
	require.Equal(t, 4, s.numAvail)

	seen := make(map[int]bool)
	for i := 0; i < 4; i++ {
		h := s.allocate()
		require.True(t, h.valid())
		require.True(t, h.isSubpage())
		require.False(t, seen[h.slotIndex()], "slot reused before being freed")
		seen[h.slotIndex()] = true
	}

	// The subpage removed itself from the ring once it filled up.
	require.True(t, ring.empty())
	require.Equal(t, noHandle, s.allocate())
}

func TestSubpageFreeRelinksAndSignalsPageRelease(t *testing.T) {
	ring := newTestRing(512)
	// A second subpage stays in the ring so the first one isn't the sole
	// member when it's freed, which is what should trigger page release.
	other := newSubpage(ring, nil, 2, 1024, 1024, 512)
	s := newSubpage(ring, nil, 1, 0, 1024, 512) // 2 slots

	h1 := s.allocate()
	h2 := s.allocate()
	require.True(t, ring.empty() == false)
	require.Equal(t, noHandle, s.allocate())

	// Freeing a slot re-adds the now-non-full subpage to the ring.
	release := s.free(ring, h1.slotIndex())
	require.False(t, release)
	require.Equal(t, 1, s.numAvail)

	release = s.free(ring, h2.slotIndex())
	require.True(t, release)
	require.Equal(t, s.maxNumElems, s.numAvail)

	_ = other
}

func TestSubpageSoleRingMemberNeverReleases(t *testing.T) {
	ring := newTestRing(512)
	s := newSubpage(ring, nil, 1, 0, 1024, 512) // 2 slots, never joined by another subpage

	h1 := s.allocate()
	h2 := s.allocate()

	require.False(t, s.free(ring, h1.slotIndex()))
	require.False(t, s.free(ring, h2.slotIndex()))
	require.True(t, s.isSoleRingMember(ring))
}

func TestSubpageInitReinitializesForNewElemSize(t *testing.T) {
	ring := newTestRing(512)
	s := newSubpage(ring, nil, 1, 0, 1024, 512)
	h := s.allocate()
	require.True(t, h.valid())

	// Simulate the page being released and the slot reused for a
	// different size class, as Chunk.allocateSubpage does when it finds a
	// stale subpages[] entry at a freshly reallocated leaf.
	s.init(ring, 256, 1024)
	require.Equal(t, 4, s.maxNumElems)
	require.Equal(t, 4, s.numAvail)
}
