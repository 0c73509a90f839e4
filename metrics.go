package pool

import "sync/atomic"

// ArenaMetrics is a point-in-time snapshot of an Arena's activity,
// broken out by size class the way jemalloc's stats interface does.
type ArenaMetrics struct {
	TinyAllocs, SmallAllocs, NormalAllocs, HugeAllocs int64
	TinyFrees, SmallFrees, NormalFrees, HugeFrees     int64
	ActiveChunks                                      int64
	ChunkSize                                         int
	PageSize                                          int
}

// Metrics returns a snapshot of a's counters. Each field is
// read with its own atomic load, so under concurrent allocation the
// snapshot is a close approximation rather than a single atomic point,
// matching how the counters are updated independently on the hot path.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		TinyAllocs:   atomic.LoadInt64(&a.tinyAllocs),
		SmallAllocs:  atomic.LoadInt64(&a.smallAllocs),
		NormalAllocs: atomic.LoadInt64(&a.normalAllocs),
		HugeAllocs:   atomic.LoadInt64(&a.hugeAllocs),
		TinyFrees:    atomic.LoadInt64(&a.tinyFrees),
		SmallFrees:   atomic.LoadInt64(&a.smallFrees),
		NormalFrees:  atomic.LoadInt64(&a.normalFrees),
		HugeFrees:    atomic.LoadInt64(&a.hugeFrees),
		ActiveChunks: atomic.LoadInt64(&a.activeChunks),
		ChunkSize:    a.chunkSize,
		PageSize:     a.pageSize,
	}
}

// Outstanding returns the number of allocations across all size classes
// that have not yet been freed.
func (m ArenaMetrics) Outstanding() int64 {
	allocs := m.TinyAllocs + m.SmallAllocs + m.NormalAllocs + m.HugeAllocs
	frees := m.TinyFrees + m.SmallFrees + m.NormalFrees + m.HugeFrees
	return allocs - frees
}
