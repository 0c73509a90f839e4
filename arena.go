package pool

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Arena is a pooled byte-buffer allocator over chunks of a single
// Capability's backing memory. It groups chunks into usage-banded
// ChunkLists and slices sub-page-sized requests out of per-size-class
// rings of Subpages, following the jemalloc/Netty PoolArena design.
type Arena struct {
	cap Capability

	pageSize   int
	pageShifts int
	maxOrder   int
	chunkSize  int
	log        *slog.Logger

	mu                                   sync.Mutex
	qInit, q000, q025, q050, q075, q100 *ChunkList

	tinyRings  []subpageRing
	smallRings []subpageRing

	tinyAllocs, smallAllocs, normalAllocs, hugeAllocs int64
	tinyFrees, smallFrees, normalFrees, hugeFrees     int64
	activeChunks                                      int64
}

// NewArena builds an Arena backed by cap, validating and defaulting cfg.
func NewArena(cap Capability, cfg ArenaConfig) (*Arena, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pageSize := 1 << uint(cfg.PageShifts)
	a := &Arena{
		cap:        cap,
		pageSize:   pageSize,
		pageShifts: cfg.PageShifts,
		maxOrder:   cfg.MaxOrder,
		chunkSize:  pageSize << uint(cfg.MaxOrder),
		log:        cfg.logger(),
	}
	a.qInit, a.q000, a.q025, a.q050, a.q075, a.q100 = newArenaChunkLists(a, a.chunkSize)

	a.tinyRings = make([]subpageRing, numTinyClasses)
	for i := range a.tinyRings {
		a.tinyRings[i].init(i << tinyIdxShift)
	}
	numSmall := numSmallClasses(a.pageShifts)
	a.smallRings = make([]subpageRing, numSmall)
	for i := range a.smallRings {
		a.smallRings[i].init(1 << uint(smallIdxShift+i))
	}
	return a, nil
}

func (a *Arena) ringFor(sc SizeClass, n int) *subpageRing {
	switch sc {
	case Tiny:
		return &a.tinyRings[tinyIndex(n)]
	case Small:
		return &a.smallRings[smallIndex(n)]
	default:
		return nil
	}
}

// Allocate populates buf with reqCapacity bytes of pooled memory. When
// cache is non-nil and the request classifies as Tiny or Small, a cache
// hit bypasses the Arena's mutex entirely.
func (a *Arena) Allocate(cache *ThreadCache, buf Buffer, reqCapacity int) error {
	n, err := normalize(reqCapacity, a.pageSize, a.chunkSize)
	if err != nil {
		return err
	}
	sc := classify(n, a.pageSize, a.chunkSize)

	if cache != nil {
		if idx := classIndex(sc, n); idx >= 0 {
			if e, ok := cache.allocate(sc, idx); ok {
				e.chunk.initBuf(buf, e.handle, reqCapacity)
				buf.setCache(cache)
				a.countAlloc(sc)
				return nil
			}
		}
	}

	if sc == Huge {
		mem := a.cap.newUnpooledMemory(n)
		chunk := newUnpooledChunk(a, mem)
		buf.initUnpooled(chunk, reqCapacity)
		buf.setCache(nil)
		a.countAlloc(sc)
		return nil
	}

	ring := a.ringFor(sc, n)

	// The ring-head fast path: a subpage of this exact elemSize with room
	// left over from an earlier allocation serves the request without
	// ever touching the arena mutex or a Chunk's buddy tree.
	if ring != nil {
		if h, c, ok := ring.tryAllocate(); ok {
			c.adjustFreeBytes(-n)
			c.initBuf(buf, h, reqCapacity)
			buf.setCache(cache)
			a.countAlloc(sc)
			return nil
		}
	}

	a.mu.Lock()
	handle, chunk, err := a.allocateFromChunks(ring, n)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	a.mu.Unlock()

	chunk.initBuf(buf, handle, reqCapacity)
	buf.setCache(cache)
	a.countAlloc(sc)
	return nil
}

// allocateFromChunks must be called with a.mu held. It tries the
// fullness-ordered bands, then falls back to carving a fresh chunk out of
// the Capability.
func (a *Arena) allocateFromChunks(ring *subpageRing, n int) (Handle, *Chunk, error) {
	for _, l := range [...]*ChunkList{a.q050, a.q025, a.q000, a.qInit, a.q075, a.q100} {
		if h, c, ok := l.allocate(ring, n); ok {
			return h, c, nil
		}
	}

	mem := a.cap.newChunkMemory(a.chunkSize)
	chunk := newChunk(a, mem, a.pageSize, a.pageShifts, a.maxOrder)
	h, err := chunk.Allocate(ring, n)
	if err != nil {
		return noHandle, nil, err
	}
	a.qInit.add(chunk)
	atomic.AddInt64(&a.activeChunks, 1)
	a.log.Debug("pool: new chunk", "chunkSize", a.chunkSize, "direct", a.cap.isDirect())
	return h, chunk, nil
}

// Free returns buf's memory to the Arena (or, for Huge allocations, back
// to the Capability directly) and clears buf.
func (a *Arena) Free(buf Buffer) {
	chunk, handle, maxLength, cache, pooled := buf.release()
	if chunk == nil {
		return
	}
	if !pooled {
		a.cap.destroy(chunk.memory)
		a.countFree(Huge)
		return
	}

	sc := classify(maxLength, a.pageSize, a.chunkSize)
	if cache != nil {
		if idx := classIndex(sc, maxLength); idx >= 0 {
			if cache.add(sc, idx, cacheEntry{chunk: chunk, handle: handle}) {
				a.countFree(sc)
				return
			}
		}
	}

	ring := a.ringFor(sc, maxLength)

	a.mu.Lock()
	list := chunk.list
	survives := true
	if list != nil {
		survives = list.free(chunk, ring, handle)
	} else {
		chunk.Free(ring, handle)
	}
	if !survives {
		atomic.AddInt64(&a.activeChunks, -1)
	}
	a.mu.Unlock()

	if !survives {
		a.cap.destroy(chunk.memory)
		a.log.Debug("pool: chunk destroyed", "chunkSize", a.chunkSize)
	}
	a.countFree(sc)
}

// Reallocate grows or shrinks buf to newCapacity, copying
// min(oldLen, newCapacity) bytes into the new allocation. When
// freeOldMemory is true the previous allocation is released before the
// new one is made.
func (a *Arena) Reallocate(cache *ThreadCache, buf Buffer, newCapacity int, freeOldMemory bool) error {
	oldBytes := buf.Bytes()
	old := make([]byte, len(oldBytes))
	copy(old, oldBytes)

	if freeOldMemory {
		a.Free(buf)
	}

	if err := a.Allocate(cache, buf, newCapacity); err != nil {
		return err
	}
	n := len(old)
	if n > newCapacity {
		n = newCapacity
	}
	copy(buf.Bytes()[:n], old[:n])
	return nil
}

func (a *Arena) countAlloc(sc SizeClass) {
	switch sc {
	case Tiny:
		atomic.AddInt64(&a.tinyAllocs, 1)
	case Small:
		atomic.AddInt64(&a.smallAllocs, 1)
	case Normal:
		atomic.AddInt64(&a.normalAllocs, 1)
	case Huge:
		atomic.AddInt64(&a.hugeAllocs, 1)
	}
}

func (a *Arena) countFree(sc SizeClass) {
	switch sc {
	case Tiny:
		atomic.AddInt64(&a.tinyFrees, 1)
	case Small:
		atomic.AddInt64(&a.smallFrees, 1)
	case Normal:
		atomic.AddInt64(&a.normalFrees, 1)
	case Huge:
		atomic.AddInt64(&a.hugeFrees, 1)
	}
}
