// Package pool implements a jemalloc-style pooled byte-buffer allocator and
// a companion per-goroutine object recycler.
//
// # Overview
//
// An Arena partitions pre-reserved memory into fixed-size chunks, subdivides
// each chunk into pages via a buddy tree, and further subdivides pages into
// equal-sized subpage slots. Requests are classified into size classes
// (Tiny, Small, Normal, Huge) and routed to the strategy appropriate for
// their size:
//
//   - Tiny/Small requests are served from a subpage slab shared by many
//     allocations of the same rounded size.
//   - Normal requests consume a run of pages carved directly out of a
//     chunk's buddy tree.
//   - Huge requests bypass pooling entirely: a dedicated chunk is created
//     and destroyed with the allocation.
//
// Chunks migrate between six usage-band lists (qInit, q000, q025, q050,
// q075, q100) as their occupancy changes, which keeps nearly-empty chunks
// eligible for destruction and nearly-full chunks out of the hot search
// path.
//
// # Basic Usage
//
//	cap := pool.NewHeapCapability()
//	a, err := pool.NewArena(cap, pool.ArenaConfig{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	buf := pool.NewHeapBuffer(a)
//	if err := a.Allocate(nil, buf, 4096); err != nil {
//		log.Fatal(err)
//	}
//	defer a.Free(buf)
//
// # Thread Safety
//
// Arena is safe for concurrent use: subpage rings are protected by
// per-size-class guards, and chunk-list bookkeeping is protected by a
// single arena-wide guard. See ArenaConfig and the package-level
// concurrency notes in DESIGN.md for the exact locking discipline.
//
// # Object Recycler
//
// Recycler[T] hands out reusable values of type T through a per-goroutine
// Stack[T]. Objects released on a goroutine other than their owner are
// queued on a WeakOrderQueue and are scavenged into the owner's Stack when
// that goroutine calls Get with its own Stack empty, without a lock on the
// hot path:
//
//	type scratch struct{ buf []byte }
//
//	r := pool.NewRecycler(func(h *pool.Handle[*scratch]) *scratch {
//		return &scratch{buf: make([]byte, 0, 4096)}
//	})
//	s := r.NewStack()
//	h := s.Get()
//	obj := h.Value()
//	// ... use obj.buf ...
//	s.Recycle(h, obj)
//
// # Metrics
//
//	m := a.Metrics()
//	fmt.Printf("tiny=%d small=%d normal=%d huge=%d\n",
//		m.TinyAllocs, m.SmallAllocs, m.NormalAllocs, m.HugeAllocs)
package pool
