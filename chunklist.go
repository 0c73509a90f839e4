package pool

import "math"

// ChunkList is a usage-banded bucket of Chunks: [minUsage, maxUsage) percent
// occupied. Chunks migrate between bands as allocations and frees change
// their usage, keeping allocation scans biased towards fuller chunks (so
// mostly-empty chunks become eligible for destruction) without ever
// scanning the whole arena.
//
// All ChunkList methods assume the caller holds the owning Arena's mutex;
// ChunkList carries no lock of its own.
type ChunkList struct {
	arena               *Arena
	minUsage, maxUsage  int
	chunkSize           int
	head                *Chunk
	nextList, prevList  *ChunkList
}

func newChunkList(arena *Arena, chunkSize, minUsage, maxUsage int) *ChunkList {
	return &ChunkList{arena: arena, chunkSize: chunkSize, minUsage: minUsage, maxUsage: maxUsage}
}

// newArenaChunkLists builds the qInit..q100 band chain and wires nextList
// and prevList exactly as PoolChunkList's bands do: qInit's prevList is
// itself (its minUsage of MinInt means the self-loop is never taken), and
// q000's prevList is nil so a fully drained chunk falls out of the arena
// entirely instead of cycling back into qInit.
func newArenaChunkLists(arena *Arena, chunkSize int) (qInit, q000, q025, q050, q075, q100 *ChunkList) {
	qInit = newChunkList(arena, chunkSize, math.MinInt32, 25)
	q000 = newChunkList(arena, chunkSize, 1, 50)
	q025 = newChunkList(arena, chunkSize, 25, 75)
	q050 = newChunkList(arena, chunkSize, 50, 100)
	q075 = newChunkList(arena, chunkSize, 75, 100)
	q100 = newChunkList(arena, chunkSize, 100, math.MaxInt32)

	qInit.nextList, qInit.prevList = q000, qInit
	q000.nextList, q000.prevList = q025, nil
	q025.nextList, q025.prevList = q050, q000
	q050.nextList, q050.prevList = q075, q025
	q075.nextList, q075.prevList = q100, q050
	q100.nextList, q100.prevList = nil, q075
	return
}

// allocate scans this band's chunks for one that can satisfy normCapacity.
// A chunk whose usage crosses into the next band is promoted immediately.
func (l *ChunkList) allocate(ring *subpageRing, normCapacity int) (Handle, *Chunk, bool) {
	if l.head == nil || normCapacity > l.chunkSize {
		return noHandle, nil, false
	}
	for cur := l.head; cur != nil; cur = cur.next {
		h, err := cur.Allocate(ring, normCapacity)
		if err != nil {
			continue
		}
		if l.nextList != nil && cur.Usage() >= l.maxUsage {
			l.remove(cur)
			l.nextList.add(cur)
		}
		return h, cur, true
	}
	return noHandle, nil, false
}

// free returns handle to chunk and re-files chunk if its usage has dropped
// below this band. It reports false when chunk has fallen out of every
// band (fully empty, with no prevList to cascade into) and must be
// destroyed by the caller.
func (l *ChunkList) free(chunk *Chunk, ring *subpageRing, handle Handle) bool {
	chunk.Free(ring, handle)
	if chunk.Usage() < l.minUsage {
		l.remove(chunk)
		return l.move(chunk)
	}
	return true
}

// move is called once free has already established chunk.Usage() is below
// l's own band; it always cascades to prevList rather than re-adding to l.
func (l *ChunkList) move(chunk *Chunk) bool {
	if l.prevList == nil {
		return false
	}
	return l.prevList.move0(chunk)
}

func (l *ChunkList) move0(chunk *Chunk) bool {
	if chunk.Usage() < l.minUsage {
		if l.prevList == nil {
			return false
		}
		return l.prevList.move0(chunk)
	}
	l.add0(chunk)
	return true
}

// add files chunk into the lowest band whose maxUsage it fits under,
// cascading to nextList when it doesn't. Used both for a freshly built
// chunk's first placement and for promotion after allocate.
func (l *ChunkList) add(chunk *Chunk) {
	if l.nextList != nil && chunk.Usage() >= l.maxUsage {
		l.nextList.add(chunk)
		return
	}
	l.add0(chunk)
}

func (l *ChunkList) add0(chunk *Chunk) {
	chunk.list = l
	chunk.prev = nil
	chunk.next = l.head
	if l.head != nil {
		l.head.prev = chunk
	}
	l.head = chunk
}

func (l *ChunkList) remove(chunk *Chunk) {
	prev, next := chunk.prev, chunk.next
	if prev == nil {
		l.head = next
	} else {
		prev.next = next
	}
	if next != nil {
		next.prev = prev
	}
	chunk.prev, chunk.next, chunk.list = nil, nil, nil
}
