package pool

// defaultThreadCacheCapacity bounds how many freed handles ThreadCache
// retains per size class before falling back to the Arena's normal free
// path.
const defaultThreadCacheCapacity = 32

type cacheEntry struct {
	chunk  *Chunk
	handle Handle
}

// ThreadCache is a per-goroutine front-end for Tiny and Small allocations,
// modeled on the producer-local fast path idea used throughout this
// package's Recycler: a goroutine that keeps reusing the same ThreadCache
// recycles its own recently freed slots without ever taking the Arena's
// mutex. A ThreadCache must not be shared across goroutines; pass nil to
// Arena.Allocate/Free to opt out entirely.
type ThreadCache struct {
	tiny  [][]cacheEntry
	small [][]cacheEntry
	cap   int
}

// NewThreadCache builds a ThreadCache sized for a's size-class geometry.
func NewThreadCache(a *Arena) *ThreadCache {
	return &ThreadCache{
		tiny:  make([][]cacheEntry, numTinyClasses),
		small: make([][]cacheEntry, numSmallClasses(a.pageShifts)),
		cap:   defaultThreadCacheCapacity,
	}
}

func (c *ThreadCache) bucket(sc SizeClass, idx int) *[]cacheEntry {
	switch sc {
	case Tiny:
		if idx < 0 || idx >= len(c.tiny) {
			return nil
		}
		return &c.tiny[idx]
	case Small:
		if idx < 0 || idx >= len(c.small) {
			return nil
		}
		return &c.small[idx]
	default:
		return nil
	}
}

func (c *ThreadCache) allocate(sc SizeClass, idx int) (cacheEntry, bool) {
	b := c.bucket(sc, idx)
	if b == nil || len(*b) == 0 {
		return cacheEntry{}, false
	}
	n := len(*b)
	e := (*b)[n-1]
	*b = (*b)[:n-1]
	return e, true
}

func (c *ThreadCache) add(sc SizeClass, idx int, e cacheEntry) bool {
	b := c.bucket(sc, idx)
	if b == nil || len(*b) >= c.cap {
		return false
	}
	*b = append(*b, e)
	return true
}

func classIndex(sc SizeClass, n int) int {
	switch sc {
	case Tiny:
		return tinyIndex(n)
	case Small:
		return smallIndex(n)
	default:
		return -1
	}
}
