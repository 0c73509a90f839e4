package pool

import "sync/atomic"

var idSeq uint64

// nextID returns a process-wide monotonically increasing identifier, used
// to give every Stack and WeakOrderQueue a stable identity independent of
// its memory address.
func nextID() uint64 {
	return atomic.AddUint64(&idSeq, 1)
}
