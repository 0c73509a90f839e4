//go:build unix

package pool

import "golang.org/x/sys/unix"

// directCapability backs chunks with anonymous mmap regions, giving
// allocations a stable address outside the Go heap and outside GC scanning.
type directCapability struct{}

// NewDirectCapability returns a Capability that allocates chunk and
// unpooled memory via anonymous mmap. It panics if the platform refuses
// the mapping; callers that need a fallback should use NewHeapCapability.
func NewDirectCapability() Capability {
	return directCapability{}
}

func (directCapability) newChunkMemory(size int) []byte {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic("pool: mmap failed: " + err.Error())
	}
	return mem
}

func (directCapability) newUnpooledMemory(size int) []byte {
	return directCapability{}.newChunkMemory(size)
}

func (directCapability) memoryCopy(dst []byte, dstIndex int, src []byte, srcIndex int, length int) {
	copy(dst[dstIndex:dstIndex+length], src[srcIndex:srcIndex+length])
}

func (directCapability) destroy(memory []byte) {
	if len(memory) == 0 {
		return
	}
	if err := unix.Munmap(memory); err != nil {
		panic("pool: munmap failed: " + err.Error())
	}
}

func (directCapability) isDirect() bool {
	return true
}
