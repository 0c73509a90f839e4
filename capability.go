package pool

// Capability supplies the backing-memory primitives an Arena needs:
// where a chunk's bytes come from, how they're copied, and how they're
// released. The heap capability (NewHeapCapability) and the unix
// mmap-backed direct capability (NewDirectCapability) are
// the two implementations shipped here; both drive the identical
// Chunk/ChunkList/Subpage bookkeeping.
type Capability interface {
	newChunkMemory(size int) []byte
	newUnpooledMemory(size int) []byte
	memoryCopy(dst []byte, dstIndex int, src []byte, srcIndex int, length int)
	destroy(memory []byte)
	isDirect() bool
}
