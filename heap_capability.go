package pool

// heapCapability backs chunks with ordinary Go-heap byte slices.
type heapCapability struct{}

// NewHeapCapability returns a Capability that allocates chunk and
// unpooled memory as plain Go-heap []byte values.
func NewHeapCapability() Capability {
	return heapCapability{}
}

func (heapCapability) newChunkMemory(size int) []byte {
	return make([]byte, size)
}

func (heapCapability) newUnpooledMemory(size int) []byte {
	return make([]byte, size)
}

func (heapCapability) memoryCopy(dst []byte, dstIndex int, src []byte, srcIndex int, length int) {
	copy(dst[dstIndex:dstIndex+length], src[srcIndex:srcIndex+length])
}

func (heapCapability) destroy([]byte) {
	// The garbage collector reclaims heap memory; nothing to do.
}

func (heapCapability) isDirect() bool {
	return false
}
