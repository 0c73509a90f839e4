package pool

// Buffer is a view over a region of an Arena-managed Chunk, or over an
// unpooled allocation for Huge requests. It is produced empty by
// NewHeapBuffer/NewDirectBuffer and populated in place by Arena.Allocate.
type Buffer interface {
	initPooled(chunk *Chunk, handle Handle, offset, length, maxLength int)
	initUnpooled(chunk *Chunk, length int)
	setCache(cache *ThreadCache)
	release() (chunk *Chunk, handle Handle, maxLength int, cache *ThreadCache, pooled bool)

	// Bytes returns the buffer's current contents.
	Bytes() []byte
	// Len returns the number of readable/writable bytes currently in the
	// buffer, as requested at the most recent Allocate or Reallocate.
	Len() int
	// Cap returns the normalized capacity backing this buffer: the size
	// of the run or subpage slot actually reserved for it.
	Cap() int
}

// PooledBuffer is the Buffer implementation used for both heap- and
// direct-backed arenas; the two NewXBuffer constructors exist only to
// mirror how callers choose a capability when building the Arena.
type PooledBuffer struct {
	arena  *Arena
	chunk  *Chunk
	handle Handle
	offset int
	length int
	maxLength int
	cache  *ThreadCache
	pooled bool
}

// NewHeapBuffer returns an empty Buffer to be populated by a.Allocate.
func NewHeapBuffer(a *Arena) *PooledBuffer {
	return &PooledBuffer{arena: a}
}

// NewDirectBuffer returns an empty Buffer to be populated by a.Allocate.
// It behaves identically to NewHeapBuffer; which capability backs the
// memory is determined by the Arena, not the buffer.
func NewDirectBuffer(a *Arena) *PooledBuffer {
	return &PooledBuffer{arena: a}
}

func (b *PooledBuffer) initPooled(chunk *Chunk, handle Handle, offset, length, maxLength int) {
	b.chunk = chunk
	b.handle = handle
	b.offset = offset
	b.length = length
	b.maxLength = maxLength
	b.pooled = true
}

func (b *PooledBuffer) initUnpooled(chunk *Chunk, length int) {
	b.chunk = chunk
	b.handle = noHandle
	b.offset = 0
	b.length = length
	b.maxLength = length
	b.pooled = false
}

func (b *PooledBuffer) setCache(cache *ThreadCache) {
	b.cache = cache
}

func (b *PooledBuffer) release() (*Chunk, Handle, int, *ThreadCache, bool) {
	chunk, handle, maxLength, cache, pooled := b.chunk, b.handle, b.maxLength, b.cache, b.pooled
	b.chunk, b.handle, b.cache = nil, noHandle, nil
	b.offset, b.length, b.maxLength = 0, 0, 0
	return chunk, handle, maxLength, cache, pooled
}

// Bytes returns the buffer's current contents.
func (b *PooledBuffer) Bytes() []byte {
	if b.chunk == nil {
		return nil
	}
	return b.chunk.memory[b.offset : b.offset+b.length]
}

// Len returns the number of bytes requested at allocation time.
func (b *PooledBuffer) Len() int {
	return b.length
}

// Cap returns the normalized capacity actually reserved for this buffer.
func (b *PooledBuffer) Cap() int {
	return b.maxLength
}
