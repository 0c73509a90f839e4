//go:build !unix

package pool

// NewDirectCapability falls back to heap-backed memory on platforms
// without the unix mmap primitives this package uses elsewhere.
func NewDirectCapability() Capability {
	return NewHeapCapability()
}
