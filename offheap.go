package offheap

import "unsafe"

// Allocator provides the raw memory primitives backing an off-heap array.
// Implementations return nil when the requested block cannot be obtained.
type Allocator interface {
	// Alloc reserves n bytes of uninitialized memory.
	Alloc(n uintptr) unsafe.Pointer

	// AllocZeroed reserves n bytes of zero-initialized memory.
	AllocZeroed(n uintptr) unsafe.Pointer

	// Free releases a block previously returned by Alloc or AllocZeroed.
	// Passing nil is a no-op.
	Free(p unsafe.Pointer)
}

// Monitor receives advisory reports about off-heap byte usage.
// Reports only influence external accounting (metrics, GC scheduling hints);
// no correctness depends on them. Each Report must be matched by exactly
// one Release with the same byte count.
type Monitor interface {
	Report(bytes int64)
	Release(bytes int64)
}
