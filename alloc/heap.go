package alloc

import (
	"unsafe"

	"github.com/wippyai/offheap"
)

// Heap adapts the package primitives to the offheap.Allocator interface.
type Heap struct{}

func (Heap) Alloc(n uintptr) unsafe.Pointer       { return Alloc(n) }
func (Heap) AllocZeroed(n uintptr) unsafe.Pointer { return AllocZeroed(n) }
func (Heap) Free(p unsafe.Pointer)                { Free(p) }

// Default is the allocator used by native arrays unless overridden.
var Default offheap.Allocator = Heap{}
