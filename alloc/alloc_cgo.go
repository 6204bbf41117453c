//go:build offheap_cgo

package alloc

// #include <stdlib.h>
import "C"

import "unsafe"

// Alloc reserves n bytes of uninitialized C-heap memory.
func Alloc(n uintptr) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	return C.malloc(C.size_t(n))
}

// AllocZeroed reserves n bytes of zero-initialized C-heap memory.
func AllocZeroed(n uintptr) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	return C.calloc(C.size_t(n), 1)
}

// Free releases a block returned by Alloc or AllocZeroed.
func Free(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}
