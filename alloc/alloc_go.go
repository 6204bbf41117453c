//go:build !offheap_cgo

package alloc

import (
	"sync"
	"unsafe"
)

// pinned keeps each live block's backing slice reachable so the garbage
// collector cannot move or reclaim it before Free.
var pinned sync.Map // uintptr -> []byte

// Alloc reserves n bytes. The pure-Go build always zeroes memory, which is
// a superset of the Alloc contract.
func Alloc(n uintptr) unsafe.Pointer {
	return AllocZeroed(n)
}

// AllocZeroed reserves n bytes of zero-initialized memory.
func AllocZeroed(n uintptr) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	b := make([]byte, n)
	p := unsafe.Pointer(&b[0])
	pinned.Store(uintptr(p), b)
	return p
}

// Free unpins a block returned by Alloc or AllocZeroed.
func Free(p unsafe.Pointer) {
	if p != nil {
		pinned.Delete(uintptr(p))
	}
}
