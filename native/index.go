package native

import (
	"unsafe"

	"github.com/wippyai/offheap/errors"
)

// Ptr returns a direct pointer to element (i0, i1). The pointer aliases the
// backing block: loads and stores through it touch off-heap memory with no
// copying, and it must not be used after Release.
//
// Bounds are validated on the flattened index i1*len0 + i0 with a single
// unsigned comparison, which rejects negative and over-large inputs alike.
func (a *Array2D[T]) Ptr(i0, i1 int) (*T, error) {
	k := i1*a.len0 + i0
	if uint(k) >= uint(a.Len()) {
		return nil, errors.OutOfRange(errors.PhaseIndex, int64(k), int64(a.Len()))
	}
	return (*T)(unsafe.Add(a.s.base, uintptr(k)*elemSize[T]())), nil
}

// At returns the element at (i0, i1).
func (a *Array2D[T]) At(i0, i1 int) (T, error) {
	p, err := a.Ptr(i0, i1)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set stores v at (i0, i1).
func (a *Array2D[T]) Set(i0, i1 int, v T) error {
	p, err := a.Ptr(i0, i1)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
