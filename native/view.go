package native

import (
	"iter"
	"unsafe"

	"github.com/wippyai/offheap/errors"
)

// View returns a zero-copy slice over the entire array in flattened order.
// The slice borrows the backing block and must not outlive the array.
func (a *Array2D[T]) View() []T {
	return a.slice(0, a.Len())
}

// ViewAt returns a zero-copy slice from linear offset start to the end.
// start == Len is valid and yields an empty view.
func (a *Array2D[T]) ViewAt(start int) ([]T, error) {
	n := a.Len()
	if uint(start) > uint(n) {
		return nil, errors.New(errors.PhaseView, errors.KindOutOfRange).
			Index(int64(start)).Bound(int64(n)).
			Detail("view start past end of array").
			Build()
	}
	return a.slice(start, n-start), nil
}

// ViewRange returns a zero-copy slice over [start, start+count). A
// zero-count view at start == Len is valid and represents the empty tail.
func (a *Array2D[T]) ViewRange(start, count int) ([]T, error) {
	n := a.Len()
	if start < 0 || count < 0 || start > n || count > n-start {
		return nil, errors.New(errors.PhaseView, errors.KindOutOfRange).
			Index(int64(start) + int64(count)).Bound(int64(n)).
			Detail("view range [%d, %d) extends outside array", start, start+count).
			Build()
	}
	return a.slice(start, count), nil
}

// Chunks returns a restartable sequence of contiguous views of at most size
// elements each, in increasing offset order, covering the array exactly
// once. The final chunk is shorter unless Len is an exact multiple of size.
// size <= 0 yields the whole array as a single chunk. Each range loop gets
// its own cursor, so re-ranging restarts from the beginning.
func (a *Array2D[T]) Chunks(size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := a.Len()
		if n == 0 {
			return
		}
		step := size
		if step <= 0 {
			step = n
		}
		for off := 0; off < n; off += step {
			c := min(step, n-off)
			if !yield(a.slice(off, c)) {
				return
			}
		}
	}
}

// All returns the elements in flattened order with their linear index.
func (a *Array2D[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.View() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// slice builds the borrowed view. Callers have already bounds-checked
// start and count.
func (a *Array2D[T]) slice(start, count int) []T {
	if count == 0 {
		return []T{}
	}
	p := (*T)(unsafe.Add(a.s.base, uintptr(start)*elemSize[T]()))
	return unsafe.Slice(p, count)
}
