package native

import (
	"reflect"
	"sync"
)

var (
	empties sync.Map // reflect.Type -> *Array2D[T]

	emptyState = func() *state {
		s := &state{}
		s.released.Store(true)
		return s
	}()
)

// Empty returns the process-wide empty array for element type T: both
// dimensions zero, no backing memory, already in the released state. It is
// a safe default value that never allocates off-heap memory; Release on it
// is a no-op.
func Empty[T Element]() *Array2D[T] {
	key := reflect.TypeFor[T]()
	if v, ok := empties.Load(key); ok {
		return v.(*Array2D[T])
	}
	v, _ := empties.LoadOrStore(key, &Array2D[T]{s: emptyState})
	return v.(*Array2D[T])
}
