package native

import (
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/offheap"
	"github.com/wippyai/offheap/errors"
	"github.com/wippyai/offheap/track"
)

// Element constrains array elements to fixed-size scalar types.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Array2D is a fixed-shape two-dimensional array over one contiguous
// off-heap block. The zero value is not usable; construct with New, Adopt,
// AdoptOwned or Empty.
type Array2D[T Element] struct {
	s    *state
	len0 int
	len1 int
}

// state is the shared disposal record. It is a separate allocation so the
// runtime cleanup can run it after the Array2D wrapper becomes unreachable.
type state struct {
	base       unsafe.Pointer
	bytes      uintptr
	allocator  offheap.Allocator
	monitor    offheap.Monitor
	tracker    *track.Registry
	handle     track.Handle
	label      string
	cleanup    runtime.Cleanup
	released   atomic.Bool
	owned      bool
	registered bool
	hasCleanup bool
}

// New allocates a len0 x len1 array. The block is zero-filled unless
// WithoutZeroFill is given. The array owns its block: Release frees it.
func New[T Element](len0, len1 int, opts ...Option) (*Array2D[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, bytes, err := checkShape[T](len0, len1)
	if err != nil {
		return nil, err
	}

	a := &Array2D[T]{
		s:    &state{allocator: cfg.allocator, owned: true},
		len0: len0,
		len1: len1,
	}

	if n > 0 {
		var base unsafe.Pointer
		if cfg.skipZeroFill {
			base = cfg.allocator.Alloc(bytes)
		} else {
			base = cfg.allocator.AllocZeroed(bytes)
		}
		if base == nil {
			return nil, errors.AllocationFailed(errors.PhaseAlloc, bytes)
		}
		a.s.base = base
		a.s.bytes = bytes
	}

	a.finish(cfg)
	return a, nil
}

// Adopt wraps a caller-supplied block of len0 x len1 elements without
// taking ownership: Release never frees a borrowed block.
func Adopt[T Element](ptr unsafe.Pointer, len0, len1 int, opts ...Option) (*Array2D[T], error) {
	return adopt[T](ptr, len0, len1, false, opts)
}

// AdoptOwned wraps a caller-supplied block and takes ownership of it:
// Release frees it through the array's allocator, which must match the one
// that produced the block.
func AdoptOwned[T Element](ptr unsafe.Pointer, len0, len1 int, opts ...Option) (*Array2D[T], error) {
	return adopt[T](ptr, len0, len1, true, opts)
}

func adopt[T Element](ptr unsafe.Pointer, len0, len1 int, owned bool, opts []Option) (*Array2D[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, bytes, err := checkShape[T](len0, len1)
	if err != nil {
		return nil, err
	}
	if n > 0 && ptr == nil {
		return nil, errors.NilPointer(errors.PhaseAlloc, "cannot adopt a nil pointer for a non-empty array")
	}

	a := &Array2D[T]{
		s:    &state{allocator: cfg.allocator, owned: owned},
		len0: len0,
		len1: len1,
	}
	if n > 0 {
		a.s.base = ptr
		a.s.bytes = bytes
	}

	a.finish(cfg)
	return a, nil
}

// checkShape validates dimensions and computes the element count and byte
// size with overflow checking.
func checkShape[T Element](len0, len1 int) (int, uintptr, error) {
	if len0 < 0 {
		return 0, 0, errors.NegativeDimension(errors.PhaseAlloc, 0, len0)
	}
	if len1 < 0 {
		return 0, 0, errors.NegativeDimension(errors.PhaseAlloc, 1, len1)
	}

	elem := elemSize[T]()
	hi, n := bits.Mul64(uint64(len0), uint64(len1))
	if hi != 0 || n > math.MaxInt {
		return 0, 0, errors.Overflow(errors.PhaseAlloc, len0, len1, elem)
	}
	hi, b := bits.Mul64(n, uint64(elem))
	if hi != 0 || b > math.MaxInt {
		return 0, 0, errors.Overflow(errors.PhaseAlloc, len0, len1, elem)
	}
	return int(n), uintptr(b), nil
}

// finish wires tracking and the cleanup backstop after construction.
func (a *Array2D[T]) finish(cfg config) {
	s := a.s
	if cfg.monitor != nil {
		s.monitor = cfg.monitor
		s.monitor.Report(int64(s.bytes))
		s.registered = true
	}
	if cfg.tracker != nil {
		s.tracker = cfg.tracker
		s.label = cfg.label
		s.handle = cfg.tracker.Add(track.Info{
			Label: cfg.label,
			Type:  typeName[T](),
			Len0:  a.len0,
			Len1:  a.len1,
			Bytes: s.bytes,
			Owned: s.owned,
		})
	}
	s.cleanup = runtime.AddCleanup(a, func(st *state) {
		if st.released.CompareAndSwap(false, true) {
			st.dispose(true)
		}
	}, s)
	s.hasCleanup = true
}

// Len0 returns the length of the stride-1 dimension.
func (a *Array2D[T]) Len0() int { return a.len0 }

// Len1 returns the length of the outer dimension.
func (a *Array2D[T]) Len1() int { return a.len1 }

// Len returns the total element count, len0*len1.
func (a *Array2D[T]) Len() int { return a.len0 * a.len1 }

// Bytes returns the byte size of the backing block.
func (a *Array2D[T]) Bytes() uintptr { return a.s.bytes }

// IsLive reports whether the array was ever given a non-nil base pointer.
// It is false only for empty arrays. The base pointer is not cleared on
// Release, so IsLive keeps reporting its pre-release value; it must not be
// used as a "still usable" check. Released is that check.
func (a *Array2D[T]) IsLive() bool { return a.s.base != nil }

// Released reports whether the array has entered its terminal state.
func (a *Array2D[T]) Released() bool { return a.s.released.Load() }

// Release frees the backing block (when owned) and deregisters any pressure
// report. It is idempotent and safe for concurrent callers: the underlying
// free and deregistration run on exactly one call.
func (a *Array2D[T]) Release() {
	s := a.s
	if !s.released.CompareAndSwap(false, true) {
		return
	}
	if s.hasCleanup {
		s.cleanup.Stop()
	}
	s.dispose(false)
}

// dispose runs the release logic. The winner of the released CAS calls it
// exactly once, either from Release or from the runtime cleanup.
func (s *state) dispose(viaCleanup bool) {
	if viaCleanup && s.owned && s.base != nil {
		Logger().Warn("off-heap array reclaimed by runtime cleanup; missing explicit Release",
			zap.String("label", s.label),
			zap.Uint64("bytes", uint64(s.bytes)))
	}
	if s.owned && s.base != nil {
		// base is left unchanged, see IsLive.
		s.allocator.Free(s.base)
	}
	if s.registered {
		s.monitor.Release(int64(s.bytes))
	}
	if s.tracker != nil {
		s.tracker.Remove(s.handle)
	}
}

func elemSize[T Element]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

func typeName[T Element]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
