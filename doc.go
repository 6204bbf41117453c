// Package offheap provides fixed-shape two-dimensional arrays backed by
// manually managed memory outside the Go heap.
//
// The backing block of an array is a single contiguous allocation that is
// reserved at construction time and released explicitly and deterministically.
// This gives callers array-like indexed access and zero-copy contiguous views
// over data with a predictable layout and lifetime, independent of the
// garbage collector.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	offheap/             Root package with the Allocator and Monitor interfaces
//	├── native/          Core Array2D type: allocation, indexing, views,
//	│                    chunked iteration, heap conversion, release
//	├── alloc/           malloc/calloc/free primitives (cgo or pure Go)
//	├── errors/          Structured error types for precondition violations
//	├── pressure/        Off-heap usage accounting monitors
//	├── track/           Optional live-handle registry for leak audits
//	└── inspect/         Debug rendering of array contents for tooling
//
// # Quick Start
//
// Allocate a zero-filled 3x4 array of int32, use it, release it:
//
//	a, err := native.New[int32](3, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Release()
//
//	_ = a.Set(2, 1, 42)
//	v, _ := a.At(2, 1) // 42
//
//	for chunk := range a.Chunks(4) {
//	    process(chunk)
//	}
//
// # Memory Model
//
// An array's backing block lives outside the Go heap. The layout is
// column-major: element (i0, i1) lives at linear offset i1*len0 + i0, so
// dimension 0 is the stride-1 axis. Views returned by View, ViewAt,
// ViewRange and Chunks alias the block directly and must not be used after
// Release.
//
// # Thread Safety
//
// Data paths (indexing, views, copies) carry no internal synchronization;
// callers must not write or release concurrently with other access.
// Release itself is safe to call from multiple goroutines and frees at
// most once.
package offheap
