// Package native implements the off-heap two-dimensional array.
//
// An Array2D owns (or borrows) one contiguous block of memory outside the
// Go heap, fixed in shape for its whole lifetime. Elements are addressed by
// a (i0, i1) coordinate pair flattened column-major: linear offset
// i1*len0 + i0, so dimension 0 is the stride-1 axis.
//
// # Lifecycle
//
// An array moves through exactly three states:
//
//	uninitialized -> created -> released
//
// Created is entered by New, Adopt or AdoptOwned. Released is entered by
// the first Release call, or by a runtime cleanup if the caller forgot to
// release an unreachable array; it is terminal. Indexing, views and copies
// are defined only in the created state. The base pointer is deliberately
// not cleared on release (see IsLive), so using an array after Release is
// a use-after-free hazard the caller must avoid.
//
// # Ownership
//
// New allocates and owns its block: Release frees it. Adopt wraps a
// caller-supplied pointer without taking ownership: Release never frees a
// borrowed block, only the caller can. AdoptOwned transfers ownership of a
// foreign block to the array.
//
// # Errors
//
// Every failure is a precondition violation reported through the
// offheap/errors package: out-of-range coordinates and view bounds,
// mismatched dimensions on copies, invalid construction arguments. Release
// is idempotent and never fails.
package native
