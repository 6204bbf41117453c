// Package alloc provides the raw memory primitives used to back off-heap
// arrays: Alloc, AllocZeroed and Free.
//
// Two implementations are selected by build tag:
//
//   - With the offheap_cgo tag, blocks come from the C heap through
//     malloc/calloc/free and are invisible to the Go garbage collector.
//   - Without the tag (the default), blocks are Go allocations pinned in a
//     package registry until freed, preserving the same explicit-lifetime
//     contract without requiring cgo.
//
// Either way the contract is identical: a non-nil pointer from Alloc or
// AllocZeroed must be passed to Free exactly once, zero-byte requests
// return nil, and Free(nil) is a no-op.
package alloc
