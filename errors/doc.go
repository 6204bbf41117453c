// Package errors provides structured error types for the offheap library.
//
// Every failure in this library is a precondition violation surfaced
// synchronously to the caller; nothing is transient and nothing is retried.
// Errors are categorized by Phase (which operation failed) and Kind (what
// precondition was violated).
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseView, errors.KindOutOfRange).
//		Index(start+count).
//		Bound(length).
//		Detail("view range extends past end of array").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.PhaseIndex, k, length)
//	err := errors.SizeMismatch(errors.PhaseCopy, srcDims, dstDims)
//
// All errors implement the standard error interface. errors.Is matches on
// the Phase and Kind pair, so callers can test for a category:
//
//	if errors.Is(err, errors.OutOfRange(errors.PhaseIndex, 0, 0)) { ... }
package errors
