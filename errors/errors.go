package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which operation the error occurred in
type Phase string

const (
	PhaseAlloc   Phase = "alloc"   // construction and adoption
	PhaseIndex   Phase = "index"   // element get/set
	PhaseView    Phase = "view"    // view and chunk construction
	PhaseCopy    Phase = "copy"    // copy and conversion
	PhaseRelease Phase = "release" // disposal
)

// Kind categorizes the violated precondition
type Kind string

const (
	KindOutOfRange        Kind = "out_of_range"
	KindSizeMismatch      Kind = "size_mismatch"
	KindOverflow          Kind = "overflow"
	KindNegativeDimension Kind = "negative_dimension"
	KindNilPointer        Kind = "nil_pointer"
	KindAllocation        Kind = "allocation"
)

// Dims is a (length0, length1) dimension pair carried by size-mismatch errors.
type Dims [2]int

func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d[0], d[1])
}

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Index  int64 // offending index or offset, valid when HasIndex
	Bound  int64 // exclusive upper bound the index violated
	Want   Dims  // expected dimensions, valid when HasDims
	Got    Dims  // actual dimensions

	HasIndex bool
	HasDims  bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.HasIndex {
		fmt.Fprintf(&b, ": index %d, bound %d", e.Index, e.Bound)
	}
	if e.HasDims {
		fmt.Fprintf(&b, ": want %s, got %s", e.Want, e.Got)
	}

	if e.Detail != "" {
		if e.HasIndex || e.HasDims {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error on the Phase/Kind pair
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Index sets the offending index or offset
func (b *Builder) Index(i int64) *Builder {
	b.err.Index = i
	b.err.HasIndex = true
	return b
}

// Bound sets the exclusive upper bound the index violated
func (b *Builder) Bound(n int64) *Builder {
	b.err.Bound = n
	b.err.HasIndex = true
	return b
}

// Dims sets the expected and actual dimension pairs
func (b *Builder) Dims(want, got Dims) *Builder {
	b.err.Want = want
	b.err.Got = got
	b.err.HasDims = true
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfRange creates an out-of-range access error
func OutOfRange(phase Phase, index, bound int64) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOutOfRange,
		Index:    index,
		Bound:    bound,
		HasIndex: true,
	}
}

// SizeMismatch creates a dimension mismatch error for copy operations
func SizeMismatch(phase Phase, want, got Dims) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindSizeMismatch,
		Want:    want,
		Got:     got,
		HasDims: true,
	}
}

// NegativeDimension creates a construction error for a negative length
func NegativeDimension(phase Phase, axis, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNegativeDimension,
		Detail: fmt.Sprintf("dimension %d has negative length %d", axis, length),
	}
}

// Overflow creates a construction error for a byte size that does not fit
func Overflow(phase Phase, len0, len1 int, elemSize uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("%dx%d elements of %d bytes overflows the byte-size computation", len0, len1, elemSize),
	}
}

// NilPointer creates an adoption error for a nil foreign pointer
func NilPointer(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Detail: detail,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, bytes uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", bytes),
	}
}
