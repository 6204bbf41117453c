package native

import (
	"github.com/wippyai/offheap/errors"
)

// CopyFrom copies every element of src into a. Both dimensions must match
// exactly; on mismatch nothing is written.
func (a *Array2D[T]) CopyFrom(src *Array2D[T]) error {
	if src.len0 != a.len0 || src.len1 != a.len1 {
		return errors.SizeMismatch(errors.PhaseCopy,
			errors.Dims{a.len0, a.len1}, errors.Dims{src.len0, src.len1})
	}
	copy(a.View(), src.View())
	return nil
}

// CopyFromSlices copies a heap [][]T, indexed [i1][i0], into a. The source
// must be rectangular with both dimensions matching exactly; the shape is
// validated in full before any element is written.
func (a *Array2D[T]) CopyFromSlices(src [][]T) error {
	if err := a.checkSliceShape(src); err != nil {
		return err
	}
	for i1, row := range src {
		copy(a.slice(i1*a.len0, a.len0), row)
	}
	return nil
}

// CopyToSlices copies a into a heap [][]T, indexed [i1][i0]. The
// destination must be rectangular with both dimensions matching exactly;
// on mismatch nothing is written.
func (a *Array2D[T]) CopyToSlices(dst [][]T) error {
	if err := a.checkSliceShape(dst); err != nil {
		return err
	}
	for i1, row := range dst {
		copy(row, a.slice(i1*a.len0, a.len0))
	}
	return nil
}

// ToSlices returns a freshly allocated heap copy of the array, indexed
// [i1][i0]. The result shares no memory with the array.
func (a *Array2D[T]) ToSlices() [][]T {
	out := make([][]T, a.len1)
	for i1 := range out {
		row := make([]T, a.len0)
		copy(row, a.slice(i1*a.len0, a.len0))
		out[i1] = row
	}
	return out
}

func (a *Array2D[T]) checkSliceShape(s [][]T) error {
	if len(s) != a.len1 {
		return errors.SizeMismatch(errors.PhaseCopy,
			errors.Dims{a.len0, a.len1}, errors.Dims{a.len0, len(s)})
	}
	for _, row := range s {
		if len(row) != a.len0 {
			return errors.SizeMismatch(errors.PhaseCopy,
				errors.Dims{a.len0, a.len1}, errors.Dims{len(row), len(s)})
		}
	}
	return nil
}
