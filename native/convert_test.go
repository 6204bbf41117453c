package native

import (
	"errors"
	"testing"

	offerrors "github.com/wippyai/offheap/errors"
)

func fill[T Element](t *testing.T, a *Array2D[T], f func(k int) T) {
	t.Helper()
	v := a.View()
	for k := range v {
		v[k] = f(k)
	}
}

func TestCopyFrom(t *testing.T) {
	src, err := New[int32](3, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Release()
	fill(t, src, func(k int) int32 { return int32(k + 1) })

	dst, err := New[int32](3, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer dst.Release()

	if err := dst.CopyFrom(src); err != nil {
		t.Fatal(err)
	}
	for k, v := range dst.View() {
		if v != int32(k+1) {
			t.Fatalf("dst[%d] = %d, want %d", k, v, k+1)
		}
	}
}

func TestCopyFrom_SizeMismatch(t *testing.T) {
	want := &offerrors.Error{Phase: offerrors.PhaseCopy, Kind: offerrors.KindSizeMismatch}

	tests := []struct {
		name             string
		srcLen0, srcLen1 int
	}{
		{"transposed", 4, 3},
		{"first differs", 2, 4},
		{"second differs", 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New[int32](tt.srcLen0, tt.srcLen1)
			if err != nil {
				t.Fatal(err)
			}
			defer src.Release()
			fill(t, src, func(int) int32 { return 9 })

			dst, err := New[int32](3, 4)
			if err != nil {
				t.Fatal(err)
			}
			defer dst.Release()
			fill(t, dst, func(int) int32 { return -1 })

			if err := dst.CopyFrom(src); !errors.Is(err, want) {
				t.Fatalf("got %v, want size_mismatch", err)
			}

			// All-or-nothing: the destination is completely unmodified.
			for k, v := range dst.View() {
				if v != -1 {
					t.Fatalf("dst[%d] = %d after failed copy, want -1", k, v)
				}
			}
		})
	}
}

func TestCopyFromSlices(t *testing.T) {
	a, err := New[int32](2, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	src := [][]int32{{1, 2}, {3, 4}, {5, 6}} // [i1][i0]
	if err := a.CopyFromSlices(src); err != nil {
		t.Fatal(err)
	}

	v, _ := a.At(0, 0)
	if v != 1 {
		t.Fatalf("(0,0) = %d, want 1", v)
	}
	v, _ = a.At(1, 2)
	if v != 6 {
		t.Fatalf("(1,2) = %d, want 6", v)
	}
}

func TestCopyFromSlices_RaggedOrMismatched(t *testing.T) {
	a, err := New[int32](2, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()
	fill(t, a, func(int) int32 { return -1 })

	want := &offerrors.Error{Phase: offerrors.PhaseCopy, Kind: offerrors.KindSizeMismatch}

	tests := []struct {
		name string
		src  [][]int32
	}{
		{"too few rows", [][]int32{{1, 2}, {3, 4}}},
		{"too many rows", [][]int32{{1, 2}, {3, 4}, {5, 6}, {7, 8}}},
		{"ragged last row", [][]int32{{1, 2}, {3, 4}, {5}}},
		{"ragged first row", [][]int32{{1}, {3, 4}, {5, 6}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := a.CopyFromSlices(tt.src); !errors.Is(err, want) {
				t.Fatalf("got %v, want size_mismatch", err)
			}
			// Even a late ragged row must leave the array untouched.
			for k, v := range a.View() {
				if v != -1 {
					t.Fatalf("element %d = %d after failed copy, want -1", k, v)
				}
			}
		})
	}
}

func TestCopyToSlices(t *testing.T) {
	a, err := New[int32](2, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()
	fill(t, a, func(k int) int32 { return int32(10 * k) })

	dst := [][]int32{{-1, -1}, {-1, -1}}
	if err := a.CopyToSlices(dst); err != nil {
		t.Fatal(err)
	}
	if dst[0][0] != 0 || dst[0][1] != 10 || dst[1][0] != 20 || dst[1][1] != 30 {
		t.Fatalf("CopyToSlices produced %v", dst)
	}

	bad := [][]int32{{-1, -1}}
	want := &offerrors.Error{Phase: offerrors.PhaseCopy, Kind: offerrors.KindSizeMismatch}
	if err := a.CopyToSlices(bad); !errors.Is(err, want) {
		t.Fatalf("got %v, want size_mismatch", err)
	}
	if bad[0][0] != -1 {
		t.Fatal("failed CopyToSlices modified the destination")
	}
}

func TestToSlices_Independent(t *testing.T) {
	a, err := New[int32](3, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()
	fill(t, a, func(k int) int32 { return int32(k) })

	heap := a.ToSlices()
	if len(heap) != 2 || len(heap[0]) != 3 {
		t.Fatalf("ToSlices shape = %dx%d, want 2 rows of 3", len(heap), len(heap[0]))
	}
	for i1 := 0; i1 < 2; i1++ {
		for i0 := 0; i0 < 3; i0++ {
			v, _ := a.At(i0, i1)
			if heap[i1][i0] != v {
				t.Fatalf("heap[%d][%d] = %d, array = %d", i1, i0, heap[i1][i0], v)
			}
		}
	}

	// Mutating the heap copy must not touch the native block.
	heap[1][2] = 1000
	v, _ := a.At(2, 1)
	if v == 1000 {
		t.Fatal("ToSlices result shares memory with the array")
	}
}

func TestToSlices_Empty(t *testing.T) {
	a, err := New[int32](0, 5)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	heap := a.ToSlices()
	if len(heap) != 5 {
		t.Fatalf("ToSlices rows = %d, want 5", len(heap))
	}
	for i, row := range heap {
		if len(row) != 0 {
			t.Fatalf("row %d length = %d, want 0", i, len(row))
		}
	}
}
