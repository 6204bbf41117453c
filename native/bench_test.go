package native

import (
	"testing"
)

func BenchmarkSet(b *testing.B) {
	a, err := New[int64](64, 64)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Set(i&63, (i>>6)&63, int64(i))
	}
}

func BenchmarkAt(b *testing.B) {
	a, err := New[int64](64, 64)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.At(i&63, (i>>6)&63)
	}
}

func BenchmarkView_Sum(b *testing.B) {
	a, err := New[int64](256, 256)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		for _, v := range a.View() {
			sum += v
		}
		_ = sum
	}
}

func BenchmarkChunks(b *testing.B) {
	a, err := New[int64](256, 256)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int64
		for chunk := range a.Chunks(4096) {
			for _, v := range chunk {
				sum += v
			}
		}
		_ = sum
	}
}

func BenchmarkToSlices(b *testing.B) {
	a, err := New[int64](128, 128)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.ToSlices()
	}
}
