package inspect

import (
	"strings"
	"testing"

	"github.com/wippyai/offheap/native"
)

func TestSummary(t *testing.T) {
	a, err := native.New[int32](3, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	s := Summary(a)
	for _, want := range []string{"int32", "3x4", "48 bytes", "live"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary() = %q, missing %q", s, want)
		}
	}
}

func TestSummary_States(t *testing.T) {
	empty := native.Empty[int32]()
	if s := Summary(empty); !strings.Contains(s, "released") {
		t.Errorf("empty singleton summary = %q, want released", s)
	}

	a, err := native.New[int32](0, 5)
	if err != nil {
		t.Fatal(err)
	}
	if s := Summary(a); !strings.Contains(s, "empty") {
		t.Errorf("empty array summary = %q, want empty", s)
	}
	a.Release()
}

func TestRender(t *testing.T) {
	a, err := native.New[int32](2, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Release()

	_ = a.Set(0, 0, 7)
	_ = a.Set(1, 1, 1234)

	out := Render(a)
	for _, want := range []string{"7", "1234", "i1=0", "i1=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q in:\n%s", want, out)
		}
	}
}

func TestRender_Released(t *testing.T) {
	a, err := native.New[int32](2, 2)
	if err != nil {
		t.Fatal(err)
	}
	a.Release()

	out := Render(a)
	if !strings.Contains(out, "released") {
		t.Errorf("Render of released array = %q, want summary with released", out)
	}
	if strings.Contains(out, "i1=0") {
		t.Error("Render of released array must not show contents")
	}
}
