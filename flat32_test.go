package pmd_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/pmd"
)

func TestFloat32s(t *testing.T) {
	got, err := pmd.Float32s([]float64{0, -1.5, 1e10, math.Inf(1)})
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{0, -1.5, 1e10, float32(math.Inf(1))}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d got %g. want %g", i, got[i], want[i])
		}
	}
	if _, err := pmd.Float32s([]float64{1, -1e300}); !errors.Is(err, pmd.ErrOverflow) {
		t.Errorf("want overflow error, got %v", err)
	}
}

func TestVerticesArray32(t *testing.T) {
	m := cube(t)
	if err := m.AddUV(quadUVs(6), ""); err != nil {
		t.Fatal(err)
	}
	v32, err := m.VerticesArray32()
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range m.VerticesArray() {
		if float64(v32[i]) != f {
			t.Errorf("vertex scalar %d got %g. want %g", i, v32[i], f)
		}
	}
	uv32, err := m.UVData32(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(uv32) != 48 {
		t.Errorf("got %d uv scalars. want 48", len(uv32))
	}
	if _, err := m.UVData32(1); !errors.Is(err, pmd.ErrOutOfRange) {
		t.Errorf("want out of range error, got %v", err)
	}
}
