package pmd

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Float32s narrows a flat array to float32. NaN and infinities are kept as is;
// a finite value whose magnitude does not fit in a float32 returns ErrOverflow.
func Float32s(flat []float64) ([]float32, error) {
	out := make([]float32, len(flat))
	for i, f := range flat {
		f32 := float32(f)
		if math32.IsInf(f32, 0) && !math.IsInf(f, 0) {
			return nil, fmt.Errorf("value %g at offset %d: %w", f, i, ErrOverflow)
		}
		out[i] = f32
	}
	return out, nil
}

// VerticesArray32 is VerticesArray narrowed to float32.
func (m *Mesh) VerticesArray32() ([]float32, error) {
	return Float32s(m.VerticesArray())
}

// UVData32 is UVData narrowed to float32.
func (m *Mesh) UVData32(uvSet int) ([]float32, error) {
	data, err := m.UVData(uvSet)
	if err != nil {
		return nil, err
	}
	return Float32s(data)
}
