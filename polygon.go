package pmd

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Polygon is a face of a Mesh. It references vertices by their index in the
// mesh and stores one block of UV coordinates per UV set of the mesh.
type Polygon struct {
	index int
	verts []int
	norm  r3.Vec
	// uvs holds all coordinates of UV set 0, then UV set 1 and so on.
	// len(uvs) == len(verts) * nblocks.
	uvs     []UV
	nblocks int
}

func newPolygon(index int, verts []int, normal r3.Vec) Polygon {
	return Polygon{
		index: index,
		verts: append([]int(nil), verts...),
		norm:  normal,
	}
}

// Index returns the position of the polygon within its mesh.
func (p Polygon) Index() int { return p.index }

// Size returns the number of vertices of the polygon.
func (p Polygon) Size() int { return len(p.verts) }

// Vertices returns a copy of the vertex indices of the polygon in order.
func (p Polygon) Vertices() []int {
	return append([]int(nil), p.verts...)
}

// Normal returns the face normal.
func (p Polygon) Normal() r3.Vec { return p.norm }

// UVBlockCount returns the number of UV blocks stored in the polygon.
func (p Polygon) UVBlockCount() int { return p.nblocks }

// addUVBlock appends one UV block. It must be called once per UV set in
// the order the sets are added to the mesh.
func (p *Polygon) addUVBlock(block []UV) error {
	if len(block) != len(p.verts) {
		return fmt.Errorf("polygon %d: got %d uv pairs for %d vertices: %w", p.index, len(block), len(p.verts), ErrShapeMismatch)
	}
	p.uvs = append(p.uvs, block...)
	p.nblocks++
	return nil
}

// UVBlock returns a copy of the Size() UV coordinates stored for uvSet.
func (p Polygon) UVBlock(uvSet int) ([]UV, error) {
	block, err := p.block(uvSet)
	if err != nil {
		return nil, err
	}
	return append([]UV(nil), block...), nil
}

// UVBlockFlat returns the UV block of uvSet as 2*Size() scalars
// ordered u0, v0, u1, v1, ...
func (p Polygon) UVBlockFlat(uvSet int) ([]float64, error) {
	return p.AppendUVBlockFlat(make([]float64, 0, 2*len(p.verts)), uvSet)
}

// AppendUVBlockFlat appends the flattened UV block of uvSet to dst and
// returns the extended slice. dst is returned unmodified on error.
func (p Polygon) AppendUVBlockFlat(dst []float64, uvSet int) ([]float64, error) {
	block, err := p.block(uvSet)
	if err != nil {
		return dst, err
	}
	for _, uv := range block {
		dst = append(dst, uv.U(), uv.V())
	}
	return dst, nil
}

func (p Polygon) block(uvSet int) ([]UV, error) {
	n := len(p.verts)
	if uvSet < 0 || uvSet >= p.nblocks {
		return nil, fmt.Errorf("polygon %d: uv set %d not in [0,%d): %w", p.index, uvSet, p.nblocks, ErrOutOfRange)
	}
	return p.uvs[uvSet*n : (uvSet+1)*n], nil
}
