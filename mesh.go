package pmd

import (
	"fmt"
	"strconv"

	"github.com/soypat/pmd/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a named polygon mesh. Build it by adding vertices once, then
// polygons one at a time, then UV sets one at a time.
type Mesh struct {
	name     string
	vertices []Vertex
	polygons []Polygon
	uvNames  []string
	// vertsSet is true after the first AddVertices call, even if it
	// added no vertices.
	vertsSet bool
	// polyVerts is the sum of the sizes of all polygons.
	polyVerts int
}

// New returns an empty mesh with the given name.
func New(name string) *Mesh {
	return &Mesh{name: name}
}

func (m *Mesh) Name() string      { return m.name }
func (m *Mesh) VertexCount() int  { return len(m.vertices) }
func (m *Mesh) PolygonCount() int { return len(m.polygons) }
func (m *Mesh) UVCount() int      { return len(m.uvNames) }

// AddVertices adds all vertices of the mesh. normals may be nil or shorter than
// positions, missing normals are set to the zero vector. It may only be called
// once per mesh.
func (m *Mesh) AddVertices(positions, normals []r3.Vec) error {
	if m.vertsSet {
		return fmt.Errorf("add vertices: mesh %q already has %d vertices: %w", m.name, len(m.vertices), ErrBuildOrder)
	}
	if len(normals) > len(positions) {
		return fmt.Errorf("add vertices: %d normals for %d positions: %w", len(normals), len(positions), ErrShapeMismatch)
	}
	m.vertices = make([]Vertex, len(positions))
	for i := range positions {
		var n r3.Vec
		if i < len(normals) {
			n = normals[i]
		}
		m.vertices[i] = NewVertex(i, positions[i], n)
	}
	m.vertsSet = true
	return nil
}

// AddVerticesArray adds vertex positions from a flat [x0,y0,z0,x1,...] array.
// Vertex normals are set to zero. Same restrictions as AddVertices apply.
func (m *Mesh) AddVerticesArray(flat []float64) error {
	if len(flat)%3 != 0 {
		return fmt.Errorf("add vertices: flat array length %d not a multiple of 3: %w", len(flat), ErrShapeMismatch)
	}
	positions := make([]r3.Vec, len(flat)/3)
	for i := range positions {
		positions[i] = d3.FromSlice(flat[3*i:])
	}
	return m.AddVertices(positions, nil)
}

// AddPolygon appends a polygon with the given vertex indices and face normal.
// The polygon size is len(vertexRefs). Every index must reference an
// existing vertex. Polygons may not be added once a UV set exists.
func (m *Mesh) AddPolygon(vertexRefs []int, normal r3.Vec) error {
	if len(m.uvNames) > 0 {
		return fmt.Errorf("add polygon %d: mesh already has %d uv sets: %w", len(m.polygons), len(m.uvNames), ErrBuildOrder)
	}
	for i, ref := range vertexRefs {
		if ref < 0 || ref >= len(m.vertices) {
			return fmt.Errorf("add polygon %d: vertex %d references %d, have %d vertices: %w", len(m.polygons), i, ref, len(m.vertices), ErrDanglingRef)
		}
	}
	m.polygons = append(m.polygons, newPolygon(len(m.polygons), vertexRefs, normal))
	m.polyVerts += len(vertexRefs)
	return nil
}

// AddPolygonsArray decodes a size-prefixed polygon array as returned by
// PolygonsArray and adds every polygon in it. normals may be nil, otherwise it
// must hold one face normal per decoded polygon. No polygon is added on error.
func (m *Mesh) AddPolygonsArray(arr []int, normals []r3.Vec) error {
	polys, err := DecodePolygonsArray(arr)
	if err != nil {
		return err
	}
	if normals != nil && len(normals) != len(polys) {
		return fmt.Errorf("add polygons: %d normals for %d polygons: %w", len(normals), len(polys), ErrShapeMismatch)
	}
	if len(m.uvNames) > 0 {
		return fmt.Errorf("add polygons: mesh already has %d uv sets: %w", len(m.uvNames), ErrBuildOrder)
	}
	for ip, refs := range polys {
		for i, ref := range refs {
			if ref < 0 || ref >= len(m.vertices) {
				return fmt.Errorf("add polygons: polygon %d vertex %d references %d, have %d vertices: %w", ip, i, ref, len(m.vertices), ErrDanglingRef)
			}
		}
	}
	for i, refs := range polys {
		var n r3.Vec
		if normals != nil {
			n = normals[i]
		}
		m.polygons = append(m.polygons, newPolygon(len(m.polygons), refs, n))
		m.polyVerts += len(refs)
	}
	return nil
}

// AddUV adds a UV set from a flat [u0,v0,u1,v1,...] array holding the pairs of
// every polygon vertex, polygon by polygon in mesh order. Its length must be
// twice the total polygon vertex count. If name is empty the set is named
// "uv<N>" where N is the number of sets before this call.
func (m *Mesh) AddUV(flat []float64, name string) error {
	if len(flat) != 2*m.polyVerts {
		return fmt.Errorf("add uv %q: got %d scalars, %d polygon vertices need %d: %w", name, len(flat), m.polyVerts, 2*m.polyVerts, ErrShapeMismatch)
	}
	if name == "" {
		name = "uv" + strconv.Itoa(len(m.uvNames))
	}
	shift := 0
	for ip := range m.polygons {
		p := &m.polygons[ip]
		n := p.Size()
		block := make([]UV, n)
		for i := range block {
			block[i] = NewUV(flat[shift+2*i], flat[shift+2*i+1])
		}
		if err := p.addUVBlock(block); err != nil {
			panic("bug: " + err.Error()) // length checked above.
		}
		shift += 2 * n
	}
	m.uvNames = append(m.uvNames, name)
	return nil
}

// UVSetName returns the name of UV set i.
func (m *Mesh) UVSetName(i int) (string, error) {
	if i < 0 || i >= len(m.uvNames) {
		return "", fmt.Errorf("uv set %d not in [0,%d): %w", i, len(m.uvNames), ErrOutOfRange)
	}
	return m.uvNames[i], nil
}

// UVSetIndex returns the index of the first UV set named name.
func (m *Mesh) UVSetIndex(name string) (int, bool) {
	for i, n := range m.uvNames {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// Vertices returns a copy of the mesh vertices in index order.
func (m *Mesh) Vertices() []Vertex {
	return append([]Vertex(nil), m.vertices...)
}

// Polygons returns a copy of the mesh polygons in index order.
func (m *Mesh) Polygons() []Polygon {
	return append([]Polygon(nil), m.polygons...)
}

// PolygonsArray returns every polygon encoded as [size, v0, ..., v(size-1)]
// concatenated in polygon order.
func (m *Mesh) PolygonsArray() []int {
	arr := make([]int, 0, len(m.polygons)+m.polyVerts)
	for _, p := range m.polygons {
		arr = append(arr, len(p.verts))
		arr = append(arr, p.verts...)
	}
	return arr
}

// VerticesArray returns the vertex positions as [x0,y0,z0,x1,y1,z1,...].
func (m *Mesh) VerticesArray() []float64 {
	arr := make([]float64, 0, 3*len(m.vertices))
	for _, v := range m.vertices {
		arr = append(arr, v.pos.X, v.pos.Y, v.pos.Z)
	}
	return arr
}

// NormalsArray returns the vertex normals with the same layout as VerticesArray.
func (m *Mesh) NormalsArray() []float64 {
	arr := make([]float64, 0, 3*len(m.vertices))
	for _, v := range m.vertices {
		arr = append(arr, v.norm.X, v.norm.Y, v.norm.Z)
	}
	return arr
}

// PolygonNormalsArray returns the face normals as [x0,y0,z0,...] in polygon order.
func (m *Mesh) PolygonNormalsArray() []float64 {
	arr := make([]float64, 0, 3*len(m.polygons))
	for _, p := range m.polygons {
		arr = append(arr, p.norm.X, p.norm.Y, p.norm.Z)
	}
	return arr
}

// UVData returns UV set uvSet flattened polygon by polygon. It is the exact
// inverse of the AddUV call that created the set.
func (m *Mesh) UVData(uvSet int) ([]float64, error) {
	if uvSet < 0 || uvSet >= len(m.uvNames) {
		return nil, fmt.Errorf("uv set %d not in [0,%d): %w", uvSet, len(m.uvNames), ErrOutOfRange)
	}
	return m.appendUVData(make([]float64, 0, 2*m.polyVerts), uvSet)
}

// CompleteUVData returns the UVData of every UV set concatenated in set order.
// It returns an empty slice when the mesh has no UV sets.
func (m *Mesh) CompleteUVData() []float64 {
	data := make([]float64, 0, 2*m.polyVerts*len(m.uvNames))
	for i := range m.uvNames {
		var err error
		data, err = m.appendUVData(data, i)
		if err != nil {
			panic("bug: " + err.Error()) // every polygon holds every set.
		}
	}
	return data
}

func (m *Mesh) appendUVData(dst []float64, uvSet int) ([]float64, error) {
	var err error
	for _, p := range m.polygons {
		dst, err = p.AppendUVBlockFlat(dst, uvSet)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// Bounds returns the axis aligned box containing all vertex positions.
// It returns the zero box for a mesh without vertices.
func (m *Mesh) Bounds() r3.Box {
	if len(m.vertices) == 0 {
		return r3.Box{}
	}
	bb := d3.Box{Min: m.vertices[0].pos, Max: m.vertices[0].pos}
	for _, v := range m.vertices[1:] {
		bb = bb.Include(v.pos)
	}
	return r3.Box(bb)
}
