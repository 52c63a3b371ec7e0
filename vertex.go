package pmd

import "gonum.org/v1/gonum/spatial/r3"

// Vertex is a mesh point with its index in the mesh, position and normal.
// The zero value is a vertex at the origin with a zero normal.
type Vertex struct {
	index int
	pos   r3.Vec
	norm  r3.Vec
}

// NewVertex returns a Vertex. Mesh assigns index itself when adding
// vertices, so this is only needed to build vertices for comparison.
func NewVertex(index int, pos, normal r3.Vec) Vertex {
	return Vertex{index: index, pos: pos, norm: normal}
}

// Index returns the position of the vertex within its mesh.
func (v Vertex) Index() int { return v.index }

func (v Vertex) X() float64 { return v.pos.X }
func (v Vertex) Y() float64 { return v.pos.Y }
func (v Vertex) Z() float64 { return v.pos.Z }

// Position returns the (x, y, z) coordinates of the vertex.
func (v Vertex) Position() r3.Vec { return v.pos }

// Normal returns the vertex normal. It is the zero vector when the
// mesh was built without vertex normals.
func (v Vertex) Normal() r3.Vec { return v.norm }
