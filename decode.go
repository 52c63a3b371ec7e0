package pmd

import "fmt"

// DecodePolygonsArray splits a size-prefixed polygon array as returned by
// Mesh.PolygonsArray into the vertex indices of each polygon.
func DecodePolygonsArray(arr []int) ([][]int, error) {
	var polys [][]int
	for off := 0; off < len(arr); {
		size := arr[off]
		if size < 0 {
			return nil, fmt.Errorf("polygon %d at offset %d: negative size %d: %w", len(polys), off, size, ErrShapeMismatch)
		}
		off++
		if size > len(arr)-off {
			return nil, fmt.Errorf("polygon %d at offset %d: size %d exceeds remaining %d indices: %w", len(polys), off-1, size, len(arr)-off, ErrShapeMismatch)
		}
		polys = append(polys, arr[off:off+size:off+size])
		off += size
	}
	return polys, nil
}
