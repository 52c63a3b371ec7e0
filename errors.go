package pmd

import "errors"

var (
	// ErrOutOfRange is returned when a UV set, UV block or vertex reference
	// index is beyond what has been stored.
	ErrOutOfRange = errors.New("index out of range")
	// ErrShapeMismatch is returned when a flat array or slice argument
	// does not have the length its layout requires.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrDanglingRef is returned when a polygon references a vertex
	// that does not exist in the mesh.
	ErrDanglingRef = errors.New("dangling vertex reference")
	// ErrBuildOrder is returned when mesh construction calls are made
	// out of order, i.e. vertices added twice or polygons added after UV sets.
	ErrBuildOrder = errors.New("bad build order")
	// ErrOverflow is returned when a finite value does not fit in a float32.
	ErrOverflow = errors.New("float32 overflow")
)
