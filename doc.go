// Package pmd holds an in-memory polygon mesh description: vertices with
// position and normal, variable sized polygons with a face normal and any
// number of named UV sets stored per polygon vertex.
//
// A Mesh is populated once and then queried. The flat arrays it produces are
// laid out as follows:
//
//	PolygonsArray: [n0, v0, v1, ..., v(n0-1), n1, v0, ...]
//	VerticesArray: [x0, y0, z0, x1, y1, z1, ...]
//	UVData(i):     [u0, v0, u1, v1, ...] polygon by polygon for UV set i.
//
// A Mesh is not safe for concurrent mutation. All Add* calls must be made by
// a single goroutine. Once built, query methods may be called concurrently.
package pmd
