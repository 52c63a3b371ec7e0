package pmd

import "gonum.org/v1/gonum/spatial/r2"

// UV is a single texture coordinate pair.
type UV struct {
	uv r2.Vec
}

func NewUV(u, v float64) UV {
	return UV{uv: r2.Vec{X: u, Y: v}}
}

func (c UV) U() float64 { return c.uv.X }
func (c UV) V() float64 { return c.uv.Y }

// Vec returns the pair as a 2D vector with X=u and Y=v.
func (c UV) Vec() r2.Vec { return c.uv }
