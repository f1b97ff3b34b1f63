//go:build !purego && (amd64 || arm64)

// Package vecmath registers the algo-vecmath SIMD block kernels as a vendor
// copy backend.
//
// algo-vecmath has no dedicated copy kernel. Its element-wise multiply
// against a vector of ones yields the source unchanged, because x*1 == x
// in IEEE-754 for every finite and infinite x.
package vecmath

import (
	algovecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-vecbench/internal/accel"
)

// Name is the backend name used with accel.Select.
const Name = "vecmath"

// Copier copies through algovecmath.MulBlock.
type Copier struct {
	ones []float64
}

// New returns a Copier with a unit vector of length n.
func New(n int) accel.Copier {
	c := &Copier{}
	c.grow(n)
	return c
}

func (c *Copier) grow(n int) {
	if n <= len(c.ones) {
		return
	}
	c.ones = make([]float64, n)
	for i := range c.ones {
		c.ones[i] = 1
	}
}

// Copy writes len(dst) values from src to dst. It allocates only when dst
// is longer than the length passed to New.
func (c *Copier) Copy(dst, src []float64) {
	if len(dst) == 0 {
		return
	}
	if len(src) < len(dst) {
		panic("vecmath: slice length mismatch")
	}
	c.grow(len(dst))
	algovecmath.MulBlock(dst, src[:len(dst)], c.ones[:len(dst)])
}
