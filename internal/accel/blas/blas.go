//go:build !noblas

// Package blas registers the BLAS level-1 dcopy routine as a vendor copy
// backend.
//
// The routine comes from gonum's blas64 package, which dispatches to
// whatever implementation was installed with blas64.Use. By default that is
// gonum's native Go BLAS. A cgo build can install an optimized library
// such as OpenBLAS without changing any caller.
package blas

import (
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/cwbudde/algo-vecbench/internal/accel"
	"github.com/cwbudde/algo-vecbench/internal/cpu"
)

// Name is the backend name used with accel.Select.
const Name = "blas"

func init() {
	accel.Global.Register(accel.Backend{
		Name:      Name,
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		New:       New,
	})
}

// Copier copies through the installed BLAS implementation.
type Copier struct{}

// New returns a Copier. The BLAS routine needs no scratch space, so n is
// unused.
func New(n int) accel.Copier {
	return Copier{}
}

// Copy calls dcopy(n, src, 1, dst, 1) with n = len(dst).
// Panics if src is shorter than dst.
func (Copier) Copy(dst, src []float64) {
	if len(src) < len(dst) {
		panic("blas: slice length mismatch")
	}
	blas64.Implementation().Dcopy(len(dst), src, 1, dst, 1)
}
