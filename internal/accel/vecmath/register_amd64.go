//go:build !purego && amd64

package vecmath

import (
	"github.com/cwbudde/algo-vecbench/internal/accel"
	"github.com/cwbudde/algo-vecbench/internal/cpu"
)

func init() {
	accel.Global.Register(accel.Backend{
		Name:      Name,
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		New:       New,
	})
}
