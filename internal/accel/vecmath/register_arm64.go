//go:build !purego && arm64

package vecmath

import (
	"github.com/cwbudde/algo-vecbench/internal/accel"
	"github.com/cwbudde/algo-vecbench/internal/cpu"
)

func init() {
	accel.Global.Register(accel.Backend{
		Name:      Name,
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		New:       New,
	})
}
