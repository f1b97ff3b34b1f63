package all

import (
	"testing"

	"github.com/cwbudde/algo-vecbench/internal/accel"
	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/internal/testutil"
)

func TestRegisteredBackendsCopy(t *testing.T) {
	src := testutil.DeterministicUnit(7, 513)

	for _, b := range accel.Global.ListEntries() {
		t.Run(b.Name, func(t *testing.T) {
			if !cpu.Supports(cpu.DetectFeatures(), b.SIMDLevel) {
				t.Skipf("%s needs %s", b.Name, b.SIMDLevel)
			}
			dst := make([]float64, len(src))
			b.New(len(src)).Copy(dst, src)
			testutil.RequireBitIdentical(t, dst, src)
		})
	}
}

func TestAutoSelectionIsSupported(t *testing.T) {
	features := cpu.DetectFeatures()
	b, err := accel.Global.Select(accel.Auto, features)
	if err != nil {
		t.Fatalf("Select(auto): %v", err)
	}
	if b == nil {
		if len(accel.Global.ListEntries()) > 0 {
			t.Fatal("backends registered but none selected")
		}
		return
	}
	if !cpu.Supports(features, b.SIMDLevel) {
		t.Fatalf("auto selected unsupported backend %s", b.Name)
	}
}
