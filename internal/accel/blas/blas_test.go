//go:build !noblas

package blas

import (
	"testing"

	"github.com/cwbudde/algo-vecbench/bench/input"
	"github.com/cwbudde/algo-vecbench/internal/accel"
	"github.com/cwbudde/algo-vecbench/internal/testutil"
)

func TestCopyEqualsInput(t *testing.T) {
	for _, n := range []int{0, 1, 3, 8, 1000, input.ElementsPerMB} {
		src := make([]float64, n)
		input.Fill(src)
		dst := testutil.DC(-1, n)

		New(n).Copy(dst, src)

		testutil.RequireBitIdentical(t, dst, src)
	}
}

func TestCopyPanicsOnShortSource(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Copy should panic when src is shorter than dst")
		}
	}()
	New(4).Copy(make([]float64, 4), make([]float64, 3))
}

func TestRegistered(t *testing.T) {
	b, ok := accel.Global.Get(Name)
	if !ok {
		t.Fatal("blas backend not registered")
	}
	if b.Priority != 10 || b.New == nil {
		t.Fatalf("unexpected registration %#v", b)
	}
}
