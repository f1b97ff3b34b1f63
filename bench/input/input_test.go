package input

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-vecbench/internal/testutil"
)

func TestFillDeterministic(t *testing.T) {
	for _, n := range []int{1, 7, 1000, ElementsPerMB} {
		a := make([]float64, n)
		b := make([]float64, n)
		Fill(a)
		Fill(b)
		for i := range a {
			if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
				t.Fatalf("n=%d index %d: %v != %v", n, i, a[i], b[i])
			}
		}
	}
}

func TestFillOpenUnitInterval(t *testing.T) {
	c := make([]float64, 4*ElementsPerMB)
	Fill(c)
	for i, v := range c {
		if v <= 0 || v >= 1 {
			t.Fatalf("index %d: %v outside (0,1)", i, v)
		}
	}
	if err := Validate(c); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFillFirstValues(t *testing.T) {
	c := make([]float64, 3)
	Fill(c)

	want := []float64{
		math.Pi + 0.1 - 3,
		math.Pi + 0.2 - 3,
		math.Pi + 0.3 - 3,
	}
	testutil.RequireSliceNearlyEqual(t, c, want, 1e-12)
}

func TestFillPrefixStable(t *testing.T) {
	short := make([]float64, 100)
	long := make([]float64, 1000)
	Fill(short)
	Fill(long)
	for i := range short {
		if short[i] != long[i] {
			t.Fatalf("index %d: prefix differs: %v vs %v", i, short[i], long[i])
		}
	}
}

func TestFillEmpty(t *testing.T) {
	Fill(nil)
	Fill([]float64{})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		wantIdx int
	}{
		{"empty", nil, -1},
		{"valid", []float64{0.1, 0.5, 0.999}, -1},
		{"zero", []float64{0.5, 0}, 1},
		{"one", []float64{1}, 0},
		{"negative", []float64{0.2, 0.3, -0.1}, 2},
		{"nan", []float64{math.NaN()}, 0},
		{"inf", []float64{0.5, math.Inf(1)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data)
			if tt.wantIdx < 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var de *DomainError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DomainError, got %v", err)
			}
			if de.Index != tt.wantIdx {
				t.Fatalf("index = %d, want %d", de.Index, tt.wantIdx)
			}
		})
	}
}

func TestMB(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1024, 0},
		{ElementsPerMB, 1},
		{LengthForMB(4), 4},
		{ElementsPerMB*2 - 1, 1},
	}
	for _, tt := range tests {
		if got := MB(tt.n); got != tt.want {
			t.Errorf("MB(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
