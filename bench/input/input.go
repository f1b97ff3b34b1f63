// Package input generates the benchmark input vector.
//
// The generator is deterministic: the same length always yields the same
// sequence, so the branch patterns inside math routines repeat from run to
// run. Every value lies in the open interval (0,1), which is a valid domain
// for all transformations in package transform.
package input

import (
	"fmt"
	"math"
)

// ElementsPerMB is the number of float64 values in one megabyte.
const ElementsPerMB = 1 << 17

// MaxMB is the largest size multiplier whose byte size fits in an int.
const MaxMB = math.MaxInt / 8 / ElementsPerMB

const (
	seed = math.Pi
	step = 0.1
)

// Fill populates c with fractional parts of pi + k*0.1 for k = 1..len(c).
// An empty slice is a no-op.
func Fill(c []float64) {
	x := seed
	for i := range c {
		x += step
		c[i] = math.Mod(x, 1)
	}
}

// DomainError reports an input value outside the open interval (0,1).
type DomainError struct {
	Index int
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("input: value %v at index %d outside (0,1)", e.Value, e.Index)
}

// Validate returns a *DomainError for the first element of c that is not
// strictly between 0 and 1. NaN is rejected.
func Validate(c []float64) error {
	for i, v := range c {
		if !(v > 0 && v < 1) {
			return &DomainError{Index: i, Value: v}
		}
	}
	return nil
}

// LengthForMB returns the vector length for a size multiplier in megabytes.
// mb must not exceed MaxMB.
func LengthForMB(mb int) int {
	return mb * ElementsPerMB
}

// MB returns the size of n float64 values in whole megabytes, truncated.
func MB(n int) int {
	return n * 8 / (1 << 20)
}
