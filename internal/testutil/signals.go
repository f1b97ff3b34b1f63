package testutil

import "math/rand"

// DeterministicUnit generates values uniformly distributed in the open
// interval (0,1) with a fixed seed for reproducibility.
func DeterministicUnit(seed int64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		v := rng.Float64()
		for v == 0 {
			v = rng.Float64()
		}
		out[i] = v
	}
	return out
}

// Ramp generates length values evenly spaced strictly inside (lo, hi).
func Ramp(lo, hi float64, length int) []float64 {
	out := make([]float64, length)
	step := (hi - lo) / float64(length+1)
	for i := range out {
		out[i] = lo + step*float64(i+1)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
