package transform

import "math"

// blockLen is the number of elements per fixed-size view in ExpBlocked.
const blockLen = 8

// block is a fixed-size view into a slice. The two views handed to expBlock
// never overlap, and their length is a compile-time constant, so the inner
// loop runs without bounds checks.
type block [blockLen]float64

// ExpBlocked computes the same values as Exp, bit for bit. It walks the
// input in non-overlapping fixed-size blocks, then finishes the tail with a
// scalar loop.
func ExpBlocked(dst, src []float64) {
	checkLen(dst, src)

	n := len(dst) &^ (blockLen - 1)
	for i := 0; i < n; i += blockLen {
		expBlock((*block)(dst[i:i+blockLen]), (*block)(src[i:i+blockLen]))
	}

	for i := n; i < len(dst); i++ {
		dst[i] = math.Exp(src[i])
	}
}

func expBlock(dst, src *block) {
	for j := range dst {
		dst[j] = math.Exp(src[j])
	}
}
