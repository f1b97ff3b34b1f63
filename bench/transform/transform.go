// Package transform provides the elementwise float64 kernels timed by the
// benchmark harness.
//
// Every kernel has the shape Func: it writes len(dst) values computed from
// the matching elements of src. Kernels do not allocate, keep no state and
// never read dst. They panic if the slices differ in length. Out-of-domain
// input follows IEEE-754 (NaN, ±Inf) and is not reported as an error.
package transform

import "math"

// Func is an elementwise transformation dst[i] = f(src[i]).
type Func func(dst, src []float64)

func checkLen(dst, src []float64) {
	if len(dst) != len(src) {
		panic("transform: slice length mismatch")
	}
}

// Copy copies src into dst with a plain loop.
func Copy(dst, src []float64) {
	checkLen(dst, src)
	for i := range dst {
		dst[i] = src[i]
	}
}

// CopyFast copies src into dst with the builtin block copy.
func CopyFast(dst, src []float64) {
	checkLen(dst, src)
	copy(dst, src)
}

// Poly1 evaluates dst[i] = 1.2 + 2.3*src[i].
func Poly1(dst, src []float64) {
	checkLen(dst, src)
	for i := range dst {
		dst[i] = 1.2 + src[i]*2.3
	}
}

// Poly2 evaluates the quadratic 1.2 + x*(2.3 + 3.4*x) in Horner form.
func Poly2(dst, src []float64) {
	checkLen(dst, src)
	for i := range dst {
		x := src[i]
		dst[i] = 1.2 + x*(2.3+3.4*x)
	}
}

// Rat22 evaluates the ratio of two quadratics:
//
//	(1.2 + x*(2.3 + 3.4*x)) / (5.2 + x*(6.3 + 7.4*x))
func Rat22(dst, src []float64) {
	checkLen(dst, src)
	for i := range dst {
		x := src[i]
		dst[i] = (1.2 + x*(2.3+3.4*x)) / (5.2 + x*(6.3+7.4*x))
	}
}

// Log computes the natural logarithm.
func Log(dst, src []float64) {
	checkLen(dst, src)
	for i := range dst {
		dst[i] = math.Log(src[i])
	}
}

// Sqrt computes the square root.
func Sqrt(dst, src []float64) {
	checkLen(dst, src)
	for i := range dst {
		dst[i] = math.Sqrt(src[i])
	}
}

// Asinh computes the inverse hyperbolic sine.
func Asinh(dst, src []float64) {
	checkLen(dst, src)
	for i := range dst {
		dst[i] = math.Asinh(src[i])
	}
}

// AsinhCompose computes asinh(sqrt(x) + sqrt(1+x)), a composed expression
// compared against the direct Asinh call.
func AsinhCompose(dst, src []float64) {
	checkLen(dst, src)
	for i := range dst {
		x := src[i]
		dst[i] = math.Asinh(math.Sqrt(x) + math.Sqrt(1+x))
	}
}

// Exp computes e**x.
func Exp(dst, src []float64) {
	checkLen(dst, src)
	for i := range dst {
		dst[i] = math.Exp(src[i])
	}
}

// Copier is an externally supplied bulk copy routine.
type Copier interface {
	Copy(dst, src []float64)
}

// CopyVendor returns a Func that delegates to c.
func CopyVendor(c Copier) Func {
	return func(dst, src []float64) {
		checkLen(dst, src)
		if len(dst) == 0 {
			return
		}
		c.Copy(dst, src)
	}
}
