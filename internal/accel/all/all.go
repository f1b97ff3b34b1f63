// Package all links every vendor copy backend available for the build into
// accel.Global. Import it for side effects.
//
// Build tags drop backends: noblas removes the BLAS backend, purego removes
// the SIMD backend. With both set no vendor routine is registered, and the
// benchmark suite omits copy_vendor.
package all
