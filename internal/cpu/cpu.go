// Package cpu reports the SIMD capabilities that gate vendor copy backends.
//
// Detection runs once on the first call to DetectFeatures and is cached.
// Tests can override the result with SetForcedFeatures.
package cpu

import (
	"fmt"
	"sync"
)

// SIMDLevel is the instruction set a backend requires.
// Levels are not comparable across architectures.
type SIMDLevel int

const (
	// SIMDNone means the backend runs anywhere.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline.
	SIMDSSE2

	// SIMDAVX2 is x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 is x86-64 AVX-512F.
	SIMDAVX512

	// SIMDNEON is ARM Advanced SIMD.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the host capabilities relevant to backend selection.
type Features struct {
	HasSSE2   bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric restricts selection to SIMDNone backends.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

// Best returns the most capable level the features support.
func (f Features) Best() SIMDLevel {
	switch {
	case f.ForceGeneric:
		return SIMDNone
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasNEON:
		return SIMDNEON
	case f.HasSSE2:
		return SIMDSSE2
	default:
		return SIMDNone
	}
}

// String summarizes the features, e.g. "amd64/AVX2".
func (f Features) String() string {
	return fmt.Sprintf("%s/%s", f.Architecture, f.Best())
}

var (
	detectOnce     sync.Once
	detected       Features
	forcedMu       sync.RWMutex
	forcedFeatures *Features
)

// DetectFeatures returns the features of the current host, or the forced
// features if SetForcedFeatures was called.
func DetectFeatures() Features {
	forcedMu.RLock()
	forced := forcedFeatures
	forcedMu.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forcedFeatures = &f
}

// ResetDetection clears any forced features.
func ResetDetection() {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forcedFeatures = nil
}

// Supports reports whether features can run a backend that needs level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
