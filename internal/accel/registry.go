// Package accel holds the registry of vendor copy backends.
//
// A backend is an externally supplied bulk copy routine, such as a BLAS
// dcopy or a SIMD block kernel. Backend packages register themselves from
// init functions, gated by build tags, so a binary built without them simply
// has no vendor routine. Select picks the backend for the current CPU, and
// the harness depends only on the resulting Copier.
package accel

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecbench/internal/cpu"
)

// Selection names with special meaning for Select.
const (
	Auto = "auto"
	None = "none"
)

var (
	// ErrUnknownBackend is returned when a backend name is not registered.
	ErrUnknownBackend = errors.New("accel: unknown backend")

	// ErrUnsupported is returned when the CPU lacks the backend's SIMD level.
	ErrUnsupported = errors.New("accel: backend not supported on this CPU")
)

// Copier copies len(dst) values from src to dst with stride 1.
type Copier interface {
	Copy(dst, src []float64)
}

// Backend is one registered vendor copy implementation.
type Backend struct {
	// Name identifies the backend on the command line, e.g. "blas".
	Name string

	// SIMDLevel is the instruction set the backend requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible backends; higher wins.
	Priority int

	// New builds a Copier for vectors of up to n elements. Any scratch
	// space is allocated here so that Copy does not allocate.
	New func(n int) Copier
}

// Registry stores the available backends.
type Registry struct {
	mu      sync.RWMutex
	entries []Backend
	sorted  bool
}

// Global is the registry that backend packages register with.
var Global = &Registry{}

// Register adds a backend. Safe for concurrent use from init functions.
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, b)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features, or
// nil if none is registered.
func (r *Registry) Lookup(features cpu.Features) *Backend {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		b := &r.entries[i]
		if cpu.Supports(features, b.SIMDLevel) {
			return b
		}
	}
	return nil
}

// Get returns the backend with the given name.
func (r *Registry) Get(name string) (*Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i], true
		}
	}
	return nil, false
}

// Select resolves a user selection. "none" yields nil. "auto" or "" yields
// the best supported backend, which is nil when nothing is registered.
// Any other name must be registered and supported by features.
func (r *Registry) Select(name string, features cpu.Features) (*Backend, error) {
	switch name {
	case None:
		return nil, nil
	case Auto, "":
		return r.Lookup(features), nil
	}

	b, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	if !cpu.Supports(features, b.SIMDLevel) {
		return nil, fmt.Errorf("%w: %s needs %s", ErrUnsupported, name, b.SIMDLevel)
	}
	return b, nil
}

// ListEntries returns a copy of all backends sorted by priority.
func (r *Registry) ListEntries() []Backend {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Backend, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all backends. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *Registry) sortOnce() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	// insertion sort, stable for equal priorities
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
	r.sorted = true
}
