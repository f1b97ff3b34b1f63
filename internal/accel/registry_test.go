package accel

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-vecbench/internal/cpu"
)

type nopCopier struct{ name string }

func (nopCopier) Copy(dst, src []float64) { copy(dst, src) }

func newTestRegistry() *Registry {
	reg := &Registry{}
	reg.Register(Backend{Name: "blas", SIMDLevel: cpu.SIMDNone, Priority: 10,
		New: func(int) Copier { return nopCopier{"blas"} }})
	reg.Register(Backend{Name: "vecmath", SIMDLevel: cpu.SIMDAVX2, Priority: 20,
		New: func(int) Copier { return nopCopier{"vecmath"} }})
	return reg
}

func TestRegistryLookupPrefersHigherPriority(t *testing.T) {
	reg := newTestRegistry()

	b := reg.Lookup(cpu.Features{HasSSE2: true, HasAVX2: true})
	if b == nil || b.Name != "vecmath" {
		t.Fatalf("expected vecmath, got %#v", b)
	}

	b = reg.Lookup(cpu.Features{HasSSE2: true})
	if b == nil || b.Name != "blas" {
		t.Fatalf("expected blas, got %#v", b)
	}
}

func TestRegistryLookupForceGeneric(t *testing.T) {
	reg := newTestRegistry()

	b := reg.Lookup(cpu.Features{HasAVX2: true, ForceGeneric: true})
	if b == nil || b.Name != "blas" {
		t.Fatalf("expected blas with ForceGeneric, got %#v", b)
	}
}

func TestRegistryEmpty(t *testing.T) {
	reg := &Registry{}
	if b := reg.Lookup(cpu.Features{HasAVX2: true}); b != nil {
		t.Fatalf("expected nil from empty registry, got %#v", b)
	}
	b, err := reg.Select(Auto, cpu.Features{})
	if err != nil || b != nil {
		t.Fatalf("Select(auto) on empty registry = %#v, %v", b, err)
	}
}

func TestRegistrySelect(t *testing.T) {
	reg := newTestRegistry()
	avx2 := cpu.Features{HasSSE2: true, HasAVX2: true}
	sse2 := cpu.Features{HasSSE2: true}

	tests := []struct {
		name     string
		sel      string
		features cpu.Features
		want     string
		wantErr  error
	}{
		{"auto", Auto, avx2, "vecmath", nil},
		{"empty-is-auto", "", sse2, "blas", nil},
		{"none", None, avx2, "", nil},
		{"explicit", "blas", avx2, "blas", nil},
		{"unsupported", "vecmath", sse2, "", ErrUnsupported},
		{"unknown", "mkl", avx2, "", ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := reg.Select(tt.sel, tt.features)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select(%q): %v", tt.sel, err)
			}
			if tt.want == "" {
				if b != nil {
					t.Fatalf("expected nil backend, got %q", b.Name)
				}
				return
			}
			if b == nil || b.Name != tt.want {
				t.Fatalf("Select(%q) = %#v, want %q", tt.sel, b, tt.want)
			}
			if c, ok := b.New(4).(nopCopier); !ok || c.name != tt.want {
				t.Fatalf("New returned %#v", c)
			}
		})
	}
}

func TestRegistryListAndReset(t *testing.T) {
	reg := newTestRegistry()

	entries := reg.ListEntries()
	if len(entries) != 2 || entries[0].Name != "vecmath" || entries[1].Name != "blas" {
		t.Fatalf("ListEntries not sorted by priority: %#v", entries)
	}

	reg.Reset()
	if len(reg.ListEntries()) != 0 {
		t.Fatal("Reset did not clear entries")
	}
}
