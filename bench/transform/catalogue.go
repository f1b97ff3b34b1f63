package transform

import (
	"errors"
	"fmt"
)

// Names of the built-in transformations, as printed by the harness.
const (
	NameCopy         = "copy"
	NameCopyFast     = "copy_fast"
	NameCopyVendor   = "copy_vendor"
	NamePoly1        = "poly1"
	NamePoly2        = "poly2"
	NameRat22        = "rat22"
	NameLog          = "log"
	NameSqrt         = "sqrt"
	NameAsinh        = "asinh"
	NameAsinhCompose = "asinh_compose"
	NameExp          = "exp"
	NameExpBlocked   = "exp_blocked"
)

var (
	// ErrUnknown is returned for a transformation name that is not in the catalogue.
	ErrUnknown = errors.New("transform: unknown transformation")

	// ErrNoVendor is returned when copy_vendor is requested without a vendor copier.
	ErrNoVendor = errors.New("transform: no vendor copy routine available")
)

// Entry is a named transformation.
type Entry struct {
	Name string
	Fn   Func
}

var catalogue = []Entry{
	{NameCopy, Copy},
	{NameCopyFast, CopyFast},
	{NamePoly1, Poly1},
	{NamePoly2, Poly2},
	{NameRat22, Rat22},
	{NameLog, Log},
	{NameSqrt, Sqrt},
	{NameAsinh, Asinh},
	{NameAsinhCompose, AsinhCompose},
	{NameExp, Exp},
	{NameExpBlocked, ExpBlocked},
}

// defaultOrder is the run order of the default suite. poly2 runs twice: the
// first pass warms caches and the branch predictor. copy_vendor is dropped
// when no vendor copier is present.
var defaultOrder = []string{
	NamePoly2,
	NameCopy,
	NameCopyFast,
	NameCopyVendor,
	NamePoly1,
	NamePoly2,
	NameSqrt,
	NameLog,
	NameExp,
	NameExpBlocked,
	NameAsinh,
	NameAsinhCompose,
}

// Catalogue returns all built-in transformations. copy_vendor is not
// included because it needs a Copier, see CopyVendor.
func Catalogue() []Entry {
	out := make([]Entry, len(catalogue))
	copy(out, catalogue)
	return out
}

// Names returns the names of all transformations, including copy_vendor.
func Names() []string {
	names := make([]string, 0, len(catalogue)+1)
	for _, e := range catalogue {
		names = append(names, e.Name)
		if e.Name == NameCopyFast {
			names = append(names, NameCopyVendor)
		}
	}
	return names
}

// Lookup returns the built-in transformation with the given name.
func Lookup(name string) (Entry, bool) {
	for _, e := range catalogue {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// DefaultSuite returns the standard benchmark run order. vendor may be nil.
func DefaultSuite(vendor Copier) []Entry {
	suite := make([]Entry, 0, len(defaultOrder))
	for _, name := range defaultOrder {
		if name == NameCopyVendor {
			if vendor != nil {
				suite = append(suite, Entry{NameCopyVendor, CopyVendor(vendor)})
			}
			continue
		}
		e, _ := Lookup(name)
		suite = append(suite, e)
	}
	return suite
}

// ExtendedSuite returns DefaultSuite followed by rat22.
func ExtendedSuite(vendor Copier) []Entry {
	e, _ := Lookup(NameRat22)
	return append(DefaultSuite(vendor), e)
}

// Suite resolves names in order. copy_vendor requires a non-nil vendor.
func Suite(names []string, vendor Copier) ([]Entry, error) {
	suite := make([]Entry, 0, len(names))
	for _, name := range names {
		if name == NameCopyVendor {
			if vendor == nil {
				return nil, ErrNoVendor
			}
			suite = append(suite, Entry{NameCopyVendor, CopyVendor(vendor)})
			continue
		}
		e, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
		}
		suite = append(suite, e)
	}
	return suite, nil
}
