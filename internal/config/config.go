// Package config holds the benchmark run configuration.
//
// A configuration starts from Default, may be overlaid with a YAML file via
// Load, and is checked by Validate before a harness is built. The zero value
// of optional fields means "use the default".
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-vecbench/bench/input"
)

const (
	// DefaultVecMB is the default vector size in megabytes.
	DefaultVecMB = 1

	// DefaultCalls is the default number of calls per transformation.
	DefaultCalls = 10000

	// DefaultAccel selects the best vendor copy backend for the CPU.
	DefaultAccel = "auto"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid configuration")

// Config describes one benchmark run.
type Config struct {
	// VecMB is the vector size multiplier; the vector holds VecMB*131072 values.
	VecMB int `yaml:"vecmb"`

	// Length overrides VecMB with an explicit element count when positive.
	Length int `yaml:"length"`

	// Calls is the number of back-to-back calls per transformation.
	Calls int `yaml:"ncalls"`

	// Suite lists transformation names in run order. Empty means the
	// default suite.
	Suite []string `yaml:"suite"`

	// Extended appends rat22 to the default suite. Ignored when Suite is set.
	Extended bool `yaml:"extended"`

	// Accel is "auto", "none" or a backend name.
	Accel string `yaml:"accel"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		VecMB: DefaultVecMB,
		Calls: DefaultCalls,
		Accel: DefaultAccel,
	}
}

// Load reads a YAML file and overlays it on Default. Keys missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// VectorLength returns the number of float64 elements per buffer.
func (c Config) VectorLength() int {
	if c.Length > 0 {
		return c.Length
	}
	return input.LengthForMB(c.VecMB)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("%w: length must be >= 0, got %d", ErrInvalid, c.Length)
	}
	if c.Length == 0 && c.VecMB <= 0 {
		return fmt.Errorf("%w: vecmb must be > 0, got %d", ErrInvalid, c.VecMB)
	}
	if c.Length == 0 && c.VecMB > input.MaxMB {
		return fmt.Errorf("%w: vecmb must be <= %d, got %d", ErrInvalid, input.MaxMB, c.VecMB)
	}
	if c.Calls <= 0 {
		return fmt.Errorf("%w: ncalls must be > 0, got %d", ErrInvalid, c.Calls)
	}
	for i, name := range c.Suite {
		if name == "" {
			return fmt.Errorf("%w: suite entry %d is empty", ErrInvalid, i)
		}
	}
	return nil
}
