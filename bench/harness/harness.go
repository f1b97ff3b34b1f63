// Package harness times elementwise transformations over a fixed input vector.
//
// A Harness owns two buffers of equal length: an input filled once by
// input.Fill, and an output overwritten by every call. Measure invokes one
// transformation a fixed number of times back to back and reads a
// monotonic clock around the loop. After each call one element of the output
// is added to an accumulator, so the results are observably used. Run prints
// the classic report:
//
//	Input data size (MB) 1
//	Repetitions 10000
//	poly2 1.234
//	...
//	End of testing
//
// Entries run in the order given. Later entries may benefit from caches and
// branch predictors warmed by earlier ones; the harness does not isolate or
// shuffle them.
package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/cwbudde/algo-vecbench/bench/input"
	"github.com/cwbudde/algo-vecbench/bench/transform"
)

// Sentinel is compared against the final accumulator by ExitCode. Real runs
// never hit it; the comparison keeps the accumulator live.
const Sentinel = 1.2345667

// maxLength bounds the element count so that the byte size fits in an int.
const maxLength = math.MaxInt / 8

var (
	// ErrOutOfMemory is wrapped when a buffer cannot be allocated.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrInvalidConfig is wrapped when Config fails validation.
	ErrInvalidConfig = errors.New("harness: invalid config")
)

// Config sets the vector length and the number of calls per transformation.
type Config struct {
	Length int
	Calls  int
}

// DefaultConfig returns a 1 MB vector and 10000 calls.
func DefaultConfig() Config {
	return Config{
		Length: input.LengthForMB(1),
		Calls:  10000,
	}
}

// Option configures a Harness.
type Option func(*options)

type options struct {
	logger *slog.Logger
	now    func() time.Time
}

// WithLogger sets the logger for setup and per-entry debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now. The clock must be monotonic.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Result is the total time spent in one suite entry.
type Result struct {
	Name    string
	Elapsed time.Duration
}

// FormatResult renders r as "<name> <seconds>" with three decimals.
// It is the line Run prints for r.
func FormatResult(r Result) string {
	return r.Name + formatElapsed(r.Elapsed)
}

// formatElapsed is the part of a result line that follows the name.
func formatElapsed(d time.Duration) string {
	return fmt.Sprintf(" %.3f", d.Seconds())
}

// Harness holds the buffers and the accumulator for one run.
// It is not safe for concurrent use.
type Harness struct {
	calls int
	in    []float64
	out   []float64
	acc   float64

	log *slog.Logger
	now func() time.Time
}

// New allocates and fills the buffers. Allocation failure returns an error
// wrapping ErrOutOfMemory that names the buffer.
func New(cfg Config, opts ...Option) (*Harness, error) {
	if cfg.Length <= 0 {
		return nil, fmt.Errorf("%w: length must be > 0, got %d", ErrInvalidConfig, cfg.Length)
	}
	if cfg.Calls <= 0 {
		return nil, fmt.Errorf("%w: calls must be > 0, got %d", ErrInvalidConfig, cfg.Calls)
	}

	o := options{
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	in, err := allocate("input", cfg.Length)
	if err != nil {
		return nil, err
	}
	out, err := allocate("output", cfg.Length)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("buffers allocated", "length", cfg.Length, "bytes", 2*8*cfg.Length)

	input.Fill(in)
	if err := input.Validate(in); err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}

	return &Harness{
		calls: cfg.Calls,
		in:    in,
		out:   out,
		log:   o.logger,
		now:   o.now,
	}, nil
}

func allocate(name string, n int) (buf []float64, err error) {
	if n > maxLength {
		return nil, fmt.Errorf("harness: allocate %s buffer: %w", name, ErrOutOfMemory)
	}

	// makeslice panics when the size exceeds the address space limit.
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("harness: allocate %s buffer: %w (%v)", name, ErrOutOfMemory, r)
		}
	}()

	return make([]float64, n), nil
}

// Length returns the number of elements per buffer.
func (h *Harness) Length() int { return len(h.in) }

// Calls returns the number of calls per transformation.
func (h *Harness) Calls() int { return h.calls }

// Input returns the input buffer. Callers must not modify it.
func (h *Harness) Input() []float64 { return h.in }

// Accumulator returns the sum of the sampled outputs so far.
func (h *Harness) Accumulator() float64 { return h.acc }

// ExitCode returns 1 if the accumulator equals Sentinel, otherwise 0.
func (h *Harness) ExitCode() int {
	if h.acc == Sentinel {
		return 1
	}
	return 0
}

// Measure calls e.Fn over the full vector Calls times and returns the
// elapsed time. Call i adds out[i % Length] to the accumulator.
func (h *Harness) Measure(e transform.Entry) Result {
	n := len(h.in)

	start := h.now()
	for i := 0; i < h.calls; i++ {
		e.Fn(h.out, h.in)
		h.acc += h.out[i%n]
	}
	elapsed := h.now().Sub(start)

	if elapsed < 0 {
		elapsed = 0
	}
	h.log.Debug("measured", "name", e.Name, "elapsed", elapsed, "calls", h.calls)

	return Result{Name: e.Name, Elapsed: elapsed}
}

// Run prints the header, measures every entry of suite in order and prints
// the footer. It returns the results and the first write error, if any.
// The name of an entry is written before it is measured.
func (h *Harness) Run(w io.Writer, suite []transform.Entry) ([]Result, error) {
	ew := &errWriter{w: w}

	ew.printf("Input data size (MB) %d\n", input.MB(len(h.in)))
	ew.printf("Repetitions %d\n", h.calls)

	results := make([]Result, 0, len(suite))
	for _, e := range suite {
		ew.printf("%s", e.Name)
		r := h.Measure(e)
		ew.printf("%s\n", formatElapsed(r.Elapsed))
		results = append(results, r)
	}

	ew.printf("End of testing\n")

	return results, ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
