package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vecbench/bench/harness"
	"github.com/cwbudde/algo-vecbench/bench/transform"
	"github.com/cwbudde/algo-vecbench/internal/accel"
	"github.com/cwbudde/algo-vecbench/internal/config"
	"github.com/cwbudde/algo-vecbench/internal/cpu"
)

type rootFlags struct {
	vecMB      int
	length     int
	calls      int
	configPath string
	suite      []string
	extended   bool
	accel      string
	list       bool
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "vecbench",
		Short: "Time elementwise float64 transformations",
		Long: `vecbench fills a vector with deterministic values in (0,1) and times
each transformation over the whole vector for a fixed number of calls.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger := newLogger(stderr, f.verbose)

			features := cpu.DetectFeatures()
			backend, err := accel.Global.Select(cfg.Accel, features)
			if err != nil {
				return err
			}

			if f.list {
				return printList(stdout, features, backend)
			}

			*code, err = runBenchmark(stdout, cfg, backend, logger)
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.IntVar(&f.vecMB, "vecmb", config.DefaultVecMB, "vector size in MB (131072 doubles per MB)")
	fl.IntVar(&f.length, "length", 0, "vector length in elements, overrides --vecmb")
	fl.IntVar(&f.calls, "ncalls", config.DefaultCalls, "calls per transformation")
	fl.StringVar(&f.configPath, "config", "", "YAML config file; flags override its values")
	fl.StringSliceVar(&f.suite, "suite", nil, "comma-separated transformations to run, in order")
	fl.BoolVar(&f.extended, "extended", false, "append rat22 to the default suite")
	fl.StringVar(&f.accel, "accel", config.DefaultAccel, `vendor copy backend: "auto", "none" or a name from --list`)
	fl.BoolVar(&f.list, "list", false, "list transformations and vendor backends, then exit")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to stderr")
	_ = fl.MarkHidden("length")

	return cmd
}

// resolveConfig loads the config file, if any, and applies explicitly set
// flags on top of it.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fl := cmd.Flags()
	if fl.Changed("vecmb") {
		cfg.VecMB = f.vecMB
		cfg.Length = 0
	}
	if fl.Changed("length") {
		cfg.Length = f.length
	}
	if fl.Changed("ncalls") {
		cfg.Calls = f.calls
	}
	if fl.Changed("suite") {
		cfg.Suite = f.suite
	}
	if fl.Changed("extended") {
		cfg.Extended = f.extended
	}
	if fl.Changed("accel") {
		cfg.Accel = f.accel
	}

	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func buildSuite(cfg config.Config, vendor transform.Copier) ([]transform.Entry, error) {
	switch {
	case len(cfg.Suite) > 0:
		return transform.Suite(cfg.Suite, vendor)
	case cfg.Extended:
		return transform.ExtendedSuite(vendor), nil
	default:
		return transform.DefaultSuite(vendor), nil
	}
}

func runBenchmark(w io.Writer, cfg config.Config, backend *accel.Backend, logger *slog.Logger) (int, error) {
	n := cfg.VectorLength()

	h, err := harness.New(harness.Config{Length: n, Calls: cfg.Calls}, harness.WithLogger(logger))
	if err != nil {
		return 0, err
	}

	var vendor transform.Copier
	if backend != nil {
		vendor = backend.New(n)
		logger.Debug("vendor copy backend selected", "name", backend.Name, "simd", backend.SIMDLevel.String())
	} else {
		logger.Debug("no vendor copy backend")
	}

	suite, err := buildSuite(cfg, vendor)
	if err != nil {
		return 0, err
	}

	if _, err := h.Run(w, suite); err != nil {
		return 0, err
	}

	return h.ExitCode(), nil
}

func printList(w io.Writer, features cpu.Features, selected *accel.Backend) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Transformations:")
	for _, name := range transform.Names() {
		fmt.Fprintf(tw, "  %s\n", name)
	}

	fmt.Fprintf(tw, "\nVendor copy backends (cpu %s):\n", features)
	entries := accel.Global.ListEntries()
	if len(entries) == 0 {
		fmt.Fprintln(tw, "  (none)")
	}
	for _, b := range entries {
		status := "unsupported"
		if cpu.Supports(features, b.SIMDLevel) {
			status = "supported"
		}
		if selected != nil && selected.Name == b.Name {
			status += ", selected"
		}
		fmt.Fprintf(tw, "  %s\t%s\tpriority %d\t%s\n", b.Name, b.SIMDLevel, b.Priority, status)
	}

	return tw.Flush()
}
