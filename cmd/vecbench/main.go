// Command vecbench times elementwise float64 transformations.
//
// Usage:
//
//	vecbench [flags]
//
// Without flags it runs the default suite over a 1 MB vector (131072
// doubles) with 10000 calls per transformation and prints one line per
// transformation with the elapsed seconds.
//
// Examples:
//
//	vecbench
//	vecbench --vecmb 8 --ncalls 1000
//	vecbench --suite exp,exp_blocked --accel none
//	vecbench --extended
//	vecbench --config bench.yaml
//	vecbench --list
//
// The exit status is 0 after a normal run. Setup failures (invalid flags,
// unreadable config, out of memory) exit with status 2.
package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/cwbudde/algo-vecbench/internal/accel/all"
)

const exitSetup = 2

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var code int

	cmd := newRootCmd(stdout, stderr, &code)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "vecbench: %v\n", err)
		return exitSetup
	}

	return code
}
