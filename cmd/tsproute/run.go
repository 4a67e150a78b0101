package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tsproute/driver"
	"github.com/katalvlaran/tsproute/tsp"
	"github.com/katalvlaran/tsproute/tsplib"
)

// loadPoints reads the TSPLIB file at path, or falls back to the stdin
// matrix grammar when path is empty, per spec.md §6.
func loadPoints(path string) ([]tsp.Point, error) {
	if path == "" {
		return tsplib.ReadStdinMatrix(os.Stdin)
	}
	inst, err := tsplib.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return inst.Points, nil
}

// runSolver loads the input, runs the driver, and prints the result exactly
// as spec.md §6 ("Output") specifies. A non-nil return maps to exit code 1
// in main; cobra's own usage/flag errors are handled separately.
func runSolver(algo tsp.Algorithm, f *solverFlags) error {
	points, err := loadPoints(f.input)
	if err != nil {
		return err
	}

	opts := f.toSolverOptions()
	logger, err := driver.NewLogger(opts.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush on exit

	sol, err := driver.Run(points, opts, algo, logger)
	if err != nil {
		return err
	}

	fmt.Print(driver.FormatResult(sol))
	return nil
}
