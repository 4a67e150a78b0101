// Command tsproute is the CLI front end for the tsp solver package: one
// subcommand per algorithm, flags mapped one-to-one onto tsp.SolverOptions,
// matching spec.md §6 verbatim. Wiring follows pyscn's cobra root-command
// convention: a bare root command with no RunE of its own, one
// AddCommand per subcommand.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tsproute",
	Short: "Multi-algorithm solver for the symmetric 2-D Euclidean TSP",
	Long: `tsproute solves the symmetric two-dimensional Euclidean Traveling
Salesman Problem with a choice of eight interchangeable algorithms, from
exact dynamic programming to heuristic local search.

Input is read from a TSPLIB-subset file (--input) or, absent that flag,
from a plain stdin matrix: a point count on line one followed by one row
of coordinates per point.`,
}

func init() {
	for _, spec := range solverCommandSpecs {
		rootCmd.AddCommand(newSolverCommand(spec))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
