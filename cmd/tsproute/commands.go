package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tsproute/tsp"
)

// solverCommandSpec names one subcommand's canonical name, aliases, and the
// Algorithm it dispatches to — kept data-driven so every subcommand shares
// identical flag wiring, matching pyscn's cmd/ convention of one
// small *cobra.Command constructor per subcommand.
type solverCommandSpec struct {
	use     string
	aliases []string
	short   string
	algo    tsp.Algorithm
}

var solverCommandSpecs = []solverCommandSpec{
	{use: "bellman_karp", aliases: []string{"bhk"}, short: "Exact solver via Bellman-Held-Karp bitmask DP", algo: tsp.BellmanHeldKarp},
	{use: "branch_bound", aliases: nil, short: "Exact solver via exhaustive branch-and-bound", algo: tsp.BranchAndBound},
	{use: "nearest_neighbor", aliases: []string{"nn"}, short: "Greedy nearest-neighbor repair heuristic", algo: tsp.NearestNeighbor},
	{use: "two_opt", aliases: []string{"2opt"}, short: "2-opt local search to a local optimum", algo: tsp.TwoOpt},
	{use: "stochastic_hill", aliases: nil, short: "Random-restart stochastic hill climbing", algo: tsp.StochasticHillClimb},
	{use: "simulated_annealing", aliases: []string{"sa"}, short: "Simulated annealing with geometric cooling", algo: tsp.Annealing},
	{use: "tabu_search", aliases: nil, short: "Tabu search with a fixed-capacity FIFO list", algo: tsp.TabuSearch},
	{use: "genetic_algorithm", aliases: []string{"ga"}, short: "Ordered-crossover genetic algorithm", algo: tsp.GeneticAlgorithm},
}

// newSolverCommand builds one subcommand from its spec, binding its own
// solverFlags and optional config-file layer.
func newSolverCommand(spec solverCommandSpec) *cobra.Command {
	f := &solverFlags{}
	cmd := &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		Short:   spec.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindConfig(cmd.Flags()); err != nil {
				return err
			}
			return runSolver(spec.algo, f)
		},
	}
	f.register(cmd.Flags())
	return cmd
}
