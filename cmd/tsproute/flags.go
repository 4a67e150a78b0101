package main

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tsproute/tsp"
)

// solverFlags mirrors tsp.SolverOptions one-to-one, bound as pflags on every
// solver subcommand per spec.md §6.
type solverFlags struct {
	epochs              int
	platooEpochs        int
	nNearest            int
	nElite              int
	mutationProbability float64
	coolingRate         float64
	minTemperature      float64
	maxTemperature      float64
	input               string
	verbose             bool
	disableProgress     bool
}

// register attaches every flag with its spec.md §6 default onto flags.
func (f *solverFlags) register(flags *pflag.FlagSet) {
	defaults := tsp.DefaultOptions()
	flags.IntVar(&f.epochs, "epochs", defaults.Epochs, "main-loop iteration budget")
	flags.IntVar(&f.platooEpochs, "platoo_epochs", defaults.PlatooEpochs, "stagnation threshold before a restart")
	flags.IntVar(&f.nNearest, "n_nearest", defaults.NNearest, "k for k-nearest-neighbor queries")
	flags.IntVar(&f.nElite, "n_elite", defaults.NElite, "elite count carried verbatim each GA generation")
	flags.Float64Var(&f.mutationProbability, "mutation_probability", defaults.MutationProbability, "per-child GA mutation chance")
	flags.Float64Var(&f.coolingRate, "cooling_rate", defaults.CoolingRate, "annealing geometric cooling rate")
	flags.Float64Var(&f.minTemperature, "min_temperature", defaults.MinTemperature, "annealing minimum temperature")
	flags.Float64Var(&f.maxTemperature, "max_temperature", defaults.MaxTemperature, "annealing starting temperature")
	flags.StringVar(&f.input, "input", "", "TSPLIB instance file path (defaults to stdin matrix fallback)")
	flags.BoolVar(&f.verbose, "verbose", false, "enable verbose/debug logging")
	flags.BoolVar(&f.disableProgress, "disable_progress", false, "disable the live progress observer")
}

// toSolverOptions builds a tsp.SolverOptions from the bound flags.
func (f *solverFlags) toSolverOptions() tsp.SolverOptions {
	return tsp.SolverOptions{
		Epochs:              f.epochs,
		PlatooEpochs:        f.platooEpochs,
		NNearest:            f.nNearest,
		NElite:              f.nElite,
		MutationProbability: f.mutationProbability,
		CoolingRate:         f.coolingRate,
		MinTemperature:      f.minTemperature,
		MaxTemperature:      f.maxTemperature,
		Verbose:             f.verbose,
		ShowProgress:        !f.disableProgress,
		Seed:                0,
	}
}
