// Package tsp - unified dispatcher for TSP solvers.
//
// This file provides the canonical entry point to run any of the eight
// interchangeable solvers: Solve resolves an Algorithm to a SolverFunc via
// Dispatch and runs it after validating the input point set.
//
// Design principles:
//   - Deterministic: every randomized solver threads opts.Seed through
//     rngFromSeed; the others use no randomness.
//   - Strict sentinels: only errors from errors.go; no fmt.Errorf where a
//     sentinel suffices.
//   - Unified interface: a function-value dispatch table keyed by Algorithm,
//     not an interface hierarchy (spec.md §9).
package tsp

// SolverFunc is the shared solver contract: every solver exposes one
// operation taking the input points, the configuration record, and a
// progress publisher, and returns a Solution.
type SolverFunc func(points []Point, opts SolverOptions, pub Publisher) (Solution, error)

// Dispatch resolves an Algorithm to its SolverFunc.
func Dispatch(algo Algorithm) (SolverFunc, error) {
	switch algo {
	case BellmanHeldKarp:
		return SolveBellmanHeldKarp, nil
	case BranchAndBound:
		return SolveBranchAndBound, nil
	case NearestNeighbor:
		return SolveNearestNeighbor, nil
	case TwoOpt:
		return SolveTwoOpt, nil
	case StochasticHillClimb:
		return SolveStochasticHillClimb, nil
	case Annealing:
		return SolveAnnealing, nil
	case TabuSearch:
		return SolveTabuSearch, nil
	case GeneticAlgorithm:
		return SolveGeneticAlgorithm, nil
	default:
		return nil, ErrUnknownSolver
	}
}

// Solve validates the input point set, resolves algo via Dispatch, and runs
// the selected solver. If pub is nil, a verbose-aware SinkPublisher is used.
func Solve(points []Point, opts SolverOptions, algo Algorithm, pub Publisher) (Solution, error) {
	fn, err := Dispatch(algo)
	if err != nil {
		return Solution{}, err
	}
	if err := ValidatePoints(points); err != nil {
		return Solution{}, err
	}
	if pub == nil {
		pub = NewSinkPublisher(opts.Verbose)
	}
	return fn(points, opts, pub)
}

// buildContext builds the DistanceMatrix and KDTree every solver needs.
// Points are assumed already validated by the time this is called.
func buildContext(points []Point) (*DistanceMatrix, *KDTree, error) {
	dm, err := BuildDistanceMatrix(points)
	if err != nil {
		return nil, nil, err
	}
	kt := BuildKDTree(points)
	return dm, kt, nil
}
