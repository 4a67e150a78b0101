// Package tsp implements a multi-algorithm solver for the symmetric
// two-dimensional Euclidean Traveling Salesman Problem.
//
// The package is organized around three substrates shared by every solver:
//
//   - Point / KDTree: a k-dimensional spatial index over the input cities,
//     used by the nearest-neighbor heuristic for k-NN queries.
//   - DistanceMatrix: a packed lower-triangular cache of all pairwise
//     distances, consulted by every solver for O(1) edge costs.
//   - Route / Solution: an ordered permutation of point ids and its
//     precomputed total length.
//
// Eight interchangeable solvers share one contract (Solve) and are reached
// through Dispatch: BellmanHeldKarp (exact DP), BranchAndBound (exhaustive
// exact search), NearestNeighbor (greedy repair pass), TwoOpt (local
// search), StochasticHillClimb (random-restart hill climbing), Annealing
// (simulated annealing), TabuSearch, and GeneticAlgorithm (ordered
// crossover). Progress is reported through a Publisher so a concurrent
// observer can consume intermediate states without coupling any solver to
// output.
//
// # Algorithms & Complexity
//
//	BellmanHeldKarp — exact DP over an (n-1)-bit mask, N≤20 practical cap.
//	  Time: O(n²·2ⁿ)    Memory: O(n·2ⁿ)
//
//	BranchAndBound — exhaustive DFS from the smallest id, one-step bound.
//	  Time: exponential worst case; deterministic lexicographic branching.
//
//	NearestNeighbor — one greedy-swap pass driven by k-NN queries.
//	TwoOpt — first-improvement local search to a 2-opt local optimum.
//	StochasticHillClimb — random-restart hill climbing on 2-opt successors.
//	Annealing — simulated annealing with geometric cooling.
//	TabuSearch — fixed-capacity FIFO tabu list over 2-opt successors.
//	GeneticAlgorithm — ordered-crossover GA with elitism and roulette selection.
//
// # Determinism
//
// Every randomized solver seeds its own *rand.Rand from SolverOptions.Seed
// via rngFromSeed (Seed 0 selects a fixed default seed), so tests and the
// CLI stay reproducible.
//
// # Input Requirements
//
// Every solver requires N ≥ 2 input points with unique, non-negative ids.
// Bellman–Held–Karp additionally requires N ≤ MaxExactN for practical
// memory. BuildDistanceMatrix on fewer than two points returns
// ErrTooFewPoints and id lookups for an unknown id return ErrUnknownID;
// neither panics. Out-of-range position lookups (DistanceMatrix.At) and
// RandomPositionPair with n < 2 panic.
package tsp
