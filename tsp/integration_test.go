package tsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllSolversProduceValidTours runs every registered algorithm against
// Case A and checks each returns a valid permutation of the input ids.
func TestAllSolversProduceValidTours(t *testing.T) {
	points := caseAPoints()
	algorithms := []Algorithm{
		BellmanHeldKarp, BranchAndBound, NearestNeighbor, TwoOpt,
		StochasticHillClimb, Annealing, TabuSearch, GeneticAlgorithm,
	}

	for _, algo := range algorithms {
		algo := algo
		t.Run(algo.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Epochs = 150
			opts.Seed = 123
			sol, err := Solve(points, opts, algo, NewSinkPublisher(false))
			require.NoError(t, err)
			assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, sol.Route)
			assert.Greater(t, sol.TotalLength, 0.0)
		})
	}
}

// TestExactSolversAgreeOnOptimum checks both exact solvers find the known
// Case A optimum of 4.0.
func TestExactSolversAgreeOnOptimum(t *testing.T) {
	points := caseAPoints()
	opts := DefaultOptions()

	bhkSol, err := Solve(points, opts, BellmanHeldKarp, NewSinkPublisher(false))
	require.NoError(t, err)
	bbSol, err := Solve(points, opts, BranchAndBound, NewSinkPublisher(false))
	require.NoError(t, err)

	assert.InDelta(t, 4.0, bhkSol.TotalLength, 1e-6)
	assert.InDelta(t, 4.0, bbSol.TotalLength, 1e-6)
}
