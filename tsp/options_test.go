package tsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithmAliases(t *testing.T) {
	cases := map[string]Algorithm{
		"bellman_karp":         BellmanHeldKarp,
		"bhk":                  BellmanHeldKarp,
		"branch_bound":         BranchAndBound,
		"nearest_neighbor":     NearestNeighbor,
		"nn":                   NearestNeighbor,
		"two_opt":              TwoOpt,
		"2opt":                 TwoOpt,
		"stochastic_hill":      StochasticHillClimb,
		"simulated_annealing":  Annealing,
		"sa":                   Annealing,
		"tabu_search":          TabuSearch,
		"genetic_algorithm":    GeneticAlgorithm,
		"ga":                   GeneticAlgorithm,
	}
	for alias, want := range cases {
		got, err := ParseAlgorithm(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, got, alias)
	}
}

func TestParseAlgorithmUnknown(t *testing.T) {
	_, err := ParseAlgorithm("quantum_annealing")
	assert.ErrorIs(t, err, ErrUnknownSolver)
}

func TestAlgorithmStringRoundTrip(t *testing.T) {
	all := []Algorithm{
		BellmanHeldKarp, BranchAndBound, NearestNeighbor, TwoOpt,
		StochasticHillClimb, Annealing, TabuSearch, GeneticAlgorithm,
	}
	for _, a := range all {
		parsed, err := ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 10000, opts.Epochs)
	assert.Equal(t, 500, opts.PlatooEpochs)
	assert.Equal(t, 3, opts.NNearest)
	assert.Equal(t, 3, opts.NElite)
	assert.InDelta(t, 0.001, opts.MutationProbability, 1e-12)
	assert.InDelta(t, 0.0001, opts.CoolingRate, 1e-12)
	assert.InDelta(t, 0.001, opts.MinTemperature, 1e-12)
	assert.InDelta(t, 1000.0, opts.MaxTemperature, 1e-9)
	assert.True(t, opts.ShowProgress)
	assert.False(t, opts.Verbose)
}
