package tsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabuListFIFOEviction(t *testing.T) {
	tabu := newTabuList(2)
	a := Route{1, 2, 3}
	b := Route{3, 2, 1}
	c := Route{2, 1, 3}

	tabu.add(a)
	tabu.add(b)
	assert.True(t, tabu.contains(a))
	assert.True(t, tabu.contains(b))

	tabu.add(c) // evicts a
	assert.False(t, tabu.contains(a))
	assert.True(t, tabu.contains(b))
	assert.True(t, tabu.contains(c))
}

func TestSolveTabuSearchValidPermutation(t *testing.T) {
	points := caseAPoints()
	opts := DefaultOptions()
	opts.Epochs = 300
	opts.Seed = 11
	sol, err := SolveTabuSearch(points, opts, NewSinkPublisher(false))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, sol.Route)
}

func TestSolveTabuSearchImprovesOnIdentity(t *testing.T) {
	points := caseAPoints()
	dm, err := BuildDistanceMatrix(points)
	require.NoError(t, err)
	identityLen, _ := dm.TourLength([]int{0, 1, 2, 3, 4})

	opts := DefaultOptions()
	opts.Epochs = 300
	opts.Seed = 1
	sol, err := SolveTabuSearch(points, opts, NewSinkPublisher(false))
	require.NoError(t, err)
	assert.LessOrEqual(t, sol.TotalLength, identityLen+1e-9)
}
