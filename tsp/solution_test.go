package tsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolution(t *testing.T) {
	points := caseAPoints()
	dm, err := BuildDistanceMatrix(points)
	require.NoError(t, err)

	sol, err := NewSolution(Route{0, 1, 2, 3, 4}, dm, points)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, sol.TotalLength, 1e-9)

	p, ok := sol.PointByID(2)
	require.True(t, ok)
	assert.Equal(t, 2, p.ID)

	_, ok = sol.PointByID(99)
	assert.False(t, ok)
}

func TestNewSolutionUnknownID(t *testing.T) {
	points := caseAPoints()
	dm, err := BuildDistanceMatrix(points)
	require.NoError(t, err)
	_, err = NewSolution(Route{0, 1, 2, 3, 99}, dm, points)
	assert.ErrorIs(t, err, ErrUnknownID)
}
