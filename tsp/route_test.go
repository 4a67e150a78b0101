package tsp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteFromPoints(t *testing.T) {
	points := caseAPoints()
	r := RouteFromPoints(points)
	assert.Equal(t, Route{0, 1, 2, 3, 4}, r)
}

func TestRouteCloneIndependence(t *testing.T) {
	r := Route{1, 2, 3}
	clone := r.Clone()
	clone[0] = 99
	assert.Equal(t, 1, r[0])
}

func TestRouteEqual(t *testing.T) {
	a := Route{1, 2, 3}
	b := Route{1, 2, 3}
	c := Route{3, 2, 1}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Route{1, 2}))
}

func TestRouteShuffleIsPermutation(t *testing.T) {
	r := Route{0, 1, 2, 3, 4}
	rng := rand.New(rand.NewSource(42))
	shuffled := r.Shuffle(rng)
	assert.ElementsMatch(t, r, shuffled)
}

func TestRandomPositionPairOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		a, b := RandomPositionPair(10, rng)
		assert.True(t, a <= b)
		assert.True(t, a >= 0 && b < 10)
	}
}

func TestRandomPositionPairPanicsTooSmall(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Panics(t, func() { RandomPositionPair(1, rng) })
}

func TestReverseSegment(t *testing.T) {
	route := []int{0, 1, 2, 3, 4}
	reverseSegment(route, 1, 3)
	assert.Equal(t, []int{0, 3, 2, 1, 4}, route)
}

func TestRandomSuccessorIsPermutation(t *testing.T) {
	r := Route{0, 1, 2, 3, 4}
	rng := rand.New(rand.NewSource(3))
	succ := r.RandomSuccessor(rng)
	assert.ElementsMatch(t, r, succ)
	assert.Len(t, succ, len(r))
}
