package tsp

import "math/rand"

// Route is an ordered permutation of point ids representing the cyclic tour
// id[0] -> id[1] -> ... -> id[N-1] -> id[0]. The starting position is
// conventional: rotations represent the same physical tour but compare
// unequal (see Equal).
type Route []int

// RouteFromPoints builds the initial route: ids in input order.
func RouteFromPoints(points []Point) Route {
	out := make(Route, len(points))
	for i, p := range points {
		out[i] = p.ID
	}
	return out
}

// Clone returns an independent copy of the route.
func (r Route) Clone() Route {
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// Equal reports whether two routes are identical element-by-element
// (rotations are NOT considered equal, per spec.md §3).
func (r Route) Equal(other Route) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Shuffle returns a fresh route holding a uniform random permutation of r.
func (r Route) Shuffle(rng *rand.Rand) Route {
	out := r.Clone()
	shuffleIntsInPlace(out, rng)
	return out
}

// RandomPositionPair draws two uniform indices in [0,n), ordered ascending.
// Panics if n<2 — random-pair on too small an n is a programmer error (see
// spec.md §7).
func RandomPositionPair(n int, rng *rand.Rand) (int, int) {
	if n < 2 {
		panic("tsp: random_position_pair requires n>=2")
	}
	i := rng.Intn(n)
	j := rng.Intn(n)
	if i > j {
		i, j = j, i
	}
	return i, j
}

// reverseSegment reverses the inclusive sub-range route[i..j] in place. This
// is the primitive every 2-opt-flavored move (TwoOpt, hill-climbing,
// annealing, tabu search) builds on.
func reverseSegment(route []int, i, j int) {
	for i < j {
		route[i], route[j] = route[j], route[i]
		i++
		j--
	}
}

// RandomSuccessor returns a 2-opt-style random successor of r: pick a random
// index pair (i,j) with j-i>1 (retry up to 10 times; accept whatever pair
// came up last if none qualifies), then reverse route[i..j] inclusive.
func (r Route) RandomSuccessor(rng *rand.Rand) Route {
	n := len(r)
	var i, j int
	for attempt := 0; attempt < 10; attempt++ {
		i, j = RandomPositionPair(n, rng)
		if j-i > 1 {
			break
		}
	}
	out := r.Clone()
	reverseSegment(out, i, j)
	return out
}
