package tsp

import (
	"math"
	"sort"
)

// roundScale stabilizes floating-point summation to 1e-9 absolute precision,
// avoiding cross-platform drift without affecting algorithmic correctness.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// DistanceMatrix is a packed cache of the strictly-lower triangle of the
// N x N symmetric pairwise-distance matrix over a fixed point set, laid out
// row-major: for row i>=1, entries d(i,0)..d(i,i-1) occupy consecutive
// positions starting at offset i*(i-1)/2. Two side maps translate between
// external point ids and internal positions 0..N-1.
type DistanceMatrix struct {
	n       int
	items   []float64
	idToPos map[int]int
	posToID []int
}

// BuildDistanceMatrix builds the packed distance matrix from points, in
// input order. Fails if fewer than two points are given.
//
// Complexity: O(N^2) time, O(N^2) space for the packed triangle.
func BuildDistanceMatrix(points []Point) (*DistanceMatrix, error) {
	n := len(points)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	idToPos := make(map[int]int, n)
	posToID := make([]int, n)
	for pos, p := range points {
		idToPos[p.ID] = pos
		posToID[pos] = p.ID
	}

	items := make([]float64, 0, n*(n-1)/2)
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			items = append(items, points[i].Distance(points[j]))
		}
	}

	return &DistanceMatrix{n: n, items: items, idToPos: idToPos, posToID: posToID}, nil
}

// N returns the number of points the matrix was built over.
func (m *DistanceMatrix) N() int {
	return m.n
}

// posIndex returns the packed-triangle offset for the unordered pair (p,q),
// p != q. Panics if either position is out of range — a programmer error,
// not a user-input error (see spec.md §7).
func (m *DistanceMatrix) posIndex(p, q int) int {
	if p < 0 || p >= m.n || q < 0 || q >= m.n {
		panic("tsp: position out of range")
	}
	hi, lo := p, q
	if lo > hi {
		hi, lo = lo, hi
	}
	return hi*(hi-1)/2 + lo
}

// At returns the distance between the points at internal positions p and q.
// Returns 0 when p==q. Panics on out-of-range positions.
func (m *DistanceMatrix) At(p, q int) float64 {
	if p == q {
		if p < 0 || p >= m.n {
			panic("tsp: position out of range")
		}
		return 0
	}
	return m.items[m.posIndex(p, q)]
}

// PositionOf translates an external point id to its internal position.
func (m *DistanceMatrix) PositionOf(id int) (int, error) {
	pos, ok := m.idToPos[id]
	if !ok {
		return 0, ErrUnknownID
	}
	return pos, nil
}

// IDAt translates an internal position back to its external point id.
func (m *DistanceMatrix) IDAt(pos int) int {
	return m.posToID[pos]
}

// DistanceByID returns the distance between two points identified by their
// external ids. Returns ErrUnknownID if either id was never registered.
func (m *DistanceMatrix) DistanceByID(id1, id2 int) (float64, error) {
	p1, ok := m.idToPos[id1]
	if !ok {
		return 0, ErrUnknownID
	}
	p2, ok := m.idToPos[id2]
	if !ok {
		return 0, ErrUnknownID
	}
	return m.At(p1, p2), nil
}

// DistancesFrom returns a length-N vector where index p is the distance from
// the point identified by id to the point at internal position p (the
// self-position holds 0). Useful for heuristics that want a full row.
func (m *DistanceMatrix) DistancesFrom(id int) ([]float64, error) {
	pos, ok := m.idToPos[id]
	if !ok {
		return nil, ErrUnknownID
	}
	out := make([]float64, m.n)
	for p := 0; p < m.n; p++ {
		out[p] = m.At(pos, p)
	}
	return out, nil
}

// TourLength returns the total Euclidean length of a closed tour over path,
// a sequence of point ids of length >= 2: the sum of consecutive distances
// plus the closing edge from the last id back to the first.
func (m *DistanceMatrix) TourLength(path []int) (float64, error) {
	if len(path) < 2 {
		return 0, ErrDimensionMismatch
	}
	positions := make([]int, len(path))
	for i, id := range path {
		pos, ok := m.idToPos[id]
		if !ok {
			return 0, ErrUnknownID
		}
		positions[i] = pos
	}

	var sum float64
	for i := 1; i < len(positions); i++ {
		sum += m.At(positions[i], positions[i-1])
	}
	sum += m.At(positions[len(positions)-1], positions[0])
	return round1e9(sum), nil
}

// KNearest is the DistanceMatrix-backed fallback for k-nearest-neighbor
// queries, equivalent to KDTree.Nearest but driven off the precomputed
// matrix rather than tree traversal — useful for small N or when the matrix
// is already built. Returns up to n ids sorted by distance ascending,
// excluding id itself.
func (m *DistanceMatrix) KNearest(id int, n int) ([]int, error) {
	row, err := m.DistancesFrom(id)
	if err != nil {
		return nil, err
	}
	selfPos := m.idToPos[id]

	type cand struct {
		pos int
		d   float64
	}
	cands := make([]cand, 0, m.n-1)
	for pos, d := range row {
		if pos == selfPos {
			continue
		}
		cands = append(cands, cand{pos: pos, d: d})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].d < cands[j].d })

	if n > len(cands) {
		n = len(cands)
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = m.posToID[cands[i].pos]
	}
	return out, nil
}
