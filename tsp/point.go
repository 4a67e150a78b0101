package tsp

import "math"

// coordEps is the absolute tolerance used for coordinate equality, set to
// single-precision machine epsilon per spec.md §3 (mirrors the Rust
// reference's f32::EPSILON).
const coordEps = 1.1920929e-7

// Point is a 2-D coordinate carrying a stable, externally-assigned integer
// id. Ids need not be dense or start from zero. A Point is built once from
// input and never mutated.
type Point struct {
	ID     int
	Coords [2]float64
}

// NewPoint constructs a Point from an id and x/y coordinates.
func NewPoint(id int, x, y float64) Point {
	return Point{ID: id, Coords: [2]float64{x, y}}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.Coords[0] - q.Coords[0]
	dy := p.Coords[1] - q.Coords[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// cmpByCoord orders p and q on coordinate axis d (0 for x, 1 for y) using
// absolute-epsilon equality. Returns -1, 0, or 1.
func cmpByCoord(p, q Point, d int) int {
	diff := p.Coords[d] - q.Coords[d]
	if math.Abs(diff) <= coordEps {
		return 0
	}
	if diff < 0 {
		return -1
	}
	return 1
}

// splitDistance returns |p[d]-q[d]|, the quantity the kd-tree uses to decide
// whether the far branch of a split can be pruned.
func splitDistance(p, q Point, d int) float64 {
	return math.Abs(p.Coords[d] - q.Coords[d])
}
