package tsp

// Solution pairs a Route with its precomputed total length and a lookup
// table to the Points the route visits. TotalLength is kept consistent with
// Route by construction — there is no independent mutation path.
type Solution struct {
	Route       Route
	TotalLength float64
	points      map[int]Point
}

// NewSolution builds a Solution from a route and the distance matrix used to
// score it. Fails if route references an id the matrix does not know.
func NewSolution(route Route, dm *DistanceMatrix, points []Point) (Solution, error) {
	length, err := dm.TourLength(route)
	if err != nil {
		return Solution{}, err
	}
	table := make(map[int]Point, len(points))
	for _, p := range points {
		table[p.ID] = p
	}
	return Solution{Route: route.Clone(), TotalLength: length, points: table}, nil
}

// PointByID returns the Point with the given id and whether it was found.
func (s Solution) PointByID(id int) (Point, bool) {
	p, ok := s.points[id]
	return p, ok
}
