// Package tsp - nearest-neighbor greedy-swap local repair heuristic.
//
// SolveNearestNeighbor is not a classical tour constructor: it is a single
// repair pass over the identity ordering that swaps in a closer neighbor
// when one is found via a kd-tree k-NN query, per spec.md §4.4.3.
//
// Open question (preserved, not fixed): the in-place swap can break a
// previously established adjacency elsewhere in the path — this is a local
// heuristic, not a tour constructor, and matches the reference behavior
// verbatim (spec.md §9).
package tsp

// SolveNearestNeighbor implements the one-pass greedy-swap heuristic.
func SolveNearestNeighbor(points []Point, opts SolverOptions, pub Publisher) (Solution, error) {
	dm, kt, err := buildContext(points)
	if err != nil {
		return Solution{}, err
	}
	n := dm.N()

	byID := make(map[int]Point, n)
	for _, p := range points {
		byID[p.ID] = p
	}

	k := opts.NNearest
	if k < 1 {
		k = 1
	}

	path := RouteFromPoints(points)

	initialLen, err := dm.TourLength(path)
	if err != nil {
		return Solution{}, err
	}
	pub.Publish(NewPathUpdate(path.Clone(), initialLen))

	for i := 0; i < n-1; i++ {
		currentID := path[i]
		pub.Publish(NewCityChange(currentID))

		result := kt.Nearest(byID[currentID], k)
		c, ok := result.BestPoint()
		if !ok {
			continue
		}

		dCurrentC, err := dm.DistanceByID(currentID, c.ID)
		if err != nil {
			return Solution{}, err
		}
		dCurrentNext, err := dm.DistanceByID(currentID, path[i+1])
		if err != nil {
			return Solution{}, err
		}

		if dCurrentC < dCurrentNext {
			cPos := indexOfID(path, c.ID)
			path[i+1], path[cPos] = path[cPos], path[i+1]

			length, err := dm.TourLength(path)
			if err != nil {
				return Solution{}, err
			}
			pub.Publish(NewPathUpdate(path.Clone(), length))
		}
	}

	sol, err := NewSolution(path, dm, points)
	if err != nil {
		return Solution{}, err
	}
	pub.Publish(NewDone())
	return sol, nil
}

// indexOfID returns the index of id within route, or -1 if absent.
func indexOfID(route Route, id int) int {
	for i, v := range route {
		if v == id {
			return i
		}
	}
	return -1
}
