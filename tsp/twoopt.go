// Package tsp - 2-opt local search heuristic for symmetric Euclidean TSP.
//
// SolveTwoOpt repeats full passes over the identity-ordered route until a
// pass makes no improving move, per spec.md §4.4.4. Only the symmetric
// 2-opt move (segment reversal) is implemented — this spec has no ATSP
// branch, unlike the teacher's 2-opt*/tail-swap variant for asymmetric
// instances.
package tsp

// SolveTwoOpt implements first-improvement 2-opt local search to a 2-opt
// local optimum.
func SolveTwoOpt(points []Point, opts SolverOptions, pub Publisher) (Solution, error) {
	dm, _, err := buildContext(points)
	if err != nil {
		return Solution{}, err
	}
	n := dm.N()

	posPath := make([]int, n)
	for i := range posPath {
		posPath[i] = i
	}

	initial, err := NewSolution(positionsToRoute(posPath, dm), dm, points)
	if err != nil {
		return Solution{}, err
	}
	pub.Publish(NewPathUpdate(initial.Route, initial.TotalLength))

	for {
		improved := false
		for i := 0; i <= n-3; i++ {
			a, b := posPath[i], posPath[i+1]
			for j := i + 2; j <= n-1; j++ {
				c, d := posPath[j], posPath[(j+1)%n]
				current := dm.At(a, b) + dm.At(c, d)
				proposed := dm.At(a, c) + dm.At(b, d)
				if proposed < current {
					reverseSegment(posPath, i+1, j)
					improved = true
					b = posPath[i+1] // segment reversal moved the new i+1 neighbor
					route := positionsToRoute(posPath, dm)
					length, lerr := dm.TourLength(route)
					if lerr != nil {
						return Solution{}, lerr
					}
					pub.Publish(NewPathUpdate(route, length))
				}
			}
		}
		if !improved {
			break
		}
	}

	sol, err := NewSolution(positionsToRoute(posPath, dm), dm, points)
	if err != nil {
		return Solution{}, err
	}
	pub.Publish(NewDone())
	return sol, nil
}
