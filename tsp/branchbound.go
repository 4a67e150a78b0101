// Package tsp - exhaustive Branch-and-Bound exact solver.
//
// SolveBranchAndBound performs a deterministic depth-first enumeration of
// permutations starting from the point with the smallest id, per
// spec.md §4.4.2. Candidates are pruned only by a one-step bound
// (running_cost + d(last,v) < upper_bound) and ordered lexicographically by
// id for reproducibility — there is no admissible lower-bound tightening;
// that is an explicit non-goal of this solver (tighter bounds belong to a
// different algorithm, not this one).
package tsp

import (
	"math"
	"sort"
)

// SolveBranchAndBound implements the exact exhaustive solver.
func SolveBranchAndBound(points []Point, opts SolverOptions, pub Publisher) (Solution, error) {
	dm, _, err := buildContext(points)
	if err != nil {
		return Solution{}, err
	}
	n := dm.N()

	// Start from the smallest id, per spec.md §4.4.2.
	startPos := 0
	for p := 1; p < n; p++ {
		if dm.IDAt(p) < dm.IDAt(startPos) {
			startPos = p
		}
	}

	path := make([]int, 1, n)
	path[0] = startPos
	visited := make([]bool, n)
	visited[startPos] = true

	bestCost := math.Inf(1)
	bestPath := make([]int, 0, n)

	var backtrack func(runningCost float64)
	backtrack = func(runningCost float64) {
		if len(path) == n {
			total := runningCost + dm.At(path[n-1], startPos)
			if total < bestCost {
				bestCost = total
				bestPath = append(bestPath[:0], path...)
				pub.Publish(NewPathUpdate(positionsToRoute(bestPath, dm), bestCost))
			}
			return
		}

		last := path[len(path)-1]
		type candidate struct {
			pos int
			id  int
		}
		candidates := make([]candidate, 0, n-len(path))
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if runningCost+dm.At(last, v) < bestCost {
				candidates = append(candidates, candidate{pos: v, id: dm.IDAt(v)})
			}
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].id < candidates[j].id })

		for _, c := range candidates {
			visited[c.pos] = true
			path = append(path, c.pos)
			pub.Publish(NewCityChange(c.id))

			backtrack(runningCost + dm.At(last, c.pos))

			path = path[:len(path)-1]
			visited[c.pos] = false
		}
	}

	backtrack(0)

	if len(bestPath) == 0 {
		return Solution{}, ErrDimensionMismatch
	}

	route := positionsToRoute(bestPath, dm)
	sol, err := NewSolution(route, dm, points)
	if err != nil {
		return Solution{}, err
	}
	pub.Publish(NewDone())
	return sol, nil
}

// positionsToRoute translates a slice of internal distance-matrix positions
// into a Route of external point ids.
func positionsToRoute(positions []int, dm *DistanceMatrix) Route {
	route := make(Route, len(positions))
	for i, pos := range positions {
		route[i] = dm.IDAt(pos)
	}
	return route
}
