// Package tsp - simulated annealing heuristic.
//
// SolveAnnealing performs geometric-cooling simulated annealing over
// 2-opt-style successors, per spec.md §4.4.6.
//
// Open question (preserved verbatim, not "fixed" to AND): termination uses
// `iteration < epochs OR T > min_temperature`, which keeps the loop running
// until BOTH clauses fail. This differs from the more common AND
// formulation; changing it would be a deliberate design change, not a
// bug-fix (spec.md §9).
package tsp

import "math"

// SolveAnnealing implements simulated annealing. It returns the final
// accepted route, not a globally tracked best — matching the reference
// behavior exactly.
func SolveAnnealing(points []Point, opts SolverOptions, pub Publisher) (Solution, error) {
	dm, _, err := buildContext(points)
	if err != nil {
		return Solution{}, err
	}

	rng := rngFromSeed(opts.Seed)
	identity := RouteFromPoints(points)
	current := identity.Shuffle(rng)
	curLen, err := dm.TourLength(current)
	if err != nil {
		return Solution{}, err
	}

	temperature := opts.MaxTemperature
	iteration := 0

	pub.Publish(NewPathUpdate(current.Clone(), curLen))

	for iteration < opts.Epochs || temperature > opts.MinTemperature {
		iteration++

		proposed := current.RandomSuccessor(rng)
		propLen, err := dm.TourLength(proposed)
		if err != nil {
			return Solution{}, err
		}

		accept := false
		if propLen < curLen {
			accept = true
		} else if propLen != curLen {
			probability := math.Exp(-(propLen - curLen) / temperature)
			if rng.Float64() < probability {
				accept = true
			}
		}
		// Equal-length proposals are rejected by falling through both
		// branches above.

		if accept {
			current = proposed
			curLen = propLen
			pub.Publish(NewPathUpdate(current.Clone(), curLen))
		}

		temperature -= opts.CoolingRate * temperature
		pub.Publish(NewEpochUpdate(iteration))
	}

	sol, err := NewSolution(current, dm, points)
	if err != nil {
		return Solution{}, err
	}
	pub.Publish(NewDone())
	return sol, nil
}
